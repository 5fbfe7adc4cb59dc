package game

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	StartingCardCount = 3
	UniqueCardCount   = 5
)

//go:embed data/characters.yaml
var defaultCharactersYAML []byte

// CharacterFile represents the top-level YAML structure.
type CharacterFile struct {
	Characters []Character `yaml:"characters"`
}

// Character is one playable combatant and the names of the cards its
// starting deck is built from.
type Character struct {
	Key           string   `yaml:"key"`
	DisplayName   string   `yaml:"display_name"`
	StartingCards []string `yaml:"starting_cards"`
	UniqueCards   []string `yaml:"unique_cards"`
}

// BaseCardNames returns the eight base slot names: starting cards first,
// then unique cards.
func (c *Character) BaseCardNames() []string {
	names := make([]string, 0, BaseCardCount)
	names = append(names, c.StartingCards...)
	return append(names, c.UniqueCards...)
}

// CharacterTable maps character keys to characters.
type CharacterTable struct {
	byKey map[string]*Character
}

// ParseCharacters parses a YAML character file.
func ParseCharacters(data []byte) (*CharacterTable, error) {
	var cf CharacterFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse character YAML: %w", err)
	}

	t := &CharacterTable{byKey: make(map[string]*Character, len(cf.Characters))}
	for i := range cf.Characters {
		ch := cf.Characters[i]
		if ch.Key == "" {
			return nil, fmt.Errorf("character %d has no key", i+1)
		}
		if _, dup := t.byKey[ch.Key]; dup {
			return nil, fmt.Errorf("duplicate character key %q", ch.Key)
		}
		if len(ch.StartingCards) != StartingCardCount || len(ch.UniqueCards) != UniqueCardCount {
			return nil, fmt.Errorf("character %q: want %d starting and %d unique cards, got %d and %d",
				ch.Key, StartingCardCount, UniqueCardCount, len(ch.StartingCards), len(ch.UniqueCards))
		}
		if ch.DisplayName == "" {
			ch.DisplayName = ch.Key
		}
		t.byKey[ch.Key] = &ch
	}
	return t, nil
}

// LoadCharacterFile reads and parses a YAML character file from disk.
func LoadCharacterFile(path string) (*CharacterTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCharacters(data)
}

// DefaultCharacters returns the table compiled into the binary.
func DefaultCharacters() *CharacterTable {
	t, err := ParseCharacters(defaultCharactersYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded character table: %v", err))
	}
	return t
}

// Lookup returns the character for key.
func (t *CharacterTable) Lookup(key string) (*Character, error) {
	ch, ok := t.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, key)
	}
	return ch, nil
}

// DisplayName resolves a key to its display name, or "" if unknown.
func (t *CharacterTable) DisplayName(key string) string {
	if ch, ok := t.byKey[key]; ok {
		return ch.DisplayName
	}
	return ""
}

// List returns all characters sorted by display name.
func (t *CharacterTable) List() []*Character {
	list := make([]*Character, 0, len(t.byKey))
	for _, ch := range t.byKey {
		list = append(list, ch)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].DisplayName != list[j].DisplayName {
			return list[i].DisplayName < list[j].DisplayName
		}
		return list[i].Key < list[j].Key
	})
	return list
}

// Len returns the number of characters.
func (t *CharacterTable) Len() int {
	return len(t.byKey)
}
