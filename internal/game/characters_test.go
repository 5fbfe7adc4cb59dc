package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCharacters(t *testing.T) {
	table := DefaultCharacters()
	if table.Len() != 23 {
		t.Errorf("Expected 23 characters, got %d", table.Len())
	}
	for _, ch := range table.List() {
		if len(ch.BaseCardNames()) != BaseCardCount {
			t.Errorf("%s: expected %d base card names, got %d", ch.Key, BaseCardCount, len(ch.BaseCardNames()))
		}
	}
	if _, err := table.Lookup("nobody"); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("Expected ErrUnknownCharacter, got %v", err)
	}
	if table.DisplayName("") != "" {
		t.Error("Expected empty display name for no character")
	}
}

func TestCharacterListIsSorted(t *testing.T) {
	list := DefaultCharacters().List()
	for i := 1; i < len(list); i++ {
		if list[i-1].DisplayName > list[i].DisplayName {
			t.Errorf("List out of order at %d: %q > %q", i, list[i-1].DisplayName, list[i].DisplayName)
		}
	}
}

func TestParseCharactersValidation(t *testing.T) {
	cases := map[string]string{
		"missing key": `
characters:
  - display_name: X
    starting_cards: [a, b, c]
    unique_cards: [d, e, f, g, h]
`,
		"short deck": `
characters:
  - key: x
    starting_cards: [a, b]
    unique_cards: [d, e, f, g, h]
`,
		"duplicate key": `
characters:
  - key: x
    starting_cards: [a, b, c]
    unique_cards: [d, e, f, g, h]
  - key: x
    starting_cards: [a, b, c]
    unique_cards: [d, e, f, g, h]
`,
		"bad yaml": "characters: [",
	}
	for name, doc := range cases {
		if _, err := ParseCharacters([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadCharacterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.yaml")
	doc := `
characters:
  - key: tester
    starting_cards: [Strike, Strike, Guard]
    unique_cards: [One, Two, Three, Four, Five]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadCharacterFile(path)
	if err != nil {
		t.Fatal(err)
	}
	ch, err := table.Lookup("tester")
	if err != nil {
		t.Fatal(err)
	}
	if ch.DisplayName != "tester" {
		t.Errorf("Expected display name to default to the key, got %q", ch.DisplayName)
	}
	if names := ch.BaseCardNames(); names[2] != "Guard" || names[7] != "Five" {
		t.Errorf("Unexpected base card names %v", names)
	}
}
