package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/peterkuimelis/savedata/internal/game"
	"github.com/peterkuimelis/savedata/internal/log"
)

// Config holds settings shared by the savedata binaries. Every field can be
// set from the environment; flags in each binary override it.
type Config struct {
	CharactersFile string `env:"SAVEDATA_CHARACTERS"`
	DefaultTier    int    `env:"SAVEDATA_DEFAULT_TIER" envDefault:"8"`
	HistoryLimit   int    `env:"SAVEDATA_HISTORY_LIMIT" envDefault:"20"`
	RemovalBonus   string `env:"SAVEDATA_REMOVAL_BONUS" envDefault:"base"`
	WebPort        int    `env:"SAVEDATA_WEB_PORT" envDefault:"8080"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RosterConfig resolves the settings into a game.RosterConfig.
func (c Config) RosterConfig(logger log.EventLogger) (game.RosterConfig, error) {
	characters := game.DefaultCharacters()
	if c.CharactersFile != "" {
		t, err := game.LoadCharacterFile(c.CharactersFile)
		if err != nil {
			return game.RosterConfig{}, fmt.Errorf("load characters: %w", err)
		}
		characters = t
	}
	if !game.ValidTier(c.DefaultTier) {
		return game.RosterConfig{}, fmt.Errorf("SAVEDATA_DEFAULT_TIER: %w: %d", game.ErrInvalidTier, c.DefaultTier)
	}
	if c.HistoryLimit < 1 {
		return game.RosterConfig{}, fmt.Errorf("SAVEDATA_HISTORY_LIMIT must be at least 1, got %d", c.HistoryLimit)
	}
	bonus, ok := game.BonusRuleByName(c.RemovalBonus)
	if !ok {
		return game.RosterConfig{}, fmt.Errorf("SAVEDATA_REMOVAL_BONUS: unknown rule %q (want base or base-or-epiphany)", c.RemovalBonus)
	}
	return game.RosterConfig{
		Characters:   characters,
		HistoryLimit: c.HistoryLimit,
		DefaultTier:  c.DefaultTier,
		RemovalBonus: bonus,
		Logger:       logger,
	}, nil
}

// NewRoster builds a roster from the configuration.
func (c Config) NewRoster(logger log.EventLogger) (*game.Roster, error) {
	rc, err := c.RosterConfig(logger)
	if err != nil {
		return nil, err
	}
	return game.NewRoster(rc)
}
