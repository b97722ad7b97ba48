package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericogr/ringside/internal/game"
)

type rawConfig struct {
	CharacterList []game.Character        `json:"character_list" yaml:"character_list"`
	StyleMoves    map[game.Style][]string `json:"style_moves" yaml:"style_moves"`
	PhaseTable    game.PhaseTable         `json:"phase_table" yaml:"phase_table"`
	Server        *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
}

// LoadedConfig contains the match catalog and the server address to bind to.
type LoadedConfig struct {
	Catalog *game.Catalog
	// ServerAddress is empty when the file does not set one.
	ServerAddress string
}

// LoadConfig reads the catalog file at path. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON. It requires the key
// `character_list`; `style_moves` and `phase_table` fall back to the
// built-in tables when omitted.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rc)
	default:
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CharacterList) == 0 {
		return nil, fmt.Errorf("%w: config file %s: character_list is empty (provide 'character_list' array)", game.ErrConfiguration, path)
	}

	cat := &game.Catalog{
		Characters: rc.CharacterList,
		Moves:      rc.StyleMoves,
		Phases:     game.DefaultPhases(),
	}
	if cat.Moves == nil {
		cat.Moves = game.DefaultStyleMoves()
	}
	if len(rc.PhaseTable) > 0 {
		cat.Phases = rc.PhaseTable
	}
	for i := range cat.Characters {
		cat.Characters[i].Name = strings.TrimSpace(cat.Characters[i].Name)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	out := &LoadedConfig{Catalog: cat}
	if rc.Server != nil {
		out.ServerAddress = strings.TrimSpace(rc.Server.Address)
	}
	return out, nil
}

// LoadCatalog returns the catalog at path, or the built-in catalog when
// path is empty.
func LoadCatalog(path string) (*LoadedConfig, error) {
	if strings.TrimSpace(path) == "" {
		return &LoadedConfig{Catalog: game.DefaultCatalog()}, nil
	}
	return LoadConfig(path)
}
