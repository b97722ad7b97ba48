package main

import (
	"github.com/ericogr/ringside/internal/config"
	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/logging"
	"github.com/ericogr/ringside/internal/storage"
)

func loadSettingsOrExit() config.Settings {
	s, err := config.LoadSettings()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	if err := logging.SetLevel(s.LogLevel); err != nil {
		logging.Warn("Unknown log level; keeping info", err, logging.Fields{"var": constants.EnvLogLevel})
	}
	return s
}

func loadCatalogOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadCatalog(path)
	if err != nil {
		logging.Fatal("Missing or invalid ringside configuration", err, logging.Fields{"config_path": path, "hint": "provide a .json or .yaml file with a 'character_list' array (id,name,height,power,speed,technique,stamina,mental,influence,style,role) and optional keys: style_moves, phase_table, server.address"})
	}
	return cfg
}

func createRepositoryOrExit(dsn string) storage.Repository {
	db, err := storage.OpenAndMigrate(dsn)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDSN: dsn, "var": constants.EnvDB})
	}
	return storage.NewSQLiteRepository(db)
}

func newSourceFromSeed(seed int64) engine.Source {
	if seed == 0 {
		var err error
		if seed, err = engine.NewSeed(); err != nil {
			logging.Fatal("Failed to seed random source", err, nil)
		}
	}
	// logged so a session can be replayed by exporting the seed
	logging.Info("Random source ready", logging.Fields{constants.LogFieldSeed: seed, "var": constants.EnvSeed})
	return engine.NewSource(seed)
}

// resolveAddr prefers an explicit RINGSIDE_ADDR over the catalog file.
func resolveAddr(envAddr, fileAddr string, envSet bool) string {
	if envSet || fileAddr == "" {
		return envAddr
	}
	return fileAddr
}
