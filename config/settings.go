package config

// PersistenceConfig names where viewer settings are stored
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
}

// Persistence is the global persistence configuration
var Persistence PersistenceConfig

func init() {
	Persistence = PersistenceConfig{
		AppName:     "tmx-explorer",
		SettingsKey: "settings",
	}
}
