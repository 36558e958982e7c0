package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	DatabasePath    string `json:"databasePath"`
	Passphrase      string `json:"passphrase"`
	RetentionMonths int    `json:"retentionMonths"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./bemycrust_config.json"

const (
	defaultDatabasePath    = "./bemycrust.db"
	defaultPassphrase      = "bemycrust@123"
	defaultRetentionMonths = 1
)

func applyDefaults(c *Config) {
	if c.DatabasePath == "" {
		c.DatabasePath = defaultDatabasePath
	}
	if c.Passphrase == "" {
		c.Passphrase = defaultPassphrase
	}
	if c.RetentionMonths == 0 {
		c.RetentionMonths = defaultRetentionMonths
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = Config{}
			applyDefaults(&cfg)
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
