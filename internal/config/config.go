package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vitals/internal/health"
)

// Config represents the application configuration.
type Config struct {
	Vendor  VendorConfig  `json:"vendor"`
	Profile ProfileConfig `json:"profile"`
	Cache   CacheConfig   `json:"cache"`
}

// VendorConfig holds health-data vendor API credentials.
type VendorConfig struct {
	AccessToken string `json:"access_token"`
	BaseURL     string `json:"base_url,omitempty"`
}

// ProfileConfig holds the user attributes used for personalization.
type ProfileConfig struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
}

// CacheConfig selects the sample cache backend. An empty RedisAddr
// uses the local sqlite store.
type CacheConfig struct {
	RedisAddr     string `json:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty"`
}

// ErrNoConfig is returned when the config file doesn't exist.
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			Age:           health.DefaultAge,
			Gender:        string(health.GenderMale),
			ActivityLevel: string(health.ActivityModerate),
		},
	}
}

// Load reads the configuration from ~/.vitals/config.json.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Backfill defaults for missing values.
	defaults := DefaultConfig()
	if cfg.Profile.Age == 0 {
		cfg.Profile.Age = defaults.Profile.Age
	}
	if cfg.Profile.Gender == "" {
		cfg.Profile.Gender = defaults.Profile.Gender
	}
	if cfg.Profile.ActivityLevel == "" {
		cfg.Profile.ActivityLevel = defaults.Profile.ActivityLevel
	}

	return &cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Vendor.AccessToken == "" {
		return errors.New("vendor.access_token is required")
	}
	if c.Profile.Age < 0 || c.Profile.Age > 120 {
		return fmt.Errorf("profile.age %d out of range", c.Profile.Age)
	}
	switch health.Gender(c.Profile.Gender) {
	case health.GenderMale, health.GenderFemale, health.GenderOther, "":
	default:
		return fmt.Errorf("profile.gender %q not recognized", c.Profile.Gender)
	}
	return nil
}

// ToProfile converts the config profile to the core Profile type.
func (p ProfileConfig) ToProfile() health.Profile {
	return health.Profile{
		Age:           p.Age,
		Gender:        health.Gender(p.Gender),
		HeightCM:      p.HeightCM,
		WeightKG:      p.WeightKG,
		ActivityLevel: health.ActivityLevel(p.ActivityLevel),
	}
}

// CreateExample writes a starter config file for the user to fill in.
func CreateExample() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	example := Config{
		Vendor: VendorConfig{AccessToken: "YOUR_ACCESS_TOKEN"},
		Profile: ProfileConfig{
			Age:           35,
			Gender:        string(health.GenderMale),
			HeightCM:      178,
			WeightKG:      75,
			ActivityLevel: string(health.ActivityModerate),
		},
	}

	data, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing example config: %w", err)
	}
	return nil
}

// GetConfigDir returns the configuration directory (~/.vitals).
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vitals"), nil
}

func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
