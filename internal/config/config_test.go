package config

import (
	"testing"

	"vitals/internal/health"
)

func TestValidate(t *testing.T) {
	valid := Config{
		Vendor:  VendorConfig{AccessToken: "token"},
		Profile: ProfileConfig{Age: 35, Gender: "male"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Vendor.AccessToken = "" },
			wantErr: true,
		},
		{
			name:    "age out of range",
			mutate:  func(c *Config) { c.Profile.Age = 130 },
			wantErr: true,
		},
		{
			name:    "negative age",
			mutate:  func(c *Config) { c.Profile.Age = -1 },
			wantErr: true,
		},
		{
			name:    "unrecognized gender",
			mutate:  func(c *Config) { c.Profile.Gender = "robot" },
			wantErr: true,
		},
		{
			name:   "empty gender is allowed",
			mutate: func(c *Config) { c.Profile.Gender = "" },
		},
		{
			name:   "other gender is allowed",
			mutate: func(c *Config) { c.Profile.Gender = "other" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Profile.Age != health.DefaultAge {
		t.Errorf("default age = %d, want %d", cfg.Profile.Age, health.DefaultAge)
	}
	if cfg.Profile.Gender != string(health.GenderMale) {
		t.Errorf("default gender = %q, want %q", cfg.Profile.Gender, health.GenderMale)
	}
	if cfg.Cache.RedisAddr != "" {
		t.Errorf("default redis addr = %q, want empty (sqlite cache)", cfg.Cache.RedisAddr)
	}
}

func TestToProfile(t *testing.T) {
	pc := ProfileConfig{
		Age:           42,
		Gender:        "female",
		HeightCM:      165,
		WeightKG:      60,
		ActivityLevel: "active",
	}
	profile := pc.ToProfile()

	if profile.Age != 42 || profile.Gender != health.GenderFemale {
		t.Errorf("ToProfile() = %+v, fields not carried over", profile)
	}
	if profile.HeightCM != 165 || profile.WeightKG != 60 {
		t.Errorf("ToProfile() body metrics = %v/%v, want 165/60", profile.HeightCM, profile.WeightKG)
	}
	if profile.MaxHeartRate() != 178 {
		t.Errorf("MaxHeartRate() = %v, want 178", profile.MaxHeartRate())
	}
}
