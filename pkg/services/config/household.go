package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/spf13/viper"
)

const (
	keyHomeType = "home_type"
	keyRoom     = "room"
	keyFloor    = "floor"
)

type Household struct {
	HomeType string `mapstructure:"home_type"`
	Room     string `mapstructure:"room"`
	Floor    string `mapstructure:"floor"`
}

// LoadHousehold reads a household document (JSON, YAML, TOML...).
// Missing fields fall back to the placeholders of domain.DefaultHousehold.
func LoadHousehold(path string) (domain.Household, error) {
	defaults := domain.DefaultHousehold()

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	v.SetDefault(keyHomeType, defaults.Type)
	v.SetDefault(keyRoom, defaults.Room)
	v.SetDefault(keyFloor, defaults.Floor)

	if err := v.ReadInConfig(); err != nil {
		return domain.Household{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Household
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Household{}, fmt.Errorf("failed to parse household config: %w", err)
	}

	return domain.Household{
		Type:  cfg.HomeType,
		Room:  cfg.Room,
		Floor: cfg.Floor,
	}, nil
}

// ErrProfileUnsupported is returned when a profile is requested from a
// household document that is not an INI profile file.
var ErrProfileUnsupported = errors.New("profiles are only supported in .ini household files")

// ResolveHousehold loads the household described at path. INI files go
// through the profile registry; other documents take no profile.
func ResolveHousehold(ctx context.Context, path, profile string) (domain.Household, error) {
	if !strings.EqualFold(filepath.Ext(path), ".ini") {
		if profile != "" {
			return domain.Household{}, fmt.Errorf("profile %q requested from %s: %w", profile, path, ErrProfileUnsupported)
		}
		return LoadHousehold(path)
	}

	registry, err := NewRegistry(path)
	if err != nil {
		return domain.Household{}, fmt.Errorf("failed to create profile registry: %w", err)
	}
	return registry.GetHousehold(ctx, profile)
}
