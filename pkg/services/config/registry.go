package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("profile not found")

// Registry gives access to the household profiles of an INI file,
// one section per dwelling.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetHousehold(ctx context.Context, profile string) (domain.Household, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetHousehold returns the household of a profile, the DEFAULT section when profile is empty.
func (cr *cfgRegistry) GetHousehold(_ context.Context, profile string) (domain.Household, error) {
	if profile == "" {
		profile = ini.DefaultSection
	}

	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return domain.Household{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}

	household := domain.DefaultHousehold()
	if section.HasKey(keyHomeType) {
		household.Type = section.Key(keyHomeType).String()
	}
	if section.HasKey(keyRoom) {
		household.Room = section.Key(keyRoom).String()
	}
	if section.HasKey(keyFloor) {
		household.Floor = section.Key(keyFloor).String()
	}
	return household, nil
}
