// Package catalog provides the seed planet catalog shipped with the binary.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"planets-catalog/internal/planet"
	"planets-catalog/internal/shared/errors"

	"gopkg.in/yaml.v3"
)

//go:embed solar_system.yaml
var solarSystemYAML []byte

type yamlSystem struct {
	Name    string       `yaml:"name"`
	Planets []yamlPlanet `yaml:"planets"`
}

type yamlPlanet struct {
	Name            string            `yaml:"name"`
	Mass            float64           `yaml:"mass"`
	OrbitalVelocity float64           `yaml:"orbital_velocity"`
	MeanTemperature float64           `yaml:"mean_temperature"`
	LengthOfDay     float64           `yaml:"length_of_day"`
	DistanceFromSun float64           `yaml:"distance_from_sun"`
	Type            planet.PlanetType `yaml:"type"`
}

type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// SolarSystem returns a fresh copy of the embedded solar system catalog
func (l *Loader) SolarSystem() (*planet.System, error) {
	return l.Parse(solarSystemYAML)
}

// Parse decodes a YAML system document and builds validated planets from it
func (l *Loader) Parse(data []byte) (*planet.System, error) {
	logger := l.logger.With("component", "catalog_loader", "operation", "parse")

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ys yamlSystem
	if err := dec.Decode(&ys); err != nil {
		logger.Error("Failed to decode catalog", "error", err)
		return nil, errors.WrapInvalidConfig("failed to decode catalog", err)
	}

	system, err := mapSystem(ys)
	if err != nil {
		logger.Error("Invalid catalog entry", "error", err)
		return nil, err
	}

	logger.Debug("Catalog loaded", "system", system.Name(), "count", system.Len())
	return system, nil
}

func mapSystem(ys yamlSystem) (*planet.System, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return nil, errors.InvalidConfigf("catalog system name is required")
	}

	planets := make([]*planet.Planet, 0, len(ys.Planets))
	for i, yp := range ys.Planets {
		if strings.TrimSpace(yp.Name) == "" {
			return nil, errors.InvalidConfigf("planets[%d]: name is required", i)
		}
		if !yp.Type.Valid() {
			return nil, errors.InvalidConfigf("planets[%d] %s: type is required", i, yp.Name)
		}

		p, err := planet.NewPlanet(yp.Name, yp.Mass, yp.OrbitalVelocity, yp.MeanTemperature, yp.LengthOfDay, yp.DistanceFromSun, yp.Type)
		if err != nil {
			return nil, fmt.Errorf("planets[%d] %s: %w", i, yp.Name, err)
		}
		planets = append(planets, p)
	}

	return planet.NewSystem(ys.Name, planets), nil
}
