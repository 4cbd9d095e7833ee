package planet

import (
	"fmt"
	"strings"

	"planets-catalog/internal/shared/errors"
)

type PlanetType int

const (
	PlanetTypeTerrestrial PlanetType = iota + 1
	PlanetTypeJovian
)

func (t PlanetType) String() string {
	switch t {
	case PlanetTypeTerrestrial:
		return "Terrestrial"
	case PlanetTypeJovian:
		return "Jovian"
	default:
		return fmt.Sprintf("PlanetType(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared planet types
func (t PlanetType) Valid() bool {
	return t == PlanetTypeTerrestrial || t == PlanetTypeJovian
}

// ParsePlanetType converts a case-insensitive name into a PlanetType
func ParsePlanetType(s string) (PlanetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terrestrial":
		return PlanetTypeTerrestrial, nil
	case "jovian":
		return PlanetTypeJovian, nil
	default:
		return 0, errors.InvalidAttribute(fmt.Sprintf("unknown planet type %q", s))
	}
}

func (t *PlanetType) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Planet is an immutable record of a planet's physical attributes.
// Values are only obtainable through NewPlanet, which enforces the
// attribute constraints.
type Planet struct {
	name            string
	mass            float64 // kg
	orbitalVelocity float64 // km/s
	meanTemperature float64 // °C
	lengthOfDay     float64 // hours
	distanceFromSun float64 // million km
	planetType      PlanetType
}

// NewPlanet validates the attributes and returns a planet. Checks run in a
// fixed order (mass, orbital velocity, day length, distance, name) and only
// the first violated constraint is reported.
func NewPlanet(name string, mass, orbitalVelocity, meanTemperature, lengthOfDay, distanceFromSun float64, planetType PlanetType) (*Planet, error) {
	if !(mass > 0) {
		return nil, errors.InvalidAttribute("The mass of a planet cannot be negative.")
	}
	if !(orbitalVelocity >= 0) {
		return nil, errors.InvalidAttribute("Orbital velocity cannot be negative.")
	}
	if !(lengthOfDay >= 0) {
		return nil, errors.InvalidAttribute("The length of a day cannot be negative.")
	}
	if !(distanceFromSun >= 0) {
		return nil, errors.InvalidAttribute("The distance from the Sun cannot be negative.")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidAttribute("The name of a planet cannot be empty.")
	}

	return &Planet{
		name:            name,
		mass:            mass,
		orbitalVelocity: orbitalVelocity,
		meanTemperature: meanTemperature,
		lengthOfDay:     lengthOfDay,
		distanceFromSun: distanceFromSun,
		planetType:      planetType,
	}, nil
}

func (p *Planet) Name() string             { return p.name }
func (p *Planet) Mass() float64            { return p.mass }
func (p *Planet) OrbitalVelocity() float64 { return p.orbitalVelocity }
func (p *Planet) MeanTemperature() float64 { return p.meanTemperature }
func (p *Planet) LengthOfDay() float64     { return p.lengthOfDay }
func (p *Planet) DistanceFromSun() float64 { return p.distanceFromSun }
func (p *Planet) Type() PlanetType         { return p.planetType }

// GoString lists every attribute, for %#v and debugging
func (p *Planet) GoString() string {
	return fmt.Sprintf(
		"Planet(name=%q, mass=%v, orbital_velocity=%v, mean_temperature=%v, length_of_day=%v, distance_from_sun=%v, planet_type=%s)",
		p.name, p.mass, p.orbitalVelocity, p.meanTemperature, p.lengthOfDay, p.distanceFromSun, p.planetType,
	)
}

func (p *Planet) String() string {
	return fmt.Sprintf(
		"%s (%s): mass=%v kg, temperature=%v°C, day=%v hours, distance from sun=%v million km",
		p.name, p.planetType, p.mass, p.meanTemperature, p.lengthOfDay, p.distanceFromSun,
	)
}
