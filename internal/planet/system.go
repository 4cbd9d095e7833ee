package planet

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"planets-catalog/internal/shared/errors"
)

// System is a named, ordered group of planets. Planets may be shared with
// other systems and duplicate names are allowed.
type System struct {
	name    string
	planets []*Planet
}

// NewSystem stores the given planets in order without further validation
func NewSystem(name string, planets []*Planet) *System {
	return &System{
		name:    name,
		planets: planets,
	}
}

func (s *System) Name() string { return s.name }

func (s *System) Len() int { return len(s.planets) }

// Planets returns the planets in their current order
func (s *System) Planets() []*Planet {
	return slices.Clone(s.planets)
}

// Names returns the planet names in their current order
func (s *System) Names() []string {
	names := make([]string, 0, len(s.planets))
	for _, p := range s.planets {
		names = append(names, p.Name())
	}
	return names
}

// FindByName returns the first planet with the given name
func (s *System) FindByName(name string) (*Planet, error) {
	for _, p := range s.planets {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, errors.NotFoundf("planet %q not found in system %q", name, s.name)
}

// SortByDayLength reorders the planets in place, ascending by length of day.
// Planets with equal day length keep their relative order.
func (s *System) SortByDayLength() {
	slices.SortStableFunc(s.planets, func(a, b *Planet) int {
		switch {
		case a.LengthOfDay() < b.LengthOfDay():
			return -1
		case a.LengthOfDay() > b.LengthOfDay():
			return 1
		default:
			return 0
		}
	})
}

func (s *System) String() string {
	return fmt.Sprintf(
		"Planetary system '%s': %d planets\nPlanets list: %s",
		s.name, len(s.planets), strings.Join(s.Names(), ", "),
	)
}

// FindDistanceBetween returns the absolute difference of the planets'
// distances from the sun, in million km.
func FindDistanceBetween(a, b *Planet) float64 {
	return math.Abs(a.DistanceFromSun() - b.DistanceFromSun())
}

// FindAverageMass returns the arithmetic mean mass of the given planets
func FindAverageMass(planets ...*Planet) (float64, error) {
	if len(planets) == 0 {
		return 0, errors.EmptyInput("cannot average the mass of zero planets")
	}

	var total float64
	for _, p := range planets {
		total += p.Mass()
	}
	return total / float64(len(planets)), nil
}
