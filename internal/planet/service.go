package planet

import (
	"fmt"
	"log/slog"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		logger: logger,
	}
}

// SortByDayLength sorts the system in place and returns the new order
func (s *Service) SortByDayLength(system *System) []*Planet {
	logger := s.logger.With("component", "planet_service", "operation", "sort_by_day_length", "system", system.Name())

	system.SortByDayLength()

	logger.Debug("Planets sorted", "count", system.Len(), "order", system.Names())
	return system.Planets()
}

// AverageMass returns the mean mass across every planet in the system
func (s *Service) AverageMass(system *System) (float64, error) {
	logger := s.logger.With("component", "planet_service", "operation", "average_mass", "system", system.Name())

	avg, err := FindAverageMass(system.Planets()...)
	if err != nil {
		logger.Warn("Failed to average planet mass", "error", err)
		return 0, fmt.Errorf("failed to average mass of system %q: %w", system.Name(), err)
	}

	logger.Debug("Average mass computed", "count", system.Len(), "average_mass", avg)
	return avg, nil
}

// DistanceBetween looks both planets up by name and returns the distance between their orbits
func (s *Service) DistanceBetween(system *System, from, to string) (float64, error) {
	logger := s.logger.With("component", "planet_service", "operation", "distance_between", "from", from, "to", to)

	a, err := system.FindByName(from)
	if err != nil {
		logger.Warn("Reference planet missing", "error", err)
		return 0, err
	}

	b, err := system.FindByName(to)
	if err != nil {
		logger.Warn("Reference planet missing", "error", err)
		return 0, err
	}

	distance := FindDistanceBetween(a, b)
	logger.Debug("Distance computed", "distance_million_km", distance)
	return distance, nil
}
