package report

import (
	"fmt"
	"io"
	"strings"

	"planets-catalog/internal/planet"
	"planets-catalog/internal/shared/errors"
)

const separator = "--------------------"

// Options selects the two planets used for the distance line
type Options struct {
	DistanceFrom string
	DistanceTo   string
}

// Write prints the catalog report for system to w. The system is sorted by
// day length as a side effect.
func Write(w io.Writer, service *planet.Service, system *planet.System, opts Options) error {
	var b strings.Builder

	fmt.Fprintln(&b, system)

	fmt.Fprintln(&b, "Sorted by day length:")
	for _, p := range service.SortByDayLength(system) {
		fmt.Fprintf(&b, "%s: %v hours\n", p.Name(), p.LengthOfDay())
	}
	fmt.Fprintln(&b, separator)

	avg, err := service.AverageMass(system)
	if err != nil {
		return err
	}
	fmt.Fprintf(&b, "Average mass of planets: %v kg\n", avg)
	fmt.Fprintln(&b, separator)

	distance, err := service.DistanceBetween(system, opts.DistanceFrom, opts.DistanceTo)
	if err != nil {
		return err
	}
	fmt.Fprintf(&b, "Distance between %s and %s: %v million km\n", opts.DistanceFrom, opts.DistanceTo, distance)

	// Nothing reaches w unless every section succeeded.
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WrapInternal("failed to write report", err)
	}
	return nil
}
