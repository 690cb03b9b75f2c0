// Package units formats byte counts and byte rates with an auto-selected
// magnitude prefix.
package units

import (
	"fmt"
	"strings"
)

// System selects the prefix family used when scaling a value.
type System int

const (
	// Binary scales by 1024 (KiB, MiB, ...).
	Binary System = iota
	// Decimal scales by 1000 (kB, MB, ...).
	Decimal
)

var (
	binaryUnits  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
	decimalUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
)

// Base returns the divisor for one unit step.
func (s System) Base() float64 {
	if s == Decimal {
		return 1000
	}
	return 1024
}

// String returns the config name of the system.
func (s System) String() string {
	if s == Decimal {
		return "decimal"
	}
	return "binary"
}

// Toggle switches between binary and decimal.
func (s System) Toggle() System {
	if s == Decimal {
		return Binary
	}
	return Decimal
}

func (s System) table() []string {
	if s == Decimal {
		return decimalUnits
	}
	return binaryUnits
}

// ParseSystem maps a config or flag value onto a System.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "binary", "iec":
		return Binary, nil
	case "decimal", "si":
		return Decimal, nil
	default:
		return Binary, fmt.Errorf("unknown unit system %q (want binary or decimal)", name)
	}
}

// Scale divides value by the system base until it drops below the base or
// the unit table runs out. It returns the scaled value, the unit and whether
// any division happened.
func Scale(value float64, sys System) (scaled float64, unit string, didScale bool) {
	table := sys.table()
	base := sys.Base()

	i := 0
	for value >= base && i < len(table)-1 {
		value /= base
		i++
	}
	return value, table[i], i > 0
}

// Format renders a byte count, e.g. "512 B" or "1.00 KiB".
func Format(value float64, sys System) string {
	scaled, unit, didScale := Scale(value, sys)
	if !didScale {
		return fmt.Sprintf("%.0f %s", scaled, unit)
	}
	return fmt.Sprintf("%.2f %s", scaled, unit)
}

// FormatRate renders a bytes-per-second value, e.g. "1.50 MiB/s".
func FormatRate(value float64, sys System) string {
	return Format(value, sys) + "/s"
}
