// pkg/split/units.go
package split

import (
	"fmt"
	"strings"
)

// Unit is a byte-size multiplier for size-based policies. The set is fixed:
// megabyte, gigabyte and their bit-rate cousins (Mb = megabit, Gb = gigabit).
type Unit int64

const (
	MB Unit = 1 << 20
	GB Unit = 1 << 30
	Mb Unit = (1 << 20) / 8
	Gb Unit = (1 << 30) / 8
)

// ParseUnit resolves a unit name. Exact member names win so that "Mb" keeps
// its megabit meaning; anything else is matched case-insensitively against
// the byte units.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "MB":
		return MB, nil
	case "GB":
		return GB, nil
	case "Mb":
		return Mb, nil
	case "Gb":
		return Gb, nil
	}
	switch strings.ToUpper(s) {
	case "MB":
		return MB, nil
	case "GB":
		return GB, nil
	}
	return 0, fmt.Errorf("%w: %q (allowed: MB, GB, Mb, Gb)", ErrUnknownUnit, s)
}

func (u Unit) String() string {
	switch u {
	case MB:
		return "MB"
	case GB:
		return "GB"
	case Mb:
		return "Mb"
	case Gb:
		return "Gb"
	}
	return fmt.Sprintf("Unit(%d)", int64(u))
}

// Bytes converts a value expressed in this unit to a byte count.
func (u Unit) Bytes(value float64) int64 {
	return int64(value * float64(u))
}
