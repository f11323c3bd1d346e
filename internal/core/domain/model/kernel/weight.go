package kernel

import (
	"strings"

	"github.com/shopspring/decimal"
)

// defaultWeight applies when the host record has no usable weight.
var defaultWeight = decimal.NewFromInt(1)

// Weight is a parcel weight in kilograms.
//
// Host records hold the weight as free text; NewWeight never fails. Empty,
// zero or unparseable text is read as 1 kg, matching what couriers expect for
// an unweighed parcel.
type Weight struct {
	raw   string
	value decimal.Decimal
}

func NewWeight(raw string) Weight {
	raw = strings.TrimSpace(raw)

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsZero() {
		value = defaultWeight
	}

	return Weight{raw: raw, value: value}
}

// Raw returns the text the weight was parsed from.
func (w Weight) Raw() string {
	return w.raw
}

// Value returns the parsed weight; 1 for the zero Weight.
func (w Weight) Value() decimal.Decimal {
	if w.value.IsZero() {
		return defaultWeight
	}
	return w.value
}

// Units rounds the weight half away from zero (2.5 -> 3) and floors the
// result at 1.
func (w Weight) Units() int {
	units := w.Value().Round(0).IntPart()
	if units < 1 {
		return 1
	}
	return int(units)
}
