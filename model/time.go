package model

import (
	"fmt"
	"time"
)

// Sentinel-5P ground segment filenames carry compact UTC timestamps with no
// separators and no zone designator. Auxiliary products with an open-ended
// validity window use two fixed placeholder strings instead of real
// timestamps, so parsing has to special-case those before applying the
// strict layout.

// ProductTimeLayout is the compact timestamp format used in mission filenames
const ProductTimeLayout = "20060102T150405"

// ProductDateLayout is the day-only format used by the legacy snow/ice
// auxiliary naming scheme
const ProductDateLayout = "20060102"

// ValidityStartUnbounded is the placeholder carried in place of a validity
// start by products whose validity window has no lower bound
const ValidityStartUnbounded = "00000000T000000"

// ValidityStopUnbounded is the placeholder carried in place of a validity
// stop by products whose validity window has no upper bound
const ValidityStopUnbounded = "99999999T999999"

// ValidityMin and ValidityMax are the record values stored for unbounded
// validity ends. ValidityMin is the zero time (year 1); ValidityMax is the
// latest timestamp the archive framework can represent.
var (
	ValidityMin = time.Time{}
	ValidityMax = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// ParseProductTime parses a compact mission filename timestamp, e.g.
// "20180528T120000". Placeholder values are not accepted here; use
// ParseValidityStart or ParseValidityStop for fields that may be unbounded.
func ParseProductTime(value string) (time.Time, error) {
	parsed, err := time.Parse(ProductTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("Timestamp is not in compact mission format: `%s`", value)
	}
	return parsed, nil
}

// ParseProductDate parses a day-only timestamp, e.g. "20200115"
func ParseProductDate(value string) (time.Time, error) {
	parsed, err := time.Parse(ProductDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("Date is not in compact mission format: `%s`", value)
	}
	return parsed, nil
}

// ParseValidityStart parses a validity-start field, mapping the unbounded
// placeholder to ValidityMin
func ParseValidityStart(value string) (time.Time, error) {
	if value == ValidityStartUnbounded {
		return ValidityMin, nil
	}
	return ParseProductTime(value)
}

// ParseValidityStop parses a validity-stop field, mapping the unbounded
// placeholder to ValidityMax
func ParseValidityStop(value string) (time.Time, error) {
	if value == ValidityStopUnbounded {
		return ValidityMax, nil
	}
	return ParseProductTime(value)
}
