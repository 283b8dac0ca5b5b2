package render

import "strconv"

// Text renders an optional column; nil prints as an empty cell.
func Text(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func ID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Money prints a salary with the fewest digits that round-trip.
func Money(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func OptionalMoney(value *float64) string {
	if value == nil {
		return ""
	}
	return Money(*value)
}
