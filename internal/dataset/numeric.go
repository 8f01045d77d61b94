package dataset

import (
	"math"
	"strconv"
	"strings"
)

// parseNumeric reads a cell as float64. With dec == 0 the decimal separator is
// guessed per value: if both ',' and '.' occur the later one wins, a lone ','
// is a decimal comma. Separators other than the decimal one are dropped.
func parseNumeric(s string, dec rune) (float64, error) {
	raw := strings.ReplaceAll(s, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errInvalidNumber
	}
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		switch {
		case cpos >= 0 && dpos >= 0 && cpos > dpos:
			dec = ','
		case cpos >= 0 && dpos < 0:
			dec = ','
		default:
			dec = '.'
		}
	}
	for _, sep := range []rune{',', '.', ' '} {
		if sep != dec {
			raw = strings.ReplaceAll(raw, string(sep), "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errInvalidNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errInvalidNumber
	}
	return f, nil
}
