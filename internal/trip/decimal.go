package trip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Decimal is a decimal number held as the text the user typed.
// Keeping the text avoids rounding "12.50" to 12.5 (or worse) while the
// value is still being edited; it becomes a float only at normalization.
type Decimal string

// Accepts partial input such as "12.", ".5" or "-" so typing is never blocked.
var decimalPattern = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)

// ParseDecimal validates edit-time text and returns it as a Decimal
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return "", fmt.Errorf("%q is not a decimal number", s)
	}
	return Decimal(s), nil
}

// IsBlank returns true if nothing has been typed
func (d Decimal) IsBlank() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Float converts the text to a float. ok is false for blank or incomplete
// text such as "-" or ".".
func (d Decimal) Float() (v float64, ok bool) {
	s := strings.TrimSpace(string(d))
	if s == "" || !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatOrZero is Float with unparsable text counted as zero
func (d Decimal) FloatOrZero() float64 {
	v, _ := d.Float()
	return v
}

// FormatFloat renders a float without trailing zeros or exponent
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
