package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IsInteger reports whether the json number literal has neither fraction nor exponent
func IsInteger(lit string) bool {
	return !strings.ContainsAny(lit, ".eE")
}

// Integer canonical digits of an integer literal, any size
func Integer(lit string) (string, error) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// Literal renders a json number literal the way it is echoed back to the agent:
// integers keep every digit, everything else goes through float64 and Repr.
func Literal(lit string) (string, error) {
	if IsInteger(lit) {
		return Integer(lit)
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return "", err
	}

	return Repr(f), nil
}

// Repr shortest round trip form of f. Decimal exponents in [-4, 16) use fixed
// notation with at least one fractional digit, the rest use d.ddde+XX.
func Repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp := s, 0
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant = s[:i]
		exp, _ = strconv.Atoi(s[i+1:])
	}

	var b strings.Builder
	if strings.HasPrefix(mant, "-") {
		b.WriteByte('-')
		mant = mant[1:]
	}

	digits := strings.Replace(mant, ".", "", 1)

	if exp >= -4 && exp < 16 {
		switch point := exp + 1; {
		case point <= 0:
			b.WriteString("0.")
			b.WriteString(strings.Repeat("0", -point))
			b.WriteString(digits)
		case len(digits) <= point:
			b.WriteString(digits)
			b.WriteString(strings.Repeat("0", point-len(digits)))
			b.WriteString(".0")
		default:
			b.WriteString(digits[:point])
			b.WriteByte('.')
			b.WriteString(digits[point:])
		}

		return b.String()
	}

	b.WriteString(digits[:1])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}

	b.WriteByte('e')
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}

	if exp < 10 {
		b.WriteByte('0')
	}

	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
