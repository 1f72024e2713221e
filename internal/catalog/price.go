package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds scientific notation; larger exponents are treated as unparseable.
const maxExponent = 18

var numericPrefix = regexp.MustCompile(`^([+-]?)(\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d+))?`)

// ParsePriceBound converts user-typed text into a price bound.
// The longest leading number is used ("12abc" is 12) and text without one
// becomes zero. It never fails.
func ParsePriceBound(text string) decimal.Decimal {
	m := numericPrefix.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return decimal.Zero
	}

	mantissa := strings.TrimSuffix(m[2], ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}

	d, err := decimal.NewFromString(mantissa)
	if err != nil {
		return decimal.Zero
	}

	if m[3] != "" {
		exp, err := strconv.ParseInt(m[3], 10, 32)
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return decimal.Zero
		}
		d = d.Shift(int32(exp))
	}

	if m[1] == "-" {
		d = d.Neg()
	}

	return d
}
