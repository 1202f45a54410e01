package message

import (
	"fmt"
	"strconv"
	"strings"
)

var prefixes = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"KRW": "₩",
	"AUD": "A$",
	"CAD": "C$",
	"NZD": "NZ$",
	"BRL": "R$",
	"CHF": "CHF ",
}

var suffixes = map[string]string{
	"SEK": " kr",
	"NOK": " kr",
	"DKK": " kr",
	"PLN": " zł",
}

// zeroDecimal currencies have no minor unit; their amounts are whole.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
}

// FormatAmount renders a minor-unit amount in a currency, grouping
// thousands. Currencies without a known symbol render with their code as a
// prefix.
func FormatAmount(minor int64, currency string) string {
	code := strings.ToUpper(currency)

	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	var body string
	if zeroDecimal[code] {
		body = groupThousands(minor)
	} else {
		body = fmt.Sprintf("%s.%02d", groupThousands(minor/100), minor%100)
	}

	if suffix, ok := suffixes[code]; ok {
		return sign + body + suffix
	}
	prefix, ok := prefixes[code]
	if !ok {
		prefix = code + " "
	}
	return sign + prefix + body
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
