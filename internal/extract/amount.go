// Package extract turns free-form payment-notification text into structured
// transaction facts. Extraction is pure, deterministic and fails closed: text
// that matches no rule (or carries a malformed numeric token) yields no result
// rather than an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sothea-dev/rielsum/internal/core/domain"
)

// amountRule is one pattern in the precedence cascade. Rules are tried in
// declaration order and the first match wins; later rules are not attempted.
type amountRule struct {
	name    string
	pattern *regexp.Regexp
	// resolve maps the submatches to a currency and the raw numeric token.
	resolve func(match []string) (domain.Currency, string)
}

// codeToSymbol normalizes three-letter currency codes to their symbol form.
// Codes without a mapping pass through uppercased (a "50.00 EUR" notification
// is recorded as EUR, not rejected).
var codeToSymbol = map[string]domain.Currency{
	"USD": domain.CurrencyUSD,
	"KHR": domain.CurrencyKHR,
}

func currencyFromCode(code string) domain.Currency {
	code = strings.ToUpper(code)
	if sym, ok := codeToSymbol[code]; ok {
		return sym
	}
	return domain.Currency(code)
}

var amountRules = []amountRule{
	{
		// Khmer riel narrative, e.g. "...ចំនួន 11,500 រៀល ពីឈ្មោះ..."
		name:    "khmer_riel",
		pattern: regexp.MustCompile(`(?:^|\s)([\d,]+(?:\.\d+)?)\s+រៀល`),
		resolve: func(m []string) (domain.Currency, string) { return domain.CurrencyKHR, m[1] },
	},
	{
		// Khmer dollar narrative, e.g. "...ចំនួន 23.25 ដុល្លារ ពីឈ្មោះ..."
		name:    "khmer_dollar",
		pattern: regexp.MustCompile(`(?:^|\s)([\d,]+(?:\.\d+)?)\s+ដុល្លារ`),
		resolve: func(m []string) (domain.Currency, string) { return domain.CurrencyUSD, m[1] },
	},
	{
		// Symbol before amount, e.g. "$100", "៛ 50.25"
		name:    "symbol_prefix",
		pattern: regexp.MustCompile(`([៛$])\s?([\d,]+(?:\.\d+)?)`),
		resolve: func(m []string) (domain.Currency, string) { return domain.Currency(m[1]), m[2] },
	},
	{
		// Amount before code, e.g. "65.00 USD", "100.50 khr"
		name:    "amount_code",
		pattern: regexp.MustCompile(`\b([\d,]+(?:\.\d+)?)\s+([A-Za-z]{3})\b`),
		resolve: func(m []string) (domain.Currency, string) { return currencyFromCode(m[2]), m[1] },
	},
	{
		// Code before amount, e.g. "USD 16.00"
		name:    "code_amount",
		pattern: regexp.MustCompile(`\b([A-Za-z]{3})\s+([\d,]+(?:\.\d+)?)`),
		resolve: func(m []string) (domain.Currency, string) { return currencyFromCode(m[1]), m[2] },
	},
}

// Amount extracts a (currency, amount) pair from notification text. The third
// return is false when no rule matched or the matched numeric token failed to
// parse; a parse failure aborts the whole extraction rather than falling
// through to the next rule.
func Amount(text string) (domain.Currency, decimal.Decimal, bool) {
	for _, rule := range amountRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		currency, token := rule.resolve(m)
		amount, err := parseAmount(token)
		if err != nil {
			return "", decimal.Decimal{}, false
		}
		return currency, amount, true
	}
	return "", decimal.Decimal{}, false
}

// parseAmount strips thousands separators and parses the remainder. Integer
// and fractional tokens land in the same decimal domain for downstream
// uniformity.
func parseAmount(token string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
}
