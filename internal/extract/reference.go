package extract

import "regexp"

// referenceRule is one label shape a payment provider stamps on its
// notifications. As with amounts, declaration order is the precedence order
// and the first match wins.
type referenceRule struct {
	name    string
	pattern *regexp.Regexp
}

var referenceRules = []referenceRule{
	// "Trx. ID: 123456"
	{name: "trx_id", pattern: regexp.MustCompile(`Trx\. ID:\s*([0-9]+)`)},
	// "(Hash. abc123def)" — closing parenthesis optional, some providers
	// truncate it.
	{name: "hash_paren", pattern: regexp.MustCompile(`(?i)\(Hash\.\s*([a-f0-9]+)\)?`)},
	// "លេខយោង 123456"
	{name: "khmer_reference", pattern: regexp.MustCompile(`លេខយោង\s+([0-9]+)`)},
	// "លេខប្រតិបត្តិការ: 123456"
	{name: "khmer_transaction", pattern: regexp.MustCompile(`លេខប្រតិបត្តិការ:\s*([0-9]+)`)},
	// "Txn Hash: abc123def"
	{name: "txn_hash", pattern: regexp.MustCompile(`(?i)Txn Hash:\s*([a-f0-9]+)`)},
	// "Transaction Hash: abc123def"
	{name: "transaction_hash", pattern: regexp.MustCompile(`(?i)Transaction Hash:\s*([a-f0-9]+)`)},
	// "Ref.ID: 123456"
	{name: "ref_id", pattern: regexp.MustCompile(`Ref\.ID:\s*([0-9]+)`)},
	// "Transaction ID: 099QORT252080682"
	{name: "transaction_id", pattern: regexp.MustCompile(`Transaction ID:\s*([a-zA-Z0-9]+)`)},
}

// Reference extracts a transaction reference from notification text, or
// returns false when no known label shape is present.
func Reference(text string) (string, bool) {
	for _, rule := range referenceRules {
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}
