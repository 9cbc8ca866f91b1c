package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pricegrid"
)

var (
	pricePattern = regexp.MustCompile(`\$\d[\d,]*(?:\.\d+)?`)
	digitRun     = regexp.MustCompile(`\d+`)
)

// ruleKeywords mark a line as surcharge or rule text.
var ruleKeywords = []string{"extra", "surcharge", "plus", "add", "deduct", "cost"}

const (
	// maxRuleNumbers is the most digit runs a rule line may carry; denser
	// lines are grid rows.
	maxRuleNumbers = 4

	// minRuleLength is the length a rule line must exceed.
	minRuleLength = 10
)

// Extras returns an extra for each row holding a dollar price. The text
// before the first price is the item and the text after it is the unit.
func Extras(rows []pricegrid.Row, n *Normalizer) []pricegrid.Extra {
	var extras []pricegrid.Extra
	for _, row := range rows {
		raw := strings.Join(row.Texts(), " ")
		price := pricePattern.FindString(raw)
		if price == "" {
			continue
		}
		amount, ok := n.Parse(strings.TrimPrefix(price, "$"))
		if !ok {
			continue
		}
		item, rest, _ := strings.Cut(raw, price)
		unit, _, _ := strings.Cut(rest, price)
		extras = append(extras, pricegrid.Extra{
			Item:   strings.TrimSpace(item),
			Price:  price,
			Amount: amount,
			Unit:   strings.TrimSpace(unit),
			Raw:    raw,
		})
	}
	return extras
}

// Rules returns the rows that read as surcharge or rule text: lines that
// mention a rule keyword, a dollar sign or a percentage, are longer than
// ten characters and carry at most four numbers.
func Rules(rows []pricegrid.Row) []pricegrid.Rule {
	var rules []pricegrid.Rule
	for _, row := range rows {
		text := strings.TrimSpace(strings.Join(row.Texts(), " "))
		if !isRuleText(text) {
			continue
		}
		if len(digitRun.FindAllString(text, -1)) > maxRuleNumbers {
			continue
		}
		if utf8.RuneCountInString(text) <= minRuleLength {
			continue
		}
		rules = append(rules, pricegrid.Rule{Text: text})
	}
	return rules
}

func isRuleText(text string) bool {
	if strings.ContainsAny(text, "$%") {
		return true
	}
	lower := strings.ToLower(text)
	for _, k := range ruleKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
