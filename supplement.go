package pricegrid

// Extra is a priced add-on line found outside the grids, such as
// "Chain guide $12.50 each".
type Extra struct {
	Page int `json:"page"`

	// Item is the text before the price.
	Item string `json:"item"`

	// Price is the price as printed, e.g. "$12.50".
	Price string `json:"price"`

	// Amount is Price as a number.
	Amount float64 `json:"amount"`

	// Unit is the text after the price.
	Unit string `json:"unit"`

	// Raw is the whole line.
	Raw string `json:"raw"`
}

// Rule is a line of surcharge or pricing-rule text.
type Rule struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

// Supplements holds the extras and rules read alongside a catalog's grids.
type Supplements struct {
	Extras []Extra `json:"extras"`
	Rules  []Rule  `json:"rules"`
}

// Empty reports whether there are no extras and no rules.
func (s *Supplements) Empty() bool {
	return s == nil || (len(s.Extras) == 0 && len(s.Rules) == 0)
}

// PageError records a supplement page that could not be read.
type PageError struct {
	Page int    `json:"page"`
	Err  string `json:"err"`
}
