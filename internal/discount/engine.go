package discount

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-kasir/internal/catalog"
	"github.com/noah-isme/toko-kasir/internal/pricing"
)

// Policy holds the merchant discount rules. The wholesale rule is a fixed
// volume policy independent of loyalty cards; the regular rule is driven by
// the card percentage. The two never combine.
type Policy struct {
	// FallbackPercent applies when a card number was supplied but is not in
	// the catalog.
	FallbackPercent int
	// WholesaleMinQty is the quantity threshold for the wholesale rule.
	WholesaleMinQty int
	// WholesalePercent is the flat wholesale discount percentage.
	WholesalePercent int
}

// Default returns the merchant policy: 2% unknown-card fallback, 10% off
// wholesale-eligible products from 5 units.
func Default() Policy {
	return Policy{FallbackPercent: 2, WholesaleMinQty: 5, WholesalePercent: 10}
}

// ResolvePercent returns the effective card discount percentage. No card
// means 0%; an unknown card falls back to the policy default; a known card
// uses the catalog percentage.
func (p Policy) ResolvePercent(cardNumber string, cards *catalog.CardStore) int {
	if cardNumber == "" {
		return 0
	}
	if card, ok := cards.ByNumber(cardNumber); ok {
		return card.Percent
	}
	return p.FallbackPercent
}

// Wholesale reports whether the wholesale rule applies to the line.
func (p Policy) Wholesale(product catalog.Product, quantity int) bool {
	return product.Wholesale && quantity >= p.WholesaleMinQty
}

// Compute returns the rounded discount amount for a single line. Rounding is
// applied to the rule result, not to sub-terms.
func (p Policy) Compute(product catalog.Product, quantity int, cardPercent int) decimal.Decimal {
	percent := cardPercent
	if p.Wholesale(product, quantity) {
		percent = p.WholesalePercent
	}
	gross := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
	return pricing.PercentOf(gross, percent)
}
