package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is one row of the product catalog. Immutable after load.
type Product struct {
	ID        int
	Name      string
	Price     decimal.Decimal
	Stock     int
	Wholesale bool
}

// DiscountCard maps a loyalty card number to its discount percentage.
type DiscountCard struct {
	Number  string
	Percent int
}

// ProductStore is an in-memory product catalog keyed by id.
type ProductStore struct {
	byID map[int]Product
}

// NewProductStore builds a store from the given products. Later duplicates
// of an id replace earlier ones, mirroring the catalog file semantics.
func NewProductStore(products []Product) *ProductStore {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &ProductStore{byID: byID}
}

// ByID looks up a product by its catalog id.
func (s *ProductStore) ByID(id int) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len returns the number of loaded products.
func (s *ProductStore) Len() int {
	return len(s.byID)
}

// CardStore is an in-memory discount-card catalog keyed by card number.
type CardStore struct {
	byNumber map[string]DiscountCard
}

// NewCardStore builds a store from the given discount cards.
func NewCardStore(cards []DiscountCard) *CardStore {
	byNumber := make(map[string]DiscountCard, len(cards))
	for _, c := range cards {
		byNumber[c.Number] = c
	}
	return &CardStore{byNumber: byNumber}
}

// ByNumber looks up a discount card by its number.
func (s *CardStore) ByNumber(number string) (DiscountCard, bool) {
	c, ok := s.byNumber[number]
	return c, ok
}

// Len returns the number of loaded discount cards.
func (s *CardStore) Len() int {
	return len(s.byNumber)
}
