package checkout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-kasir/internal/catalog"
	"github.com/noah-isme/toko-kasir/internal/common"
	"github.com/noah-isme/toko-kasir/internal/discount"
	"github.com/noah-isme/toko-kasir/internal/order"
	"github.com/noah-isme/toko-kasir/internal/pricing"
)

// Line is one computed receipt line. All monetary fields carry two fractional
// digits.
type Line struct {
	Quantity  int
	Name      string
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
}

// Totals aggregates the receipt sums. Gross equals Net plus Discount; both
// running sums are re-rounded after every line, so Gross reflects cumulative
// rounding rather than a single final rounding pass.
type Totals struct {
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Net      decimal.Decimal
}

// Result is the outcome of a completed calculation.
type Result struct {
	Lines       []Line
	Totals      Totals
	CardNumber  string
	CardPercent int
}

// Service computes receipts from parsed requests and loaded catalogs.
type Service struct {
	Products *catalog.ProductStore
	Cards    *catalog.CardStore
	Policy   discount.Policy
	Log      zerolog.Logger
}

// Compute folds over the requested line items in order, validating stock and
// the balance ceiling, and accumulating rounded totals. It aborts at the
// first violation; no partial receipt survives a failure.
func (s *Service) Compute(req order.Request) (Result, error) {
	if s == nil || s.Products == nil || s.Cards == nil {
		return Result{}, errors.New("checkout service not configured")
	}

	res := Result{
		CardNumber:  req.DiscountCard,
		CardPercent: s.Policy.ResolvePercent(req.DiscountCard, s.Cards),
		Totals: Totals{
			Gross:    decimal.Zero,
			Discount: decimal.Zero,
			Net:      decimal.Zero,
		},
	}

	for _, item := range req.Lines {
		product, ok := s.Products.ByID(item.ProductID)
		if !ok {
			return Result{}, common.BadRequest(fmt.Sprintf("product %d not found", item.ProductID), nil)
		}
		if item.Quantity > product.Stock {
			return Result{}, common.BadRequest(
				fmt.Sprintf("product %d: requested %d exceeds stock %d", item.ProductID, item.Quantity, product.Stock), nil)
		}

		unitPrice := pricing.Round(product.Price)
		lineDiscount := s.Policy.Compute(product, item.Quantity, res.CardPercent)
		lineTotal := pricing.Round(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Sub(lineDiscount))

		res.Totals.Net = pricing.Round(res.Totals.Net.Add(lineTotal))
		res.Totals.Discount = pricing.Round(res.Totals.Discount.Add(lineDiscount))

		if req.HasBalance() && req.Balance.LessThan(res.Totals.Net) {
			return Result{}, common.NotEnoughMoney(
				fmt.Sprintf("running total %s exceeds balance %s", pricing.Format(res.Totals.Net), pricing.Format(*req.Balance)))
		}

		res.Lines = append(res.Lines, Line{
			Quantity:  item.Quantity,
			Name:      product.Name,
			UnitPrice: unitPrice,
			Discount:  lineDiscount,
			Total:     lineTotal,
		})
		s.Log.Debug().
			Int("product_id", item.ProductID).
			Int("quantity", item.Quantity).
			Str("total", pricing.Format(lineTotal)).
			Msg("line added")
	}

	res.Totals.Gross = res.Totals.Net.Add(res.Totals.Discount)
	return res, nil
}
