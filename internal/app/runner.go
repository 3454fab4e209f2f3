package app

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-kasir/internal/catalog"
	"github.com/noah-isme/toko-kasir/internal/checkout"
	"github.com/noah-isme/toko-kasir/internal/common"
	"github.com/noah-isme/toko-kasir/internal/config"
	"github.com/noah-isme/toko-kasir/internal/discount"
	"github.com/noah-isme/toko-kasir/internal/order"
	"github.com/noah-isme/toko-kasir/internal/receipt"
)

// Runner executes one receipt calculation end to end: parse the arguments,
// load both catalogs, compute the receipt, write the result file. Each run is
// independent; the process exits after one computation.
type Runner struct {
	Config *config.Config
	Log    zerolog.Logger
	// Now supplies the receipt timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run processes the argument list and writes either the receipt or an error
// body. The returned status mirrors what was written to the output artifact;
// it is never surfaced as a process exit code.
func (r *Runner) Run(args []string) common.Status {
	r.Log.Info().Int("args", len(args)).Msg("run started")

	req, err := order.Parse(args)
	outPath := req.OutputPath
	if outPath == "" {
		outPath = r.Config.ResultPath
	}
	if err != nil {
		return r.fail(outPath, err, "parse arguments")
	}
	r.Log.Info().Int("lines", len(req.Lines)).Msg("arguments parsed")

	products, err := catalog.LoadProducts(req.ProductsPath)
	if err != nil {
		return r.fail(outPath, err, "load products")
	}
	r.Log.Info().Str("path", req.ProductsPath).Int("products", products.Len()).Msg("products loaded")

	cards, err := catalog.LoadDiscountCards(r.Config.DiscountCardsPath)
	if err != nil {
		return r.fail(outPath, err, "load discount cards")
	}
	r.Log.Info().Str("path", r.Config.DiscountCardsPath).Int("cards", cards.Len()).Msg("discount cards loaded")

	svc := &checkout.Service{
		Products: products,
		Cards:    cards,
		Policy: discount.Policy{
			FallbackPercent:  r.Config.DiscountFallbackPercent,
			WholesaleMinQty:  r.Config.WholesaleMinQty,
			WholesalePercent: r.Config.WholesalePercent,
		},
		Log: r.Log,
	}
	res, err := svc.Compute(req)
	if err != nil {
		return r.fail(outPath, err, "compute receipt")
	}

	// A missing saveToFile argument is reported as BAD REQUEST only after the
	// computation; the receipt is discarded and the error body lands at the
	// default path.
	if req.OutputPath == "" {
		r.Log.Warn().Str("path", outPath).Msg("saveToFile not supplied, recording bad request")
		return r.fail(outPath, common.BadRequest("saveToFile argument is required", nil), "resolve output path")
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	body := receipt.Build(res, now())
	if err := receipt.Write(req.OutputPath, body); err != nil {
		r.Log.Error().Err(err).Str("path", req.OutputPath).Msg("write receipt")
		return common.StatusInternal
	}
	r.Log.Info().Str("path", req.OutputPath).Str("total", res.Totals.Net.StringFixed(2)).Msg("receipt written")
	return common.StatusCompleted
}

// fail writes the error body for err to path and returns the recorded status.
func (r *Runner) fail(path string, err error, stage string) common.Status {
	status := common.StatusOf(err)
	r.Log.Error().Err(err).Str("stage", stage).Str("status", string(status)).Msg("run aborted")
	if writeErr := receipt.Write(path, receipt.BuildError(status)); writeErr != nil {
		r.Log.Error().Err(writeErr).Str("path", path).Msg("write error body")
	}
	return status
}
