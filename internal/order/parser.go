package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-kasir/internal/common"
	"github.com/noah-isme/toko-kasir/internal/pricing"
)

// Argument keys recognised in key=value tokens. Unknown keys are ignored.
const (
	keyDiscountCard = "discountCard"
	keyBalance      = "balanceDebitCard"
	keyProductsPath = "pathToFile"
	keyOutputPath   = "saveToFile"
)

var keyValuePattern = regexp.MustCompile(`([^=]+)=([^=]+)`)

var validate = validator.New()

// Line is one requested product line after merge-by-id.
type Line struct {
	ProductID int `validate:"gt=0"`
	Quantity  int `validate:"gt=0"`
}

// Request is a parsed checkout request. Lines preserve the insertion order of
// the first occurrence of each product id; repeated ids sum their quantities.
type Request struct {
	Lines        []Line `validate:"dive"`
	DiscountCard string `validate:"omitempty,len=4"`
	Balance      *decimal.Decimal
	ProductsPath string `validate:"required"`
	OutputPath   string
}

// HasBalance reports whether the caller supplied a balance ceiling.
func (r Request) HasBalance() bool {
	return r.Balance != nil
}

// Parse turns raw argument tokens into a validated Request. On failure the
// returned Request still carries whatever fields were consumed before the
// failing token, so the caller can resolve the output path for the error
// body the same way a successful run would.
func Parse(args []string) (Request, error) {
	req := Request{}
	if len(args) == 0 {
		return req, common.BadRequest("no arguments provided", nil)
	}

	index := make(map[int]int)
	for _, arg := range args {
		if strings.Contains(arg, "-") && !strings.Contains(arg, "=") {
			id, qty, err := parseItemToken(arg)
			if err != nil {
				return req, common.BadRequest(fmt.Sprintf("invalid item token %q", arg), err)
			}
			if at, ok := index[id]; ok {
				req.Lines[at].Quantity += qty
				continue
			}
			index[id] = len(req.Lines)
			req.Lines = append(req.Lines, Line{ProductID: id, Quantity: qty})
			continue
		}

		match := keyValuePattern.FindStringSubmatch(arg)
		if match == nil {
			return req, common.BadRequest(fmt.Sprintf("unrecognised token %q", arg), nil)
		}
		if err := applyOption(&req, match[1], match[2]); err != nil {
			return req, err
		}
	}

	if err := validate.Struct(req); err != nil {
		return req, common.BadRequest("invalid request", err)
	}
	return req, nil
}

// parseItemToken splits an <id>-<quantity> token into its two integers.
func parseItemToken(token string) (int, int, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected <id>-<quantity>")
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("id: %w", err)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("quantity: %w", err)
	}
	return id, qty, nil
}

func applyOption(req *Request, key, value string) error {
	switch key {
	case keyDiscountCard:
		if len(value) != 4 {
			return common.BadRequest(fmt.Sprintf("discount card %q must be exactly 4 characters", value), nil)
		}
		req.DiscountCard = value
	case keyBalance:
		balance, err := pricing.Parse(value)
		if err != nil {
			return common.BadRequest(fmt.Sprintf("invalid balance %q", value), err)
		}
		req.Balance = &balance
	case keyProductsPath:
		req.ProductsPath = value
	case keyOutputPath:
		req.OutputPath = value
	}
	return nil
}
