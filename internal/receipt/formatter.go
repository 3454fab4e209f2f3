package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/toko-kasir/internal/checkout"
	"github.com/noah-isme/toko-kasir/internal/common"
	"github.com/noah-isme/toko-kasir/internal/pricing"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04:05"
)

// Build renders the semicolon-delimited receipt body for a completed
// calculation. Pure; the caller decides where the body goes.
func Build(res checkout.Result, now time.Time) string {
	var b strings.Builder

	b.WriteString("Date;Time\n")
	fmt.Fprintf(&b, "%s;%s\n\n", now.Format(dateLayout), now.Format(timeLayout))

	b.WriteString("QTY;DESCRIPTION;PRICE;DISCOUNT;TOTAL\n")
	for _, line := range res.Lines {
		fmt.Fprintf(&b, "%d;%s;%s$;%s$;%s$\n",
			line.Quantity,
			line.Name,
			pricing.Format(line.UnitPrice),
			pricing.Format(line.Discount),
			pricing.Format(line.Total),
		)
	}

	if res.CardNumber != "" {
		b.WriteString("\nDISCOUNT CARD;DISCOUNT PERCENTAGE\n")
		fmt.Fprintf(&b, "%s;%d%%\n", res.CardNumber, res.CardPercent)
	}

	b.WriteString("\nTOTAL PRICE;TOTAL DISCOUNT;TOTAL WITH DISCOUNT\n")
	fmt.Fprintf(&b, "%s$;%s$;%s$\n",
		pricing.Format(res.Totals.Gross),
		pricing.Format(res.Totals.Discount),
		pricing.Format(res.Totals.Net),
	)

	return b.String()
}

// BuildError renders the body written in place of a receipt when a run fails.
func BuildError(status common.Status) string {
	return fmt.Sprintf("ERROR\n%s\n", status)
}
