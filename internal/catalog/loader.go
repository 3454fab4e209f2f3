package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/noah-isme/toko-kasir/internal/common"
	"github.com/noah-isme/toko-kasir/internal/pricing"
)

// Catalog files are semicolon-delimited with a single header line.
const delimiter = ';'

// LoadProducts reads the product catalog from path. Columns per row:
// id;description;price;quantityInStock;wholesaleProduct.
func LoadProducts(path string) (*ProductStore, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	store := &ProductStore{byID: make(map[int]Product, len(rows))}
	for i, row := range rows {
		p, err := parseProduct(row)
		if err != nil {
			return nil, common.BadRequest(fmt.Sprintf("product catalog row %d malformed", i+2), err)
		}
		store.byID[p.ID] = p
	}
	return store, nil
}

// LoadDiscountCards reads the discount-card catalog from path. Columns per
// row: <unused>;cardNumber;discountPercentage.
func LoadDiscountCards(path string) (*CardStore, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	store := &CardStore{byNumber: make(map[string]DiscountCard, len(rows))}
	for i, row := range rows {
		c, err := parseCard(row)
		if err != nil {
			return nil, common.BadRequest(fmt.Sprintf("discount-card catalog row %d malformed", i+2), err)
		}
		store.byNumber[c.Number] = c
	}
	return store, nil
}

// readRows fully reads a catalog file and returns its data rows with the
// header line dropped. The file is closed before the caller sees the rows.
func readRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, common.Internal(fmt.Sprintf("open catalog %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, common.Internal(fmt.Sprintf("read catalog %s", path), err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

func parseProduct(row []string) (Product, error) {
	if len(row) < 5 {
		return Product{}, fmt.Errorf("expected 5 columns, got %d", len(row))
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Product{}, fmt.Errorf("id: %w", err)
	}
	price, err := pricing.Parse(row[2])
	if err != nil {
		return Product{}, fmt.Errorf("price: %w", err)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return Product{}, fmt.Errorf("stock: %w", err)
	}
	wholesale, err := strconv.ParseBool(strings.TrimSpace(row[4]))
	if err != nil {
		return Product{}, fmt.Errorf("wholesale flag: %w", err)
	}
	return Product{
		ID:        id,
		Name:      row[1],
		Price:     price,
		Stock:     stock,
		Wholesale: wholesale,
	}, nil
}

func parseCard(row []string) (DiscountCard, error) {
	if len(row) < 3 {
		return DiscountCard{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}
	number := strings.TrimSpace(row[1])
	if number == "" {
		return DiscountCard{}, fmt.Errorf("card number is empty")
	}
	percent, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return DiscountCard{}, fmt.Errorf("percentage: %w", err)
	}
	return DiscountCard{Number: number, Percent: percent}, nil
}
