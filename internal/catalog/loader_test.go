package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-kasir/internal/catalog"
	"github.com/noah-isme/toko-kasir/internal/common"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProducts(t *testing.T) {
	path := writeFile(t, "products.csv",
		"id;description;price;quantityInStock;wholesaleProduct\n"+
			"1;Milk;1.07;10;true\n"+
			"2;Cream 400g;2.71;20;false\n")

	store, err := catalog.LoadProducts(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	milk, ok := store.ByID(1)
	require.True(t, ok)
	require.Equal(t, "Milk", milk.Name)
	require.Equal(t, "1.07", milk.Price.StringFixed(2))
	require.Equal(t, 10, milk.Stock)
	require.True(t, milk.Wholesale)

	_, ok = store.ByID(99)
	require.False(t, ok)
}

func TestLoadProductsMalformedRow(t *testing.T) {
	cases := map[string]string{
		"bad id":        "id;d;p;q;w\nx;Milk;1.07;10;true\n",
		"bad price":     "id;d;p;q;w\n1;Milk;abc;10;true\n",
		"bad stock":     "id;d;p;q;w\n1;Milk;1.07;ten;true\n",
		"bad wholesale": "id;d;p;q;w\n1;Milk;1.07;10;maybe\n",
		"short row":     "id;d;p;q;w\n1;Milk;1.07\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "products.csv", content)
			_, err := catalog.LoadProducts(path)
			require.Error(t, err)
			require.Equal(t, common.StatusBadRequest, common.StatusOf(err))
		})
	}
}

func TestLoadProductsMissingFile(t *testing.T) {
	_, err := catalog.LoadProducts(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	require.Equal(t, common.StatusInternal, common.StatusOf(err))

	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
}

func TestLoadDiscountCards(t *testing.T) {
	path := writeFile(t, "discountCards.csv",
		"id;number;amount\n"+
			"1;1111;3\n"+
			"2;2222;5\n")

	store, err := catalog.LoadDiscountCards(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	card, ok := store.ByNumber("2222")
	require.True(t, ok)
	require.Equal(t, 5, card.Percent)

	_, ok = store.ByNumber("9999")
	require.False(t, ok)
}

func TestLoadDiscountCardsMalformedRow(t *testing.T) {
	path := writeFile(t, "discountCards.csv", "id;number;amount\n1;1111;five\n")
	_, err := catalog.LoadDiscountCards(path)
	require.Error(t, err)
	require.Equal(t, common.StatusBadRequest, common.StatusOf(err))
}

func TestLoadProductsHeaderOnly(t *testing.T) {
	path := writeFile(t, "products.csv", "id;description;price;quantityInStock;wholesaleProduct\n")
	store, err := catalog.LoadProducts(path)
	require.NoError(t, err)
	require.Equal(t, 0, store.Len())
}
