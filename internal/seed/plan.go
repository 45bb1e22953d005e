package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/techbay/store-analytics/internal/models"
)

// Sale generation parameters matching the reference dataset.
const (
	salesWindowDays = 365
	taxRatePercent  = 20
	minSubtotal     = 15000
	maxSubtotal     = 200000
	minItems        = 1
	maxItems        = 4
	minQuantity     = 1
	maxQuantity     = 10
)

// salePlan is one synthetic sale before it is written to the store.
type salePlan struct {
	Date     time.Time
	Source   string
	Promo    *string
	TaxRate  int
	Subtotal models.Cents
	VAT      models.Cents
	Total    models.Cents
	Items    []itemPlan
}

// itemPlan is one line of a planned sale.
type itemPlan struct {
	Barcode  string
	Quantity int
	Price    models.Cents
}

// buildSale draws one synthetic sale: a date uniform over the trailing
// sales window ending at now, 1-4 line items sampled without replacement from
// the catalog, and VAT derived from the subtotal by integer division so that
// total = subtotal + vat holds exactly.
func buildSale(f *gofakeit.Faker, now time.Time, catalog []catalogEntry) salePlan {
	start := now.AddDate(0, 0, -salesWindowDays)

	plan := salePlan{
		Date:    start.AddDate(0, 0, f.Number(0, salesWindowDays)),
		Source:  f.RandomString([]string{models.SourceOnline, models.SourceStore}),
		TaxRate: taxRatePercent,
	}
	if f.Bool() {
		code := promoCode
		plan.Promo = &code
	}

	plan.Subtotal = models.Cents(f.Number(minSubtotal, maxSubtotal))
	plan.VAT = plan.Subtotal * taxRatePercent / 100
	plan.Total = plan.Subtotal + plan.VAT

	// Sample line items without replacement within the sale.
	count := f.Number(minItems, maxItems)
	if count > len(catalog) {
		count = len(catalog)
	}
	idx := make([]int, len(catalog))
	for i := range idx {
		idx[i] = i
	}
	f.ShuffleInts(idx)
	for _, i := range idx[:count] {
		plan.Items = append(plan.Items, itemPlan{
			Barcode:  catalog[i].Barcode,
			Quantity: f.Number(minQuantity, maxQuantity),
			Price:    catalog[i].Sale,
		})
	}
	return plan
}

// buildExtraProduct fabricates a catalog entry beyond the fixed sample set.
// It keeps the shape of the sample catalog: one option, plausible stock, and
// a sale price marked up 10-60% over wholesale.
func buildExtraProduct(f *gofakeit.Faker, n int) catalogEntry {
	wholesale := models.Cents(f.Number(10000, 150000))
	return catalogEntry{
		Model:      f.ProductName(),
		CategoryID: f.Number(1, len(seedCategories)),
		Brand:      f.Company(),
		Barcode:    fmt.Sprintf("GEN-%04d", n),
		Quantity:   f.Number(20, 80),
		Wholesale:  wholesale,
		Sale:       wholesale * models.Cents(f.Number(110, 160)) / 100,
	}
}
