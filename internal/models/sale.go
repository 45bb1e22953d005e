package models

import "time"

// Sale channel sources.
const (
	SourceOnline = "Online"
	SourceStore  = "Store"
)

// PromoCode is a discount code with a validity window.
type PromoCode struct {
	Code     string    `db:"code_id" json:"code_id"`
	Discount int       `db:"discount_percentage" json:"discount_percentage"`
	From     time.Time `db:"valid_from" json:"valid_from"`
	To       time.Time `db:"valid_to" json:"valid_to"`
}

// Sale is one checkout. Money fields are minor units and satisfy
// TotalWithVAT = TotalWithoutVAT + VATPaid, with VATPaid derived from
// TotalWithoutVAT by integer division.
type Sale struct {
	ID              int       `db:"sale_id" json:"sale_id"`
	Date            time.Time `db:"sale_date" json:"sale_date"`
	Source          string    `db:"source_name" json:"source_name"`
	PromoCode       *string   `db:"code_id" json:"code_id,omitempty"`
	TaxRate         int       `db:"tax_rate" json:"tax_rate"`
	TotalWithoutVAT Cents     `db:"total_price_without_vat" json:"total_price_without_vat"`
	VATPaid         Cents     `db:"vat_paid" json:"vat_paid"`
	TotalWithVAT    Cents     `db:"total_price_with_vat" json:"total_price_with_vat"`
}

// SaleItem is one line of a sale. PriceSold is the per-unit price without VAT
// at the time of sale, in minor units.
type SaleItem struct {
	ID        int    `db:"sale_item_id" json:"sale_item_id"`
	SaleID    int    `db:"sale_id" json:"sale_id"`
	Barcode   string `db:"barcode_id" json:"barcode_id"`
	Quantity  int    `db:"quantity_sold" json:"quantity_sold"`
	PriceSold Cents  `db:"price_sold_without_vat" json:"price_sold_without_vat"`
}
