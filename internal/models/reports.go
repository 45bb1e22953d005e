package models

import "time"

// BrandSearchRow is one row of the per-brand listing page. NewPrice and
// ChangeDate are placeholder columns kept for the page layout.
type BrandSearchRow struct {
	Brand          string  `db:"brand"`
	Model          string  `db:"model"`
	AttributeName  *string `db:"attribute_name"`
	AttributeValue *string `db:"attribute_value"`
	Quantity       int     `db:"quantity"`
	WholesalePrice Cents   `db:"wholesale_price"`
	SalePrice      Cents   `db:"sale_price"`
	NewPrice       string  `db:"new_price"`
	ChangeDate     string  `db:"change_date"`
	PromoCode      *string `db:"promo_code"`
}

// TopProductRow is one row of the top-products-by-volume report.
type TopProductRow struct {
	Brand    string `db:"brand" json:"Brand"`
	Model    string `db:"model" json:"Model"`
	UnitsSold int64 `db:"total_quantity_sold" json:"TotalQuantitySold"`
}

// TopCategoryRow is one row of the top-categories-by-volume report.
type TopCategoryRow struct {
	Category     string `db:"category" json:"Category"`
	ProductCount int64  `db:"number_of_products" json:"NumberOfProducts"`
	UnitsSold    int64  `db:"total_quantity_sold" json:"TotalQuantitySold"`
}

// ProductDetailRow is one row of the product detail report. Margin is a
// percentage; it is 0 when the sale price is 0 (guarded in SQL).
type ProductDetailRow struct {
	Brand           string  `db:"brand"`
	Model           string  `db:"model"`
	SalePrice       Cents   `db:"sale_price"`
	UnitsSold       int64   `db:"total_quantity_sold"`
	Margin          float64 `db:"margin_percentage"`
	SupplierName    string  `db:"supplier_name"`
	SupplierPhone   string  `db:"phone_number"`
	SupplierAddress string  `db:"address"`
}

// CategoryDetailRow is one row of the category detail report. AveragePrice is
// fractional cents (SQL AVG); the service converts it to major units along
// with the other money fields.
type CategoryDetailRow struct {
	Category     string  `db:"category"`
	ProductCount int64   `db:"number_of_products"`
	UnitsSold    int64   `db:"total_quantity_sold"`
	AveragePrice float64 `db:"average_product_price"`
	MaximumPrice Cents   `db:"maximum_product_price"`
	Revenue      Cents   `db:"total_revenue"`
}

// SalesPoint is one day of the per-category sales time series.
type SalesPoint struct {
	Day      time.Time `db:"sale_day"`
	Quantity int64     `db:"total_quantity"`
	Revenue  Cents     `db:"total_sales"`
}
