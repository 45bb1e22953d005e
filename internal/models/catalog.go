package models

import "time"

// Category groups products.
type Category struct {
	ID   int    `db:"category_id" json:"category_id"`
	Name string `db:"category_name" json:"category_name"`
}

// Product is a logical catalog item; sellable variants live in ProductOption.
type Product struct {
	ID         int    `db:"product_id" json:"product_id"`
	Model      string `db:"model" json:"model"`
	Brand      string `db:"brand_name" json:"brand_name"`
	CategoryID *int   `db:"category_id" json:"category_id,omitempty"`
}

// ProductOption is a sellable variant (SKU) identified by barcode. Prices are
// minor currency units.
type ProductOption struct {
	Barcode        string `db:"barcode_id" json:"barcode_id"`
	ProductID      int    `db:"product_id" json:"product_id"`
	Quantity       int    `db:"quantity" json:"quantity"`
	WholesalePrice Cents  `db:"wholesale_price" json:"wholesale_price"`
	SalePrice      Cents  `db:"sale_price" json:"sale_price"`
}

// ProductAttribute is a name/value pair describing a SKU (e.g. Color=Blue).
type ProductAttribute struct {
	Barcode     string `db:"barcode_id" json:"barcode_id"`
	AttributeID int    `db:"attribute_id" json:"attribute_id"`
	Name        string `db:"attribute_name" json:"attribute_name"`
	Value       string `db:"attribute_value" json:"attribute_value"`
}

// PriceHistory is an append-only log of SKU price changes.
type PriceHistory struct {
	ID         int       `db:"price_id" json:"price_id"`
	Barcode    string    `db:"barcode_id" json:"barcode_id"`
	OldPrice   Cents     `db:"old_price" json:"old_price"`
	NewPrice   Cents     `db:"new_price" json:"new_price"`
	ChangeDate time.Time `db:"change_date" json:"change_date"`
}

// Supplier is a product source with contact details.
type Supplier struct {
	ID      int    `db:"supplier_id" json:"supplier_id"`
	Name    string `db:"supplier_name" json:"supplier_name"`
	Phone   string `db:"phone_number" json:"phone_number"`
	Address string `db:"address" json:"address"`
}
