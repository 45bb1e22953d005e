package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/techbay/store-analytics/internal/models"
)

// CatalogRepository handles read access to the product catalog.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Brands returns all distinct brand names in ascending order.
func (r *CatalogRepository) Brands() ([]string, error) {
	const q = `
        SELECT DISTINCT brand_name FROM product
        WHERE brand_name IS NOT NULL
        ORDER BY brand_name`

	var brands []string
	if err := r.db.Select(&brands, q); err != nil {
		return nil, err
	}
	return brands, nil
}

// SearchByBrand returns the per-brand listing: one row per distinct
// brand/model/attribute/option combination, with the best (max) promo code id
// seen on any sale of that option. New-price and change-date columns are
// placeholders for the page layout.
func (r *CatalogRepository) SearchByBrand(brand string) ([]models.BrandSearchRow, error) {
	const q = `
        SELECT
            p.brand_name AS brand,
            p.model AS model,
            pa.attribute_name,
            pa.attribute_value,
            po.quantity,
            po.wholesale_price,
            po.sale_price,
            '-' AS new_price,
            '-' AS change_date,
            MAX(pc.code_id) AS promo_code
        FROM product p
        JOIN product_option po ON po.product_id = p.product_id
        LEFT JOIN product_attribute pa ON pa.barcode_id = po.barcode_id
        LEFT JOIN sale_item si ON si.barcode_id = po.barcode_id
        LEFT JOIN sale s ON s.sale_id = si.sale_id
        LEFT JOIN promo_code pc ON pc.code_id = s.code_id
        WHERE p.brand_name = $1
        GROUP BY
            p.brand_name, p.model, pa.attribute_name, pa.attribute_value,
            po.quantity, po.wholesale_price, po.sale_price
        ORDER BY p.brand_name, p.model`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var rows []models.BrandSearchRow
	if err := stmt.Select(&rows, brand); err != nil {
		return nil, err
	}
	return rows, nil
}

// CategoryFilters returns id and name for every category, name ascending.
// Feeds the chart filter dropdown.
func (r *CatalogRepository) CategoryFilters() ([]models.Category, error) {
	const q = `
        SELECT category_id, category_name
        FROM product_category
        ORDER BY category_name`

	var categories []models.Category
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}
