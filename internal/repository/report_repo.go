package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/techbay/store-analytics/internal/models"
)

// ReportRepository runs the fixed set of aggregate reporting queries. All
// money stays in minor units here; the service layer converts for display.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// TopProducts returns products ordered by total units sold descending,
// at most limit rows.
func (r *ReportRepository) TopProducts(limit int) ([]models.TopProductRow, error) {
	const q = `
        SELECT
            p.brand_name AS brand,
            p.model AS model,
            SUM(si.quantity_sold) AS total_quantity_sold
        FROM sale_item si
        JOIN product_option po ON po.barcode_id = si.barcode_id
        JOIN product p ON p.product_id = po.product_id
        GROUP BY p.product_id, p.brand_name, p.model
        ORDER BY total_quantity_sold DESC
        LIMIT $1`

	var rows []models.TopProductRow
	if err := r.db.Select(&rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalProfit returns the sum over every sale item of
// (sale_price - wholesale_price) * quantity_sold, in minor units.
// Zero when no items exist.
func (r *ReportRepository) TotalProfit() (models.Cents, error) {
	const q = `
        SELECT COALESCE(SUM((po.sale_price - po.wholesale_price) * si.quantity_sold), 0)
        FROM sale_item si
        JOIN product_option po ON po.barcode_id = si.barcode_id`

	var profit models.Cents
	if err := r.db.Get(&profit, q); err != nil {
		return 0, err
	}
	return profit, nil
}

// TopCategories returns categories ordered by total units sold descending,
// at most limit rows.
func (r *ReportRepository) TopCategories(limit int) ([]models.TopCategoryRow, error) {
	const q = `
        SELECT
            c.category_name AS category,
            COUNT(DISTINCT p.product_id) AS number_of_products,
            SUM(si.quantity_sold) AS total_quantity_sold
        FROM product_category c
        JOIN product p ON p.category_id = c.category_id
        JOIN product_option po ON po.product_id = p.product_id
        JOIN sale_item si ON si.barcode_id = po.barcode_id
        GROUP BY c.category_id, c.category_name
        ORDER BY total_quantity_sold DESC
        LIMIT $1`

	var rows []models.TopCategoryRow
	if err := r.db.Select(&rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalRevenue returns the sum over every sale item of
// sale_price * quantity_sold, in minor units. Zero when no items exist.
func (r *ReportRepository) TotalRevenue() (models.Cents, error) {
	const q = `
        SELECT COALESCE(SUM(po.sale_price * si.quantity_sold), 0)
        FROM sale_item si
        JOIN product_option po ON po.barcode_id = si.barcode_id`

	var revenue models.Cents
	if err := r.db.Get(&revenue, q); err != nil {
		return 0, err
	}
	return revenue, nil
}

// ProductDetails returns the per-product detail report ordered by units sold
// descending. limit caps the row count; limit <= 0 means no cap.
// Margin percentage is 0 when the sale price is 0.
func (r *ReportRepository) ProductDetails(limit int) ([]models.ProductDetailRow, error) {
	const q = `
        SELECT
            p.brand_name AS brand,
            p.model AS model,
            po.sale_price,
            SUM(si.quantity_sold) AS total_quantity_sold,
            CASE WHEN po.sale_price = 0 THEN 0
                 ELSE (po.sale_price - po.wholesale_price) * 100.0 / po.sale_price
            END AS margin_percentage,
            s.supplier_name,
            COALESCE(s.phone_number, '') AS phone_number,
            COALESCE(s.address, '') AS address
        FROM sale_item si
        JOIN product_option po ON po.barcode_id = si.barcode_id
        JOIN product p ON p.product_id = po.product_id
        JOIN product_supplier ps ON ps.product_id = p.product_id
        JOIN supplier s ON s.supplier_id = ps.supplier_id
        GROUP BY p.product_id, p.brand_name, p.model, po.barcode_id, s.supplier_id
        ORDER BY total_quantity_sold DESC`

	var rows []models.ProductDetailRow
	if limit > 0 {
		if err := r.db.Select(&rows, q+` LIMIT $1`, limit); err != nil {
			return nil, err
		}
		return rows, nil
	}
	if err := r.db.Select(&rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// CategoryDetails returns the per-category detail report ordered by total
// revenue descending. Revenue is the sum of price_sold_without_vat * quantity.
func (r *ReportRepository) CategoryDetails() ([]models.CategoryDetailRow, error) {
	const q = `
        SELECT
            c.category_name AS category,
            COUNT(DISTINCT p.product_id) AS number_of_products,
            SUM(si.quantity_sold) AS total_quantity_sold,
            AVG(po.sale_price)::float8 AS average_product_price,
            MAX(po.sale_price) AS maximum_product_price,
            SUM(si.price_sold_without_vat * si.quantity_sold) AS total_revenue
        FROM product_category c
        JOIN product p ON p.category_id = c.category_id
        JOIN product_option po ON po.product_id = p.product_id
        JOIN sale_item si ON si.barcode_id = po.barcode_id
        GROUP BY c.category_id, c.category_name
        ORDER BY total_revenue DESC`

	var rows []models.CategoryDetailRow
	if err := r.db.Select(&rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesSeries returns the daily sales time series for one category: units
// sold and revenue per day, date ascending. An unknown or quiet category
// yields an empty slice, not an error.
func (r *ReportRepository) SalesSeries(categoryID int) ([]models.SalesPoint, error) {
	const q = `
        SELECT
            s.sale_date::date AS sale_day,
            SUM(si.quantity_sold) AS total_quantity,
            SUM(si.price_sold_without_vat * si.quantity_sold) AS total_sales
        FROM sale_item si
        JOIN sale s ON s.sale_id = si.sale_id
        JOIN product_option po ON po.barcode_id = si.barcode_id
        JOIN product p ON p.product_id = po.product_id
        WHERE p.category_id = $1
        GROUP BY sale_day
        ORDER BY sale_day`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var points []models.SalesPoint
	if err := stmt.Select(&points, categoryID); err != nil {
		return nil, err
	}
	return points, nil
}
