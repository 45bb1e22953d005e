package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Options controls a seeding run.
type Options struct {
	// Sales is the number of synthetic sales to generate.
	Sales int

	// Seed fixes the random source for reproducible data. 0 means time-based.
	Seed uint64

	// ExtraProducts appends that many generated products to the fixed catalog.
	ExtraProducts int

	// Now anchors the trailing sales window. Zero means time.Now().
	Now time.Time
}

// DefaultOptions returns the reference seeding configuration.
func DefaultOptions() Options {
	return Options{Sales: 500}
}

// Seeder populates the store with the sample catalog and synthetic sales.
type Seeder struct {
	db *sqlx.DB
}

// New creates a Seeder.
func New(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// Run seeds the store inside a single transaction: reference tables are
// replaced in place, the catalog is inserted once (skipped when products
// already exist), and opts.Sales synthetic sales are generated over the
// trailing year. Any failure rolls the whole run back.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.Sales < 0 {
		return fmt.Errorf("sales count must be >= 0, got %d", opts.Sales)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := gofakeit.New(seed)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.seedReference(tx); err != nil {
		return err
	}

	catalog, err := s.seedCatalog(tx, f, opts.ExtraProducts)
	if err != nil {
		return err
	}

	if err := s.seedSales(tx, f, now, catalog, opts.Sales); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	log.Info().
		Int("products", len(catalog)).
		Int("sales", opts.Sales).
		Uint64("seed", seed).
		Msg("seeding complete")
	return nil
}

// seedReference upserts the fixed categories, suppliers and promo codes.
// These carry stable identities, so reseeding replaces rather than duplicates.
func (s *Seeder) seedReference(tx *sqlx.Tx) error {
	log.Info().Msg("seeding reference tables")

	for _, c := range seedCategories {
		if _, err := tx.Exec(`
            INSERT INTO product_category (category_id, category_name)
            VALUES ($1, $2)
            ON CONFLICT (category_id) DO UPDATE SET category_name = EXCLUDED.category_name`,
			c.ID, c.Name); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}

	for _, sup := range seedSuppliers {
		if _, err := tx.Exec(`
            INSERT INTO supplier (supplier_id, supplier_name, phone_number, address)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (supplier_id) DO UPDATE SET
                supplier_name = EXCLUDED.supplier_name,
                phone_number = EXCLUDED.phone_number,
                address = EXCLUDED.address`,
			sup.ID, sup.Name, sup.Phone, sup.Address); err != nil {
			return fmt.Errorf("seed supplier %q: %w", sup.Name, err)
		}
	}

	if _, err := tx.Exec(`
        INSERT INTO promo_code (code_id, discount_percentage, valid_from, valid_to)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (code_id) DO UPDATE SET
            discount_percentage = EXCLUDED.discount_percentage,
            valid_from = EXCLUDED.valid_from,
            valid_to = EXCLUDED.valid_to`,
		promoCode, 10, "2024-01-01", "2026-12-31"); err != nil {
		return fmt.Errorf("seed promo code: %w", err)
	}

	return nil
}

// seedCatalog inserts the product catalog: each product with its option, a
// random color attribute, an initial price-history row, and a supplier link.
// When products already exist the insert is skipped and the stored options
// are used as the sales catalog.
func (s *Seeder) seedCatalog(tx *sqlx.Tx, f *gofakeit.Faker, extra int) ([]catalogEntry, error) {
	var existing int
	if err := tx.Get(&existing, `SELECT COUNT(*) FROM product`); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if existing > 0 {
		log.Info().Int("products", existing).Msg("catalog already seeded, reusing stored options")
		return s.loadCatalog(tx)
	}

	catalog := make([]catalogEntry, 0, len(sampleCatalog)+extra)
	catalog = append(catalog, sampleCatalog...)
	for i := 0; i < extra; i++ {
		catalog = append(catalog, buildExtraProduct(f, i+1))
	}

	log.Info().Int("products", len(catalog)).Msg("seeding catalog")
	for _, entry := range catalog {
		var productID int
		if err := tx.QueryRowx(`
            INSERT INTO product (model, category_id, brand_name)
            VALUES ($1, $2, $3)
            RETURNING product_id`,
			entry.Model, entry.CategoryID, entry.Brand).Scan(&productID); err != nil {
			return nil, fmt.Errorf("insert product %q: %w", entry.Model, err)
		}

		if _, err := tx.Exec(`
            INSERT INTO product_option (barcode_id, product_id, quantity, wholesale_price, sale_price)
            VALUES ($1, $2, $3, $4, $5)`,
			entry.Barcode, productID, entry.Quantity, entry.Wholesale, entry.Sale); err != nil {
			return nil, fmt.Errorf("insert option %q: %w", entry.Barcode, err)
		}

		if _, err := tx.Exec(`
            INSERT INTO product_attribute (barcode_id, attribute_id, attribute_name, attribute_value)
            VALUES ($1, 1, 'Color', $2)`,
			entry.Barcode, f.RandomString(colors)); err != nil {
			return nil, fmt.Errorf("insert attribute for %q: %w", entry.Barcode, err)
		}

		if _, err := tx.Exec(`
            INSERT INTO price_history (barcode_id, old_price, new_price, change_date)
            VALUES ($1, $2, $3, NOW())`,
			entry.Barcode, entry.Wholesale, entry.Sale); err != nil {
			return nil, fmt.Errorf("insert price history for %q: %w", entry.Barcode, err)
		}

		if _, err := tx.Exec(`
            INSERT INTO product_supplier (product_id, supplier_id)
            VALUES ($1, $2)`,
			productID, f.Number(1, len(seedSuppliers))); err != nil {
			return nil, fmt.Errorf("insert supplier link for %q: %w", entry.Model, err)
		}
	}

	return catalog, nil
}

// loadCatalog reads the stored options back so sales can still be generated
// against an existing catalog.
func (s *Seeder) loadCatalog(tx *sqlx.Tx) ([]catalogEntry, error) {
	rows, err := tx.Queryx(`SELECT barcode_id, sale_price FROM product_option ORDER BY barcode_id`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var catalog []catalogEntry
	for rows.Next() {
		var entry catalogEntry
		if err := rows.Scan(&entry.Barcode, &entry.Sale); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		catalog = append(catalog, entry)
	}
	return catalog, rows.Err()
}

// seedSales generates n synthetic sales with 1-4 line items each.
func (s *Seeder) seedSales(tx *sqlx.Tx, f *gofakeit.Faker, now time.Time, catalog []catalogEntry, n int) error {
	if n == 0 {
		return nil
	}
	if len(catalog) == 0 {
		return fmt.Errorf("cannot generate sales: empty catalog")
	}

	log.Info().Int("count", n).Msg("seeding sales")
	for i := 0; i < n; i++ {
		plan := buildSale(f, now, catalog)

		var saleID int
		if err := tx.QueryRowx(`
            INSERT INTO sale (sale_date, source_name, code_id, tax_rate,
                              total_price_without_vat, vat_paid, total_price_with_vat)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING sale_id`,
			plan.Date, plan.Source, plan.Promo, plan.TaxRate,
			plan.Subtotal, plan.VAT, plan.Total).Scan(&saleID); err != nil {
			return fmt.Errorf("insert sale %d: %w", i+1, err)
		}

		for _, item := range plan.Items {
			if _, err := tx.Exec(`
                INSERT INTO sale_item (sale_id, barcode_id, quantity_sold, price_sold_without_vat)
                VALUES ($1, $2, $3, $4)`,
				saleID, item.Barcode, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("insert sale item for sale %d: %w", saleID, err)
			}
		}
	}
	return nil
}
