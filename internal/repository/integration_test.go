package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/techbay/store-analytics/internal/database"
	"github.com/techbay/store-analytics/internal/models"
	"github.com/techbay/store-analytics/internal/seed"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := postgres.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := postgres.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := postgres.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := database.ConnectDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	})

	if err := database.Migrate(db.DB, "../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// loadFixture inserts a minimal known catalog: one phone with three units
// sold and one accessory that was given away (sale price 0) and never sold.
func loadFixture(t *testing.T, db *sqlx.DB) {
	t.Helper()

	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("fixture insert failed: %v\n%s", err, query)
		}
	}

	// Reference rows carry fixed IDs so the seeder can later upsert over them.
	exec(`INSERT INTO product_category (category_id, category_name) VALUES (1, 'Phones'), (2, 'Accessories')`)
	exec(`INSERT INTO supplier (supplier_id, supplier_name, phone_number, address)
          VALUES (1, 'TechSource Ltd', '+1-555-0100', '12 Harbor Way')`)

	// Products and sales use generated IDs to keep the sequences consistent.
	var phoneID, stickerID int
	if err := db.QueryRowx(`INSERT INTO product (model, category_id, brand_name)
          VALUES ('iPhone 15 Pro', 1, 'Apple') RETURNING product_id`).Scan(&phoneID); err != nil {
		t.Fatalf("insert phone: %v", err)
	}
	if err := db.QueryRowx(`INSERT INTO product (model, category_id, brand_name)
          VALUES ('Promo Sticker', 2, 'Apple') RETURNING product_id`).Scan(&stickerID); err != nil {
		t.Fatalf("insert sticker: %v", err)
	}

	exec(`INSERT INTO product_option (barcode_id, product_id, quantity, wholesale_price, sale_price)
          VALUES ('APL-0001', $1, 50, 80000, 99900)`, phoneID)
	exec(`INSERT INTO product_option (barcode_id, product_id, quantity, wholesale_price, sale_price)
          VALUES ('APL-0002', $1, 500, 0, 0)`, stickerID)
	exec(`INSERT INTO product_attribute (barcode_id, attribute_id, attribute_name, attribute_value)
          VALUES ('APL-0001', 1, 'Color', 'Blue')`)
	exec(`INSERT INTO product_supplier (product_id, supplier_id) VALUES ($1, 1), ($2, 1)`, phoneID, stickerID)

	var saleID int
	if err := db.QueryRowx(`INSERT INTO sale (sale_date, source_name, tax_rate,
                            total_price_without_vat, vat_paid, total_price_with_vat)
          VALUES ('2026-08-15T10:00:00Z', 'online', 20, 299700, 59940, 359640)
          RETURNING sale_id`).Scan(&saleID); err != nil {
		t.Fatalf("insert sale: %v", err)
	}
	exec(`INSERT INTO sale_item (sale_id, barcode_id, quantity_sold, price_sold_without_vat)
          VALUES ($1, 'APL-0001', 3, 99900)`, saleID)
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := setupTestDB(t)
	loadFixture(t, db)

	catalog := NewCatalogRepository(db)
	reports := NewReportRepository(db)

	t.Run("Brands", func(t *testing.T) {
		brands, err := catalog.Brands()
		if err != nil {
			t.Fatalf("Brands: %v", err)
		}
		if len(brands) != 1 || brands[0] != "Apple" {
			t.Errorf("brands = %v, want [Apple]", brands)
		}
	})

	t.Run("SearchByBrand", func(t *testing.T) {
		rows, err := catalog.SearchByBrand("Apple")
		if err != nil {
			t.Fatalf("SearchByBrand: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		var phone *models.BrandSearchRow
		for i := range rows {
			if rows[i].Model == "iPhone 15 Pro" {
				phone = &rows[i]
			}
		}
		if phone == nil {
			t.Fatal("iPhone 15 Pro missing from listing")
		}
		if phone.SalePrice != 99900 || phone.WholesalePrice != 80000 {
			t.Errorf("prices = %d/%d, want 99900/80000", phone.SalePrice, phone.WholesalePrice)
		}
		if phone.AttributeValue == nil || *phone.AttributeValue != "Blue" {
			t.Errorf("attribute = %v, want Blue", phone.AttributeValue)
		}
	})

	t.Run("SearchByBrandUnknown", func(t *testing.T) {
		rows, err := catalog.SearchByBrand("NoSuchBrand")
		if err != nil {
			t.Fatalf("SearchByBrand: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("got %d rows for unknown brand, want 0", len(rows))
		}
	})

	t.Run("TopProductsAndProfit", func(t *testing.T) {
		top, err := reports.TopProducts(5)
		if err != nil {
			t.Fatalf("TopProducts: %v", err)
		}
		if len(top) != 1 {
			t.Fatalf("got %d top products, want 1", len(top))
		}
		if top[0].Model != "iPhone 15 Pro" || top[0].UnitsSold != 3 {
			t.Errorf("top product = %+v, want iPhone 15 Pro with 3 units", top[0])
		}

		profit, err := reports.TotalProfit()
		if err != nil {
			t.Fatalf("TotalProfit: %v", err)
		}
		// 3 units at (99900 - 80000) each.
		if profit != 59700 {
			t.Errorf("profit = %d, want 59700", profit)
		}
	})

	t.Run("TotalRevenue", func(t *testing.T) {
		revenue, err := reports.TotalRevenue()
		if err != nil {
			t.Fatalf("TotalRevenue: %v", err)
		}
		if revenue != 299700 {
			t.Errorf("revenue = %d, want 299700", revenue)
		}
	})

	t.Run("ProductDetails", func(t *testing.T) {
		rows, err := reports.ProductDetails(0)
		if err != nil {
			t.Fatalf("ProductDetails: %v", err)
		}
		// Only products that appear in sale items are reported.
		if len(rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(rows))
		}
		if rows[0].Model != "iPhone 15 Pro" || rows[0].UnitsSold != 3 {
			t.Errorf("row = %+v, want iPhone 15 Pro with 3 units", rows[0])
		}
		want := float64(99900-80000) * 100.0 / 99900
		if diff := rows[0].Margin - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("margin = %v, want about %v", rows[0].Margin, want)
		}
		if rows[0].SupplierName != "TechSource Ltd" {
			t.Errorf("supplier = %q, want TechSource Ltd", rows[0].SupplierName)
		}
	})

	t.Run("ProductDetailsLimit", func(t *testing.T) {
		rows, err := reports.ProductDetails(1)
		if err != nil {
			t.Fatalf("ProductDetails: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("got %d rows with limit 1, want 1", len(rows))
		}
	})

	t.Run("CategoryDetails", func(t *testing.T) {
		rows, err := reports.CategoryDetails()
		if err != nil {
			t.Fatalf("CategoryDetails: %v", err)
		}
		// Accessories has no sold items yet, so only Phones is reported.
		if len(rows) != 1 {
			t.Fatalf("got %d categories, want 1", len(rows))
		}
		if rows[0].Category != "Phones" {
			t.Errorf("first category = %q, want Phones", rows[0].Category)
		}
		if rows[0].Revenue != 299700 {
			t.Errorf("phones revenue = %d, want 299700", rows[0].Revenue)
		}
		if rows[0].MaximumPrice != 99900 {
			t.Errorf("phones max price = %d, want 99900", rows[0].MaximumPrice)
		}
	})

	t.Run("CategoryFilters", func(t *testing.T) {
		filters, err := catalog.CategoryFilters()
		if err != nil {
			t.Fatalf("CategoryFilters: %v", err)
		}
		if len(filters) != 2 {
			t.Errorf("got %d filters, want 2", len(filters))
		}
	})

	t.Run("SalesSeries", func(t *testing.T) {
		points, err := reports.SalesSeries(1)
		if err != nil {
			t.Fatalf("SalesSeries: %v", err)
		}
		if len(points) != 1 {
			t.Fatalf("got %d points, want 1", len(points))
		}
		if points[0].Quantity != 3 || points[0].Revenue != 299700 {
			t.Errorf("point = %+v, want quantity 3, revenue 299700", points[0])
		}

		empty, err := reports.SalesSeries(2)
		if err != nil {
			t.Fatalf("SalesSeries: %v", err)
		}
		if len(empty) != 0 {
			t.Errorf("got %d points for category without sales, want 0", len(empty))
		}
	})

	// Selling the zero-priced sticker must report a 0% margin, not divide by zero.
	t.Run("ZeroPriceMargin", func(t *testing.T) {
		var saleID int
		if err := db.QueryRowx(`INSERT INTO sale (sale_date, source_name, tax_rate,
                  total_price_without_vat, vat_paid, total_price_with_vat)
              VALUES ('2026-08-16T12:00:00Z', 'store', 20, 0, 0, 0)
              RETURNING sale_id`).Scan(&saleID); err != nil {
			t.Fatalf("insert sale: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO sale_item (sale_id, barcode_id, quantity_sold, price_sold_without_vat)
              VALUES ($1, 'APL-0002', 1, 0)`, saleID); err != nil {
			t.Fatalf("insert sale item: %v", err)
		}

		rows, err := reports.ProductDetails(0)
		if err != nil {
			t.Fatalf("ProductDetails: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0].Model != "iPhone 15 Pro" {
			t.Errorf("rows not ordered by units sold: first is %q", rows[0].Model)
		}
		if rows[1].Model != "Promo Sticker" || rows[1].Margin != 0 {
			t.Errorf("zero-price row = %+v, want Promo Sticker with margin 0", rows[1])
		}
	})

	// A seeding run on top of existing data must reuse the stored catalog and
	// only add sales, keeping every report queryable.
	t.Run("SeedOnTopOfExistingCatalog", func(t *testing.T) {
		err := seed.New(db).Run(context.Background(), seed.Options{Sales: 50, Seed: 7})
		if err != nil {
			t.Fatalf("seed run: %v", err)
		}

		var products int
		if err := db.Get(&products, `SELECT COUNT(*) FROM product`); err != nil {
			t.Fatalf("count products: %v", err)
		}
		if products != 2 {
			t.Errorf("product count = %d after reseed, want unchanged 2", products)
		}

		var sales int
		if err := db.Get(&sales, `SELECT COUNT(*) FROM sale`); err != nil {
			t.Fatalf("count sales: %v", err)
		}
		if sales != 52 {
			t.Errorf("sale count = %d, want the 2 fixture sales plus 50 seeded", sales)
		}

		top, err := reports.TopProducts(5)
		if err != nil {
			t.Fatalf("TopProducts after seed: %v", err)
		}
		if len(top) == 0 || len(top) > 5 {
			t.Fatalf("got %d top products, want 1..5", len(top))
		}
		for i := 1; i < len(top); i++ {
			if top[i].UnitsSold > top[i-1].UnitsSold {
				t.Errorf("top products not ordered: %d before %d", top[i-1].UnitsSold, top[i].UnitsSold)
			}
		}
	})
}

func TestSeederFreshDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := setupTestDB(t)

	err := seed.New(db).Run(context.Background(), seed.Options{Sales: 100, Seed: 42, ExtraProducts: 5})
	if err != nil {
		t.Fatalf("seed run: %v", err)
	}

	var products, sales, items int
	if err := db.Get(&products, `SELECT COUNT(*) FROM product`); err != nil {
		t.Fatalf("count products: %v", err)
	}
	if products != 30 {
		t.Errorf("product count = %d, want 25 fixed + 5 extra", products)
	}
	if err := db.Get(&sales, `SELECT COUNT(*) FROM sale`); err != nil {
		t.Fatalf("count sales: %v", err)
	}
	if sales != 100 {
		t.Errorf("sale count = %d, want 100", sales)
	}
	if err := db.Get(&items, `SELECT COUNT(*) FROM sale_item`); err != nil {
		t.Fatalf("count sale items: %v", err)
	}
	if items < sales {
		t.Errorf("sale_item count = %d, want at least one per sale", items)
	}

	// Every stored sale must satisfy the VAT identity.
	var broken int
	if err := db.Get(&broken, `
        SELECT COUNT(*) FROM sale
        WHERE total_price_with_vat <> total_price_without_vat + vat_paid`); err != nil {
		t.Fatalf("check VAT identity: %v", err)
	}
	if broken != 0 {
		t.Errorf("%d sales violate the VAT identity", broken)
	}

	reports := NewReportRepository(db)
	profit, err := reports.TotalProfit()
	if err != nil {
		t.Fatalf("TotalProfit: %v", err)
	}
	if profit <= 0 {
		t.Errorf("profit = %d, want positive for the sample catalog", profit)
	}
}
