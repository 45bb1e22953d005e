package seed

import "github.com/techbay/store-analytics/internal/models"

// catalogEntry is one seed product together with its single option.
// Prices are minor currency units.
type catalogEntry struct {
	Model      string
	CategoryID int
	Brand      string
	Barcode    string
	Quantity   int
	Wholesale  models.Cents
	Sale       models.Cents
}

// Reference data. Categories and suppliers carry fixed ids so that reseeding
// replaces them in place instead of multiplying rows.
var seedCategories = []models.Category{
	{ID: 1, Name: "Smartphones"},
	{ID: 2, Name: "Laptops"},
	{ID: 3, Name: "Tablets"},
	{ID: 4, Name: "Smartwatches"},
	{ID: 5, Name: "Accessories"},
}

var seedSuppliers = []models.Supplier{
	{ID: 1, Name: "TechGlobal Inc.", Phone: "+1-555-0123", Address: "123 Tech Street, Silicon Valley, CA"},
	{ID: 2, Name: "Global Electronics", Phone: "+1-555-0124", Address: "456 Electronics Ave, New York, NY"},
	{ID: 3, Name: "Digital Solutions", Phone: "+1-555-0125", Address: "789 Digital Road, Seattle, WA"},
	{ID: 4, Name: "Smart Devices Co.", Phone: "+1-555-0126", Address: "321 Smart Blvd, Austin, TX"},
	{ID: 5, Name: "Future Tech Ltd.", Phone: "+1-555-0127", Address: "654 Future Lane, Boston, MA"},
}

const promoCode = "WELCOME10"

var colors = []string{"Black", "White", "Silver", "Blue", "Red", "Green"}

// sampleCatalog is the fixed 25-product seed catalog.
var sampleCatalog = []catalogEntry{
	{"iPhone 15 Pro", 1, "Apple", "APP15P-256", 50, 80000, 99900},
	{"iPhone 15", 1, "Apple", "APP15-128", 75, 60000, 79900},
	{"MacBook Pro 16", 2, "Apple", "APP-MBP16", 30, 150000, 199900},
	{"iPad Pro 12.9", 3, "Apple", "APP-IPAD12", 40, 80000, 99900},
	{"Apple Watch Series 9", 4, "Apple", "APP-WATCH9", 60, 30000, 39900},
	{"Galaxy S24 Ultra", 1, "Samsung", "SAM-S24U", 45, 70000, 89900},
	{"Galaxy Book 4", 2, "Samsung", "SAM-BOOK4", 35, 120000, 149900},
	{"Galaxy Tab S9", 3, "Samsung", "SAM-TABS9", 50, 60000, 79900},
	{"Galaxy Watch 6", 4, "Samsung", "SAM-WATCH6", 55, 25000, 29900},
	{"Galaxy Buds Pro", 5, "Samsung", "SAM-BUDSP", 80, 15000, 19900},
	{"Xperia 1 V", 1, "Sony", "SON-XP1V", 40, 75000, 94900},
	{"VAIO SX14", 2, "Sony", "SON-VAIO14", 25, 130000, 169900},
	{"Xperia Tablet Z4", 3, "Sony", "SON-TABZ4", 30, 70000, 89900},
	{"WH-1000XM5", 5, "Sony", "SON-WH1000", 65, 20000, 29900},
	{"WF-1000XM5", 5, "Sony", "SON-WF1000", 70, 15000, 19900},
	{"XPS 15", 2, "Dell", "DEL-XPS15", 40, 140000, 179900},
	{"Alienware m18", 2, "Dell", "DEL-ALIEN18", 25, 180000, 229900},
	{"Latitude 7440", 2, "Dell", "DEL-LAT7440", 35, 110000, 139900},
	{"Dell XPS 13", 2, "Dell", "DEL-XPS13", 45, 90000, 119900},
	{"Dell Inspiron 16", 2, "Dell", "DEL-INS16", 50, 70000, 89900},
	{"ThinkPad X1 Carbon", 2, "Lenovo", "LEN-X1C", 40, 120000, 149900},
	{"Yoga 9i", 2, "Lenovo", "LEN-YOGA9", 35, 100000, 129900},
	{"Tab P12 Pro", 3, "Lenovo", "LEN-TABP12", 45, 65000, 84900},
	{"ThinkPad X13", 2, "Lenovo", "LEN-X13", 55, 85000, 109900},
	{"IdeaPad 5", 2, "Lenovo", "LEN-IDEA5", 60, 60000, 79900},
}
