package service

import (
	"github.com/techbay/store-analytics/internal/models"
)

// topLimit caps the top-products and top-categories reports.
const topLimit = 5

// CatalogStore is the catalog read access the service needs.
type CatalogStore interface {
	Brands() ([]string, error)
	SearchByBrand(brand string) ([]models.BrandSearchRow, error)
	CategoryFilters() ([]models.Category, error)
}

// ReportStore is the aggregate query access the service needs.
type ReportStore interface {
	TopProducts(limit int) ([]models.TopProductRow, error)
	TotalProfit() (models.Cents, error)
	TopCategories(limit int) ([]models.TopCategoryRow, error)
	TotalRevenue() (models.Cents, error)
	ProductDetails(limit int) ([]models.ProductDetailRow, error)
	CategoryDetails() ([]models.CategoryDetailRow, error)
	SalesSeries(categoryID int) ([]models.SalesPoint, error)
}

// ReportService shapes repository rows into response payloads. This is the
// one place where minor currency units become major units.
type ReportService struct {
	catalog CatalogStore
	reports ReportStore
}

// NewReportService constructs a ReportService.
func NewReportService(catalog CatalogStore, reports ReportStore) *ReportService {
	return &ReportService{catalog: catalog, reports: reports}
}

// TopProductsReport is the top-products payload: the five best sellers plus
// the store-wide profit in major units.
type TopProductsReport struct {
	Products []models.TopProductRow `json:"products"`
	Profit   float64                `json:"profit"`
}

// TopCategoriesReport is the top-categories payload: the five busiest
// categories plus the store-wide revenue in major units.
type TopCategoriesReport struct {
	Categories []models.TopCategoryRow `json:"categories"`
	Revenue    float64                 `json:"revenue"`
}

// ProductDetail is one row of the product detail report, money in major units.
type ProductDetail struct {
	Brand           string  `json:"Brand"`
	Model           string  `json:"Model"`
	SalePrice       float64 `json:"SalePrice"`
	UnitsSold       int64   `json:"TotalQuantitySold"`
	Margin          float64 `json:"MarginPercentage"`
	SupplierName    string  `json:"SupplierName"`
	SupplierPhone   string  `json:"Phone"`
	SupplierAddress string  `json:"Address"`
}

// CategoryDetail is one row of the category detail report, money in major units.
type CategoryDetail struct {
	Category     string  `json:"Category"`
	ProductCount int64   `json:"NumberOfProducts"`
	UnitsSold    int64   `json:"TotalQuantitySold"`
	AveragePrice float64 `json:"AverageProductPrice"`
	MaximumPrice float64 `json:"MaximumProductPrice"`
	Revenue      float64 `json:"TotalRevenue"`
}

// SalesDataPoint is one day of the category time series, revenue in major units.
type SalesDataPoint struct {
	Date     string  `json:"date"`
	Quantity int64   `json:"quantity"`
	Sales    float64 `json:"sales"`
}

// BrandListing is one row of the per-brand page, prices formatted for display.
type BrandListing struct {
	Brand          string
	Model          string
	AttributeName  string
	AttributeValue string
	Quantity       int
	WholesalePrice string
	SalePrice      string
	NewPrice       string
	ChangeDate     string
	PromoCode      string
}

// Brands returns all distinct brand names ascending.
func (s *ReportService) Brands() ([]string, error) {
	brands, err := s.catalog.Brands()
	if err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []string{}
	}
	return brands, nil
}

// SearchBrand returns the per-brand listing for the page. A brand with no
// products yields an empty listing, not an error.
func (s *ReportService) SearchBrand(brand string) ([]BrandListing, error) {
	rows, err := s.catalog.SearchByBrand(brand)
	if err != nil {
		return nil, err
	}

	listings := make([]BrandListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, BrandListing{
			Brand:          row.Brand,
			Model:          row.Model,
			AttributeName:  deref(row.AttributeName),
			AttributeValue: deref(row.AttributeValue),
			Quantity:       row.Quantity,
			WholesalePrice: row.WholesalePrice.String(),
			SalePrice:      row.SalePrice.String(),
			NewPrice:       row.NewPrice,
			ChangeDate:     row.ChangeDate,
			PromoCode:      deref(row.PromoCode),
		})
	}
	return listings, nil
}

// TopProducts returns the five best-selling products and the total profit.
func (s *ReportService) TopProducts() (*TopProductsReport, error) {
	products, err := s.reports.TopProducts(topLimit)
	if err != nil {
		return nil, err
	}
	profit, err := s.reports.TotalProfit()
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.TopProductRow{}
	}
	return &TopProductsReport{Products: products, Profit: profit.Major()}, nil
}

// TopCategories returns the five busiest categories and the total revenue.
func (s *ReportService) TopCategories() (*TopCategoriesReport, error) {
	categories, err := s.reports.TopCategories(topLimit)
	if err != nil {
		return nil, err
	}
	revenue, err := s.reports.TotalRevenue()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.TopCategoryRow{}
	}
	return &TopCategoriesReport{Categories: categories, Revenue: revenue.Major()}, nil
}

// ProductDetails returns the product detail report, units sold descending.
// limit <= 0 means all rows.
func (s *ReportService) ProductDetails(limit int) ([]ProductDetail, error) {
	rows, err := s.reports.ProductDetails(limit)
	if err != nil {
		return nil, err
	}

	details := make([]ProductDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, ProductDetail{
			Brand:           row.Brand,
			Model:           row.Model,
			SalePrice:       row.SalePrice.Major(),
			UnitsSold:       row.UnitsSold,
			Margin:          row.Margin,
			SupplierName:    row.SupplierName,
			SupplierPhone:   row.SupplierPhone,
			SupplierAddress: row.SupplierAddress,
		})
	}
	return details, nil
}

// CategoryDetails returns the category detail report, revenue descending.
func (s *ReportService) CategoryDetails() ([]CategoryDetail, error) {
	rows, err := s.reports.CategoryDetails()
	if err != nil {
		return nil, err
	}

	details := make([]CategoryDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, CategoryDetail{
			Category:     row.Category,
			ProductCount: row.ProductCount,
			UnitsSold:    row.UnitsSold,
			AveragePrice: row.AveragePrice / 100,
			MaximumPrice: row.MaximumPrice.Major(),
			Revenue:      row.Revenue.Major(),
		})
	}
	return details, nil
}

// ChartFilters returns the category filter list, name ascending.
func (s *ReportService) ChartFilters() ([]models.Category, error) {
	categories, err := s.catalog.CategoryFilters()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// SalesSeries returns the daily time series for one category, date ascending.
// A category with no sales yields an empty series.
func (s *ReportService) SalesSeries(categoryID int) ([]SalesDataPoint, error) {
	points, err := s.reports.SalesSeries(categoryID)
	if err != nil {
		return nil, err
	}

	series := make([]SalesDataPoint, 0, len(points))
	for _, p := range points {
		series = append(series, SalesDataPoint{
			Date:     p.Day.Format("2006-01-02"),
			Quantity: p.Quantity,
			Sales:    p.Revenue.Major(),
		})
	}
	return series, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
