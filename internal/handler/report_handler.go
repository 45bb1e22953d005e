package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/techbay/store-analytics/internal/cache"
	"github.com/techbay/store-analytics/internal/service"
	"github.com/techbay/store-analytics/internal/utils"
)

// ReportHandler serves the JSON reporting endpoints. When a ReportCache is
// configured, payloads are served from it and cache failures fall through to
// the store.
type ReportHandler struct {
	reports *service.ReportService
	cache   *cache.ReportCache
	debug   bool
}

// NewReportHandler constructs a ReportHandler. cache may be nil to disable caching.
func NewReportHandler(reports *service.ReportService, cache *cache.ReportCache, debug bool) *ReportHandler {
	return &ReportHandler{reports: reports, cache: cache, debug: debug}
}

// TopProducts returns the five best-selling products and the total profit.
func (h *ReportHandler) TopProducts(c *gin.Context) {
	h.respond(c, "top_products", nil, func() (any, error) {
		return h.reports.TopProducts()
	})
}

// TopCategories returns the five busiest categories and the total revenue.
func (h *ReportHandler) TopCategories(c *gin.Context) {
	h.respond(c, "top_categories", nil, func() (any, error) {
		return h.reports.TopCategories()
	})
}

// ProductDetails returns the product detail report. An optional limit query
// parameter caps the row count.
func (h *ReportHandler) ProductDetails(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.Error(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	h.respond(c, "product_details", []any{limit}, func() (any, error) {
		return h.reports.ProductDetails(limit)
	})
}

// CategoryDetails returns the category detail report.
func (h *ReportHandler) CategoryDetails(c *gin.Context) {
	h.respond(c, "category_details", nil, func() (any, error) {
		return h.reports.CategoryDetails()
	})
}

// ChartFilters returns the category filter list for the sales chart.
func (h *ReportHandler) ChartFilters(c *gin.Context) {
	h.respond(c, "chart_filters", nil, func() (any, error) {
		categories, err := h.reports.ChartFilters()
		if err != nil {
			return nil, err
		}
		return gin.H{"categories": categories}, nil
	})
}

// SalesData returns the daily sales time series for the posted category.
// A missing category_id is a client error answered without touching the store.
func (h *ReportHandler) SalesData(c *gin.Context) {
	raw := c.PostForm("category_id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "category_id is required")
		return
	}
	categoryID, err := strconv.Atoi(raw)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "category_id must be an integer")
		return
	}

	h.respond(c, "sales_data", []any{categoryID}, func() (any, error) {
		return h.reports.SalesSeries(categoryID)
	})
}

// respond serves a report payload, going through the cache when one is
// configured. build runs the underlying queries on a cache miss.
func (h *ReportHandler) respond(c *gin.Context, report string, params []any, build func() (any, error)) {
	ctx := c.Request.Context()

	if h.cache != nil {
		data, ok, err := h.cache.Get(ctx, report, params...)
		if err != nil {
			log.Warn().Err(err).Str("report", report).Msg("report cache read failed")
		} else if ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
	}

	payload, err := build()
	if err != nil {
		serverError(c, err, h.debug)
		return
	}

	if h.cache == nil {
		c.JSON(http.StatusOK, payload)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		serverError(c, err, h.debug)
		return
	}
	if err := h.cache.Set(ctx, data, report, params...); err != nil {
		log.Warn().Err(err).Str("report", report).Msg("report cache write failed")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
