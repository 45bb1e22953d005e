package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techbay/store-analytics/internal/service"
)

// PageHandler serves the HTML pages: the brand picker and the per-brand listing.
type PageHandler struct {
	reports *service.ReportService
	debug   bool
}

// NewPageHandler constructs a PageHandler.
func NewPageHandler(reports *service.ReportService, debug bool) *PageHandler {
	return &PageHandler{reports: reports, debug: debug}
}

// Index renders the brand picker with all distinct brands.
func (h *PageHandler) Index(c *gin.Context) {
	brands, err := h.reports.Brands()
	if err != nil {
		serverError(c, err, h.debug)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"brands": brands})
}

// SearchBrand renders the listing for the posted brand. An empty or absent
// brand redirects back to the picker without touching the store.
func (h *PageHandler) SearchBrand(c *gin.Context) {
	brand := c.PostForm("brand")
	if brand == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	results, err := h.reports.SearchBrand(brand)
	if err != nil {
		serverError(c, err, h.debug)
		return
	}
	c.HTML(http.StatusOK, "search_results.html", gin.H{
		"brand":   brand,
		"results": results,
	})
}
