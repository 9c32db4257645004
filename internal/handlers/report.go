package handlers

import (
	"net/http"

	apierrors "github.com/foodbridge/food-donation-api/internal/errors"
	"github.com/foodbridge/food-donation-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves read-only aggregation endpoints.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// FoodTypeStats returns donation totals grouped by food type.
func (h *ReportHandler) FoodTypeStats(c *gin.Context) {
	stats, err := h.reportService.FoodTypeStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"food_types": stats})
}

// MonthlyTrends returns the trailing twelve months of donation activity.
func (h *ReportHandler) MonthlyTrends(c *gin.Context) {
	trends, err := h.reportService.MonthlyTrends()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// NGODistribution returns donation totals grouped by receiving NGO.
func (h *ReportHandler) NGODistribution(c *gin.Context) {
	rows, err := h.reportService.NGODistribution()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution": rows})
}

// TopDonors returns the highest-volume donors.
func (h *ReportHandler) TopDonors(c *gin.Context) {
	rows, err := h.reportService.TopDonors()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"top_donors": rows})
}
