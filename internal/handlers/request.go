package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/foodbridge/food-donation-api/internal/dto"
	apierrors "github.com/foodbridge/food-donation-api/internal/errors"
	"github.com/foodbridge/food-donation-api/internal/middleware"
	"github.com/foodbridge/food-donation-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RequestHandler coordinates request lifecycle HTTP handlers.
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// CreateRequest records a new pending request for the calling NGO.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	ngo, exists := middleware.GetNGO(c)
	if !exists {
		apierrors.Forbidden(c, "NGO profile required")
		return
	}

	type CreateRequestRequest struct {
		FoodType string  `json:"food_type" binding:"required"`
		Quantity float64 `json:"quantity" binding:"required"`
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.requestService.CreateRequest(services.CreateRequestInput{
		NGOID:    ngo.ID,
		FoodType: req.FoodType,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestDTO(*request))
}

// ListNGORequests returns the calling NGO's requests.
func (h *RequestHandler) ListNGORequests(c *gin.Context) {
	ngo, exists := middleware.GetNGO(c)
	if !exists {
		apierrors.Forbidden(c, "NGO profile required")
		return
	}

	requests, err := h.requestService.ListNGORequests(ngo.ID)
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestListResponse(requests))
}

// ListOpenRequests returns pending requests across NGOs for donors to fulfill.
func (h *RequestHandler) ListOpenRequests(c *gin.Context) {
	requests, err := h.requestService.ListOpenRequests()
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestListResponse(requests))
}

// FulfillRequest lets the authenticated donor fulfill a pending request with
// a new donation assigned to the requesting NGO.
func (h *RequestHandler) FulfillRequest(c *gin.Context) {
	donor, exists := middleware.GetDonor(c)
	if !exists {
		apierrors.Forbidden(c, "Donor profile required")
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request ID")
		return
	}

	type FulfillRequestRequest struct {
		FoodType     string  `json:"food_type" binding:"required"`
		DonationDate string  `json:"donation_date" binding:"required"`
		ExpiryDate   string  `json:"expiry_date" binding:"required"`
		Quantity     float64 `json:"quantity" binding:"required"`
	}

	var req FulfillRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	donationDate, err := time.Parse(dateLayout, req.DonationDate)
	if err != nil {
		apierrors.BadRequest(c, "donation_date must be formatted YYYY-MM-DD")
		return
	}
	expiryDate, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		apierrors.BadRequest(c, "expiry_date must be formatted YYYY-MM-DD")
		return
	}

	request, err := h.requestService.FulfillRequest(services.FulfillRequestInput{
		DonorID:      donor.ID,
		RequestID:    requestID,
		FoodType:     req.FoodType,
		DonationDate: donationDate,
		ExpiryDate:   expiryDate,
		Quantity:     req.Quantity,
	})
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestDTO(*request))
}

func respondRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		apierrors.InvalidDateRange(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrFoodTypeRequired),
		errors.Is(err, services.ErrFoodTypeTooLong):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrRequestNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRequestNotPending):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
