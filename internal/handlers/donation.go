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

// dateLayout is the wire format for donation and expiry dates.
const dateLayout = "2006-01-02"

// DonationHandler coordinates donation lifecycle HTTP handlers.
type DonationHandler struct {
	donationService *services.DonationService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// CreateDonation records a new donation for the authenticated donor.
// Supplying ngo_id targets a specific NGO and the donation starts Assigned.
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	donor, exists := middleware.GetDonor(c)
	if !exists {
		apierrors.Forbidden(c, "Donor profile required")
		return
	}

	type CreateDonationRequest struct {
		FoodType     string  `json:"food_type" binding:"required"`
		DonationDate string  `json:"donation_date" binding:"required"`
		ExpiryDate   string  `json:"expiry_date" binding:"required"`
		Quantity     float64 `json:"quantity" binding:"required"`
		NGOID        *uint64 `json:"ngo_id"`
	}

	var req CreateDonationRequest
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

	donation, err := h.donationService.CreateDonation(services.CreateDonationInput{
		DonorID:      donor.ID,
		FoodType:     req.FoodType,
		DonationDate: donationDate,
		ExpiryDate:   expiryDate,
		Quantity:     req.Quantity,
		NGOID:        req.NGOID,
	})
	if err != nil {
		respondDonationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDonationDTO(*donation))
}

// ListDonorDonations returns the authenticated donor's donation history.
func (h *DonationHandler) ListDonorDonations(c *gin.Context) {
	donor, exists := middleware.GetDonor(c)
	if !exists {
		apierrors.Forbidden(c, "Donor profile required")
		return
	}

	donations, err := h.donationService.ListDonorDonations(donor.ID)
	if err != nil {
		respondDonationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationListResponse(donations))
}

// ListAvailableDonations returns claimable donations for the calling NGO.
func (h *DonationHandler) ListAvailableDonations(c *gin.Context) {
	ngo, exists := middleware.GetNGO(c)
	if !exists {
		apierrors.Forbidden(c, "NGO profile required")
		return
	}

	donations, err := h.donationService.ListAvailableDonations(ngo.ID)
	if err != nil {
		respondDonationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationListResponse(donations))
}

// ClaimDonation assigns an available donation to the calling NGO.
func (h *DonationHandler) ClaimDonation(c *gin.Context) {
	ngo, exists := middleware.GetNGO(c)
	if !exists {
		apierrors.Forbidden(c, "NGO profile required")
		return
	}

	donationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid donation ID")
		return
	}

	donation, err := h.donationService.ClaimDonation(donationID, ngo.ID)
	if err != nil {
		respondDonationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationDTO(*donation))
}

func respondDonationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		apierrors.InvalidDateRange(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrFoodTypeRequired),
		errors.Is(err, services.ErrFoodTypeTooLong):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDonationNotFound),
		errors.Is(err, services.ErrNGONotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyClaimed):
		apierrors.AlreadyClaimed(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
