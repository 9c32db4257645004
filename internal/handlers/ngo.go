package handlers

import (
	"net/http"

	"github.com/foodbridge/food-donation-api/internal/dto"
	apierrors "github.com/foodbridge/food-donation-api/internal/errors"
	"github.com/foodbridge/food-donation-api/internal/services"
	"github.com/gin-gonic/gin"
)

// NGOHandler serves the NGO directory.
type NGOHandler struct {
	authService *services.AuthService
}

// NewNGOHandler creates a new NGOHandler.
func NewNGOHandler(authService *services.AuthService) *NGOHandler {
	return &NGOHandler{
		authService: authService,
	}
}

// ListNGOs returns every registered NGO ordered by name, for the donor's
// targeted-donation picker.
func (h *NGOHandler) ListNGOs(c *gin.Context) {
	ngos, err := h.authService.ListNGOs()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch NGOs")
		return
	}

	items := make([]dto.NGOListItemDTO, len(ngos))
	for i, ngo := range ngos {
		items[i] = dto.ToNGOListItemDTO(ngo)
	}

	c.JSON(http.StatusOK, gin.H{"ngos": items})
}
