package middleware

import (
	"github.com/foodbridge/food-donation-api/internal/constants"
	"github.com/foodbridge/food-donation-api/internal/database"
	apierrors "github.com/foodbridge/food-donation-api/internal/errors"
	"github.com/foodbridge/food-donation-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireDonor loads the donor profile owned by the authenticated user.
// Users without a donor profile cannot reach donor operations.
func RequireDonor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var donor models.Donor
		if err := database.GetDB().
			Where("user_id = ?", userID).
			First(&donor).Error; err != nil {
			apierrors.Forbidden(c, "Donor profile required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyDonor, donor)
		c.Next()
	}
}

// RequireNGO loads the NGO profile owned by the authenticated user.
func RequireNGO() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var ngo models.NGO
		if err := database.GetDB().
			Where("user_id = ?", userID).
			First(&ngo).Error; err != nil {
			apierrors.Forbidden(c, "NGO profile required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyNGO, ngo)
		c.Next()
	}
}

// GetDonor retrieves the donor profile loaded by RequireDonor
func GetDonor(c *gin.Context) (models.Donor, bool) {
	value, exists := c.Get(constants.ContextKeyDonor)
	if !exists {
		return models.Donor{}, false
	}
	donor, ok := value.(models.Donor)
	return donor, ok
}

// GetNGO retrieves the NGO profile loaded by RequireNGO
func GetNGO(c *gin.Context) (models.NGO, bool) {
	value, exists := c.Get(constants.ContextKeyNGO)
	if !exists {
		return models.NGO{}, false
	}
	ngo, ok := value.(models.NGO)
	return ngo, ok
}
