package constants

// Session / context keys
const (
	SessionCookieName = "foodbridge_session"
	ContextKeyUserID  = "user_id"
	ContextKeyDonor   = "donor"
	ContextKeyNGO     = "ngo"
)

// Validation limits
const (
	MinPasswordLength = 8
	MaxFoodTypeLength = 100
)

// Reporting
const (
	TopDonorsLimit    = 10
	TrendWindowMonths = 12
)
