package prizes

import "github.com/shopspring/decimal"

// Constants for error messages
const (
	ErrPrizeNotFound       = "Prize not found"
	ErrCompetitionNotFound = "Competition not found"
	ErrFailedFetchPrizes   = "Failed to fetch prizes"
	ErrFailedCreatePrize   = "Failed to create prize"
	ErrFailedUpdatePrize   = "Failed to update prize"
	ErrFailedDeletePrize   = "Failed to delete prize"
	ErrNegativeAmount      = "Prize amount cannot be negative"
)

// PrizeRequest model for creating or updating a prize
type PrizeRequest struct {
	CompetitionID string          `json:"competition_id" binding:"required"`
	Rank          string          `json:"rank" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}
