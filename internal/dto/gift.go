package dto

import (
	"github.com/giftvote/giftvote_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Gift DTOs ---

// CreateGiftRequest defines data for adding a gift to the catalog.
type CreateGiftRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateGiftRequest defines the data allowed for updating a gift.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateGiftRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// GiftResponse defines data returned for a gift.
type GiftResponse struct {
	GiftID      string          `json:"giftID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ListGiftsResponse wraps the list of gifts.
type ListGiftsResponse struct {
	Gifts []GiftResponse `json:"gifts"`
}

// ToGiftResponse converts a domain.Gift to GiftResponse DTO.
func ToGiftResponse(g *domain.Gift) GiftResponse {
	return GiftResponse{
		GiftID:      g.GiftID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
	}
}

// ToListGiftsResponse converts a slice of domain.Gift to ListGiftsResponse DTO.
func ToListGiftsResponse(gifts []domain.Gift) ListGiftsResponse {
	responses := make([]GiftResponse, len(gifts))
	for i, g := range gifts {
		responses[i] = ToGiftResponse(&g)
	}
	return ListGiftsResponse{
		Gifts: responses,
	}
}
