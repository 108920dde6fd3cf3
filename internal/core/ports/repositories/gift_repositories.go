package repositories

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// GiftReader defines read operations for gift data
type GiftReader interface {
	// FindGiftByID retrieves a specific gift by its ID.
	FindGiftByID(ctx context.Context, giftID string) (*domain.Gift, error)

	// FindGifts retrieves all gifts ordered by name.
	FindGifts(ctx context.Context) ([]domain.Gift, error)

	// FindGiftsByIDs retrieves the gifts matching the given IDs. Unknown IDs
	// are simply absent from the result.
	FindGiftsByIDs(ctx context.Context, giftIDs []string) ([]domain.Gift, error)
}

// GiftWriter defines write operations for gift data
type GiftWriter interface {
	// SaveGift persists a new gift.
	SaveGift(ctx context.Context, gift domain.Gift) error

	// UpdateGift updates an existing gift's details.
	UpdateGift(ctx context.Context, gift domain.Gift) error
}

// GiftRepositoryFacade combines all gift-related repository interfaces
type GiftRepositoryFacade interface {
	GiftReader
	GiftWriter
}
