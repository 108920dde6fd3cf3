package services

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
	"github.com/giftvote/giftvote_app/internal/dto"
)

// GiftReaderSvc defines read operations for gift data
type GiftReaderSvc interface {
	// GetGiftByID retrieves a gift by ID.
	GetGiftByID(ctx context.Context, giftID string) (*domain.Gift, error)

	// ListGifts retrieves all gifts.
	ListGifts(ctx context.Context) ([]domain.Gift, error)
}

// GiftWriterSvc defines write operations for gift data
type GiftWriterSvc interface {
	// CreateGift adds a new gift to the catalog.
	CreateGift(ctx context.Context, req dto.CreateGiftRequest) (*domain.Gift, error)

	// UpdateGift updates an existing gift.
	UpdateGift(ctx context.Context, giftID string, req dto.UpdateGiftRequest) (*domain.Gift, error)
}

// GiftSvcFacade combines all gift-related service interfaces
type GiftSvcFacade interface {
	GiftReaderSvc
	GiftWriterSvc
}
