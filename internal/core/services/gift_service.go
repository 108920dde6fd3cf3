package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"
)

// giftService manages the gift catalog.
type giftService struct {
	giftRepo portsrepo.GiftRepositoryFacade
}

// NewGiftService creates a new GiftService.
func NewGiftService(giftRepo portsrepo.GiftRepositoryFacade) portssvc.GiftSvcFacade {
	return &giftService{giftRepo: giftRepo}
}

// Ensure giftService implements the portssvc.GiftSvcFacade interface
var _ portssvc.GiftSvcFacade = (*giftService)(nil)

func (s *giftService) CreateGift(ctx context.Context, req dto.CreateGiftRequest) (*domain.Gift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	gift := domain.Gift{
		GiftID:      uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.giftRepo.SaveGift(ctx, gift); err != nil {
		logger.Error("Failed to save gift", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, err
	}

	logger.Info("Gift added to catalog", slog.String("gift_id", gift.GiftID))
	return &gift, nil
}

func (s *giftService) UpdateGift(ctx context.Context, giftID string, req dto.UpdateGiftRequest) (*domain.Gift, error) {
	gift, err := s.giftRepo.FindGiftByID(ctx, giftID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		gift.Name = *req.Name
	}
	if req.Description != nil {
		gift.Description = *req.Description
	}
	if req.Price != nil {
		gift.Price = *req.Price
	}
	gift.UpdatedAt = time.Now().UTC()

	if err := s.giftRepo.UpdateGift(ctx, *gift); err != nil {
		return nil, err
	}
	return gift, nil
}

func (s *giftService) GetGiftByID(ctx context.Context, giftID string) (*domain.Gift, error) {
	return s.giftRepo.FindGiftByID(ctx, giftID)
}

func (s *giftService) ListGifts(ctx context.Context) ([]domain.Gift, error) {
	return s.giftRepo.FindGifts(ctx)
}
