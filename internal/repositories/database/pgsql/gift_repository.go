package pgsql

import (
	"context"
	"errors"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGiftRepository struct {
	BaseRepository
}

// newPgxGiftRepository creates a new repository for gift catalog data.
func newPgxGiftRepository(pool *pgxpool.Pool) portsrepo.GiftRepositoryFacade {
	return &PgxGiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGiftRepository implements portsrepo.GiftRepositoryFacade
var _ portsrepo.GiftRepositoryFacade = (*PgxGiftRepository)(nil)

var FULL_GIFT_SELECT_QUERY = `
SELECT
	g.gift_id, g.name, g.description, g.price, g.created_at, g.updated_at
FROM gifts g
`

func (r *PgxGiftRepository) getGifts(ctx context.Context, filterQuery string, args ...any) ([]domain.Gift, error) {
	query := FULL_GIFT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query gifts", err)
	}
	defer rows.Close()
	gifts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Gift])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Gift{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect gift rows", err)
	}
	return gifts, nil
}

func (r *PgxGiftRepository) SaveGift(ctx context.Context, gift domain.Gift) error {
	query := `
		INSERT INTO gifts (gift_id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		gift.GiftID,
		gift.Name,
		gift.Description,
		gift.Price,
		gift.CreatedAt,
		gift.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save gift "+gift.GiftID, err)
	}
	return nil
}

func (r *PgxGiftRepository) UpdateGift(ctx context.Context, gift domain.Gift) error {
	query := `
		UPDATE gifts
		SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE gift_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		gift.GiftID,
		gift.Name,
		gift.Description,
		gift.Price,
		gift.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update gift "+gift.GiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGiftRepository) FindGiftByID(ctx context.Context, giftID string) (*domain.Gift, error) {
	query := `WHERE g.gift_id = $1`
	gifts, err := r.getGifts(ctx, query, giftID)
	if err != nil {
		return nil, err
	}
	if len(gifts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &gifts[0], nil
}

func (r *PgxGiftRepository) FindGifts(ctx context.Context) ([]domain.Gift, error) {
	query := `ORDER BY g.name, g.gift_id`
	return r.getGifts(ctx, query)
}

func (r *PgxGiftRepository) FindGiftsByIDs(ctx context.Context, giftIDs []string) ([]domain.Gift, error) {
	if len(giftIDs) == 0 {
		return []domain.Gift{}, nil
	}
	query := `WHERE g.gift_id = ANY($1)`
	return r.getGifts(ctx, query, giftIDs)
}
