package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

type CoinRepository struct {
	db *gorm.DB
}

type CoinRepositoryInterface interface {
	Credit(ctx context.Context, userID uuid.UUID, amount int, taskID *uuid.UUID, reason string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CoinTransaction, error)
}

var _ CoinRepositoryInterface = (*CoinRepository)(nil)

func NewCoinRepository(db *gorm.DB) *CoinRepository {
	return &CoinRepository{db: db}
}

// Credit appends a ledger entry and bumps the user's balance in a single
// database transaction, so the ledger always sums to the balance.
func (r *CoinRepository) Credit(ctx context.Context, userID uuid.UUID, amount int, taskID *uuid.UUID, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("coins", gorm.Expr("coins + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := &model.CoinTransaction{
			UserID: userID,
			TaskID: taskID,
			Amount: amount,
			Reason: reason,
		}
		return tx.Create(entry).Error
	})
}

func (r *CoinRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CoinTransaction, error) {
	var entries []model.CoinTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
