package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:      transaction.UserID,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Description: transaction.Description,
		ReferenceID: transaction.ReferenceID,
		CreatedBy:   transaction.CreatedBy,
		CreatedAt:   transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Description: m.Description,
		ReferenceID: m.ReferenceID,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": transaction.UserID,
			"type":    transaction.Type,
			"error":   err.Error(),
		})
		return r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrAlreadyExists)
	}
	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"amount":         transaction.FormattedAmount(),
		"type":           transaction.Type,
	})
	return nil
}

// GetForUpdate retrieves a ledger entry and locks its row
func (r *TransactionRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := forUpdate(r.db.WithContext(ctx)).First(&transactionModel, id).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrAlreadyExists)
	}
	return r.modelToEntity(&transactionModel), nil
}

// UpdateAmount rewrites the amount of an entry
func (r *TransactionRepository) UpdateAmount(ctx context.Context, id uint64, amount int64) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("amount", amount)
	if result.Error != nil {
		return r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrAlreadyExists)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ListByUser returns the user's entries, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrAlreadyExists)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}

// SumByUser returns the sum of the user's entry amounts
func (r *TransactionRepository) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrAlreadyExists)
	}
	return sum, nil
}
