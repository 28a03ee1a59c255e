package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository implements GroupRepository interface using GORM
type GroupRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GroupRepository {
	return &GroupRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *GroupRepository) modelToEntity(m *model.Group) *entity.Group {
	return &entity.Group{
		ID:            m.ID,
		Name:          m.Name,
		MaxDepositors: m.MaxDepositors,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *GroupRepository) mapError(err error) error {
	return r.errorClassifier.Map(err, errs.ErrGroupNotFound, errs.ErrAlreadyExists)
}

// Create inserts a new group
func (r *GroupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupModel := model.Group{
		Name:          group.Name,
		MaxDepositors: group.MaxDepositors,
		CreatedAt:     group.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&groupModel).Error; err != nil {
		return r.mapError(err)
	}
	group.ID = groupModel.ID
	return nil
}

// GetByID retrieves a group
func (r *GroupRepository) GetByID(ctx context.Context, id uint64) (*entity.Group, error) {
	var groupModel model.Group
	if err := r.db.WithContext(ctx).First(&groupModel, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&groupModel), nil
}

// AddMember adds a user to a group; adding an existing member is a no-op
func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID uint64) error {
	member := model.GroupMember{
		GroupID:   groupID,
		UserID:    userID,
		CreatedAt: r.timeProvider.Now(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&member).Error
	if err != nil {
		return r.mapError(err)
	}

	r.logger.Debug("Group member added", map[string]any{
		"group_id": groupID,
		"user_id":  userID,
	})
	return nil
}

// ListByMember returns every group the user belongs to
func (r *GroupRepository) ListByMember(ctx context.Context, userID uint64) ([]*entity.Group, error) {
	var models []model.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = member_groups.id").
		Where("group_members.user_id = ?", userID).
		Order("member_groups.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.mapError(err)
	}

	groups := make([]*entity.Group, 0, len(models))
	for i := range models {
		groups = append(groups, r.modelToEntity(&models[i]))
	}
	return groups, nil
}

// LockCappedByMember locks the user's capped groups in id order so concurrent
// admin deposits into the same group count depositors one at a time
func (r *GroupRepository) LockCappedByMember(ctx context.Context, userID uint64) ([]*entity.Group, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = member_groups.id").
		Where("group_members.user_id = ? AND member_groups.max_depositors IS NOT NULL", userID).
		Order("member_groups.id ASC")
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "member_groups"}})
	}

	var models []model.Group
	if err := query.Find(&models).Error; err != nil {
		return nil, r.mapError(err)
	}

	groups := make([]*entity.Group, 0, len(models))
	for i := range models {
		groups = append(groups, r.modelToEntity(&models[i]))
	}
	return groups, nil
}
