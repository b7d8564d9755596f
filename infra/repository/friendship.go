package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

const friendshipKey = "user_id = ? AND friend_name = ?"

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates a friendship repository on the given session.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Save(ctx context.Context, f *domain.Friendship) error {
	m := newFriendshipModel(f)
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *friendshipRepository) Update(ctx context.Context, f *domain.Friendship) error {
	m := newFriendshipModel(f)
	return affected(r.db.WithContext(ctx).
		Model(&Friendship{}).
		Where(friendshipKey, f.UserID, f.FriendName).
		Select("*").
		Omit("user_id", "friend_name", "created_at").
		Updates(&m))
}

func (r *friendshipRepository) Delete(ctx context.Context, f *domain.Friendship) error {
	return affected(r.db.WithContext(ctx).
		Where(friendshipKey, f.UserID, f.FriendName).
		Delete(&Friendship{}))
}

func (r *friendshipRepository) Get(ctx context.Context, userID int64, friendName string) (*domain.Friendship, error) {
	var m Friendship
	if err := r.db.WithContext(ctx).Where(friendshipKey, userID, friendName).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *friendshipRepository) List(ctx context.Context) ([]*domain.Friendship, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *friendshipRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *friendshipRepository) ListRequested(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	return r.find(r.db.WithContext(ctx).
		Where("user_id = ? AND is_requested = ? AND is_waiting = ?", userID, true, true))
}

func (r *friendshipRepository) ListWaiting(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	return r.find(r.db.WithContext(ctx).
		Where("user_id = ? AND is_requested = ? AND is_waiting = ?", userID, false, true))
}

func (r *friendshipRepository) find(q *gorm.DB) ([]*domain.Friendship, error) {
	var models []Friendship
	if err := q.Order("user_id, friend_name").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]*domain.Friendship, 0, len(models))
	for i := range models {
		out = append(out, models[i].toDomain())
	}
	return out, nil
}

var _ repository.FriendshipRepository = (*friendshipRepository)(nil)
