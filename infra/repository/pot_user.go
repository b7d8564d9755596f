package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

const potUserKey = "pot_id = ? AND user_id = ?"

type potUserRepository struct {
	db *gorm.DB
}

// NewPotUserRepository creates a pot member repository on the given session.
func NewPotUserRepository(db *gorm.DB) repository.PotUserRepository {
	return &potUserRepository{db: db}
}

func (r *potUserRepository) Save(ctx context.Context, pu *domain.PotUser) error {
	m := newPotUserModel(pu)
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *potUserRepository) Update(ctx context.Context, pu *domain.PotUser) error {
	m := newPotUserModel(pu)
	return affected(r.db.WithContext(ctx).
		Model(&PotUser{}).
		Where(potUserKey, pu.PotID, pu.UserID).
		Select("*").
		Omit("pot_id", "user_id", "created_at").
		Updates(&m))
}

func (r *potUserRepository) Delete(ctx context.Context, pu *domain.PotUser) error {
	return affected(r.db.WithContext(ctx).
		Where(potUserKey, pu.PotID, pu.UserID).
		Delete(&PotUser{}))
}

func (r *potUserRepository) Get(ctx context.Context, potID, userID int64) (*domain.PotUser, error) {
	var m PotUser
	if err := r.db.WithContext(ctx).Where(potUserKey, potID, userID).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *potUserRepository) List(ctx context.Context) ([]*domain.PotUser, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *potUserRepository) ListByPot(ctx context.Context, potID int64) ([]*domain.PotUser, error) {
	return r.find(r.db.WithContext(ctx).Where("pot_id = ?", potID))
}

func (r *potUserRepository) find(q *gorm.DB) ([]*domain.PotUser, error) {
	var models []PotUser
	if err := q.Order("pot_id, user_id").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]*domain.PotUser, 0, len(models))
	for i := range models {
		out = append(out, models[i].toDomain())
	}
	return out, nil
}

var _ repository.PotUserRepository = (*potUserRepository)(nil)
