package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

const userTripKey = "user_id = ? AND trip_name = ?"

type userTripRepository struct {
	db *gorm.DB
}

// NewUserTripRepository creates a user trip repository on the given session.
func NewUserTripRepository(db *gorm.DB) repository.UserTripRepository {
	return &userTripRepository{db: db}
}

func (r *userTripRepository) Save(ctx context.Context, ut *domain.UserTrip) error {
	m := newUserTripModel(ut)
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *userTripRepository) Update(ctx context.Context, ut *domain.UserTrip) error {
	m := newUserTripModel(ut)
	return affected(r.db.WithContext(ctx).
		Model(&UserTrip{}).
		Where(userTripKey, ut.UserID, ut.TripName).
		Select("*").
		Omit("user_id", "trip_name", "created_at").
		Updates(&m))
}

func (r *userTripRepository) Delete(ctx context.Context, ut *domain.UserTrip) error {
	return affected(r.db.WithContext(ctx).
		Where(userTripKey, ut.UserID, ut.TripName).
		Delete(&UserTrip{}))
}

func (r *userTripRepository) Get(ctx context.Context, userID int64, tripName string) (*domain.UserTrip, error) {
	var m UserTrip
	if err := r.db.WithContext(ctx).Where(userTripKey, userID, tripName).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *userTripRepository) List(ctx context.Context) ([]*domain.UserTrip, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *userTripRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.UserTrip, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *userTripRepository) ListByTripName(ctx context.Context, tripName string) ([]*domain.UserTrip, error) {
	return r.find(r.db.WithContext(ctx).Where("trip_name = ?", tripName))
}

func (r *userTripRepository) find(q *gorm.DB) ([]*domain.UserTrip, error) {
	var models []UserTrip
	if err := q.Order("user_id, trip_name").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]*domain.UserTrip, 0, len(models))
	for i := range models {
		out = append(out, models[i].toDomain())
	}
	return out, nil
}

var _ repository.UserTripRepository = (*userTripRepository)(nil)
