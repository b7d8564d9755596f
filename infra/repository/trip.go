package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a trip repository on the given session.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Save(ctx context.Context, t *domain.Trip) error {
	id, err := nextID(ctx, r.db, Trip{}.TableName())
	if err != nil {
		return err
	}
	m := newTripModel(t)
	m.ID = id
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	t.ID = id
	return nil
}

func (r *tripRepository) Update(ctx context.Context, t *domain.Trip) error {
	m := newTripModel(t)
	return affected(r.db.WithContext(ctx).
		Model(&Trip{}).
		Where("id = ?", t.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m))
}

func (r *tripRepository) Delete(ctx context.Context, t *domain.Trip) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", t.ID).Delete(&Trip{}))
}

func (r *tripRepository) Get(ctx context.Context, id int64) (*domain.Trip, error) {
	var m Trip
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *tripRepository) List(ctx context.Context) ([]*domain.Trip, error) {
	var models []Trip
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	trips := make([]*domain.Trip, 0, len(models))
	for i := range models {
		trips = append(trips, models[i].toDomain())
	}
	return trips, nil
}

var _ repository.TripRepository = (*tripRepository)(nil)
