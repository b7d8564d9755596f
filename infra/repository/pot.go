package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

type potRepository struct {
	db *gorm.DB
}

// NewPotRepository creates a pot repository on the given session.
func NewPotRepository(db *gorm.DB) repository.PotRepository {
	return &potRepository{db: db}
}

func (r *potRepository) Save(ctx context.Context, p *domain.Pot) error {
	id, err := nextID(ctx, r.db, Pot{}.TableName())
	if err != nil {
		return err
	}
	m := newPotModel(p)
	m.ID = id
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	p.ID = id
	return nil
}

func (r *potRepository) Update(ctx context.Context, p *domain.Pot) error {
	m := newPotModel(p)
	return affected(r.db.WithContext(ctx).
		Model(&Pot{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m))
}

func (r *potRepository) Delete(ctx context.Context, p *domain.Pot) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", p.ID).Delete(&Pot{}))
}

func (r *potRepository) Get(ctx context.Context, id int64) (*domain.Pot, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *potRepository) GetByTrip(ctx context.Context, tripID int64) (*domain.Pot, error) {
	return r.first(ctx, "trip_id = ?", tripID)
}

func (r *potRepository) List(ctx context.Context) ([]*domain.Pot, error) {
	var models []Pot
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	pots := make([]*domain.Pot, 0, len(models))
	for i := range models {
		pots = append(pots, models[i].toDomain())
	}
	return pots, nil
}

func (r *potRepository) first(ctx context.Context, query string, args ...any) (*domain.Pot, error) {
	var m Pot
	if err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

var _ repository.PotRepository = (*potRepository)(nil)
