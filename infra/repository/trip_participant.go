package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

const tripParticipantKey = "trip_id = ? AND user_pseudo = ?"

type tripParticipantRepository struct {
	db *gorm.DB
}

// NewTripParticipantRepository creates a participant repository on the given session.
func NewTripParticipantRepository(db *gorm.DB) repository.TripParticipantRepository {
	return &tripParticipantRepository{db: db}
}

func (r *tripParticipantRepository) Save(ctx context.Context, p *domain.TripParticipant) error {
	m := newTripParticipantModel(p)
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *tripParticipantRepository) Update(ctx context.Context, p *domain.TripParticipant) error {
	m := newTripParticipantModel(p)
	return affected(r.db.WithContext(ctx).
		Model(&TripParticipant{}).
		Where(tripParticipantKey, p.TripID, p.UserPseudo).
		Select("*").
		Omit("trip_id", "user_pseudo", "created_at").
		Updates(&m))
}

func (r *tripParticipantRepository) Delete(ctx context.Context, p *domain.TripParticipant) error {
	return affected(r.db.WithContext(ctx).
		Where(tripParticipantKey, p.TripID, p.UserPseudo).
		Delete(&TripParticipant{}))
}

func (r *tripParticipantRepository) Get(ctx context.Context, tripID int64, pseudo string) (*domain.TripParticipant, error) {
	var m TripParticipant
	if err := r.db.WithContext(ctx).Where(tripParticipantKey, tripID, pseudo).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *tripParticipantRepository) List(ctx context.Context) ([]*domain.TripParticipant, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *tripParticipantRepository) ListByTrip(ctx context.Context, tripID int64) ([]*domain.TripParticipant, error) {
	return r.find(r.db.WithContext(ctx).Where("trip_id = ?", tripID))
}

func (r *tripParticipantRepository) find(q *gorm.DB) ([]*domain.TripParticipant, error) {
	var models []TripParticipant
	if err := q.Order("trip_id, user_pseudo").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]*domain.TripParticipant, 0, len(models))
	for i := range models {
		out = append(out, models[i].toDomain())
	}
	return out, nil
}

var _ repository.TripParticipantRepository = (*tripParticipantRepository)(nil)
