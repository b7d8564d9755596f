package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository on the given session.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Save(ctx context.Context, u *domain.User) error {
	id, err := nextID(ctx, r.db, User{}.TableName())
	if err != nil {
		return err
	}
	m := newUserModel(u)
	m.ID = id
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	u.ID = id
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	m := newUserModel(u)
	return affected(r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", u.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m))
}

func (r *userRepository) Delete(ctx context.Context, u *domain.User) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", u.ID).Delete(&User{}))
}

func (r *userRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetByPseudo(ctx context.Context, pseudo string) (*domain.User, error) {
	return r.first(ctx, "pseudo = ?", pseudo)
}

func (r *userRepository) GetByMail(ctx context.Context, mail string) (*domain.User, error) {
	return r.first(ctx, "mail = ?", mail)
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var models []User
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	users := make([]*domain.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].toDomain())
	}
	return users, nil
}

func (r *userRepository) first(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

var _ repository.UserRepository = (*userRepository)(nil)
