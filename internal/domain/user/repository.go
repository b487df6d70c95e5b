package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shareit/internal/database"
	"shareit/internal/domain"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	return saveErr(r.db.WithContext(ctx).Create(u).Error, u.Email)
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	return saveErr(r.db.WithContext(ctx).Save(u).Error, u.Email)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&domain.User{}, id).Error
	if database.IsIntegrityViolation(err) {
		return domain.Errorf(domain.ErrNotSaved, "User id %d is still referenced and was not deleted.", id)
	}
	return err
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "User with id %d was not found.", id)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func saveErr(err error, email string) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return domain.Errorf(domain.ErrConflict, "E-mail %s is already in use.", email)
	case database.IsIntegrityViolation(err):
		return domain.Errorf(domain.ErrNotSaved, "User was not saved.")
	}
	return err
}
