package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRoleNotFound      = errors.New("role not found")
)

type Repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// CreateUser inserts a new user. Returns ErrUserAlreadyExists when the email
// is already taken.
func (r *Repo) CreateUser(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// GetUserByEmail finds a non-deleted user by email, regardless of active flag.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("email = ? AND is_deleted = ?", email, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

// GetActiveUserByEmail finds an active, non-deleted user by email.
func (r *Repo) GetActiveUserByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("email = ? AND is_deleted = ? AND is_active = ?", email, false, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

func (r *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

func (r *Repo) SaveUser(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateRefreshToken overwrites the user's stored refresh token inside a
// transaction, so a concurrent sign-in/logout cannot interleave with the
// read-check-write. A nil token clears the stored value.
func (r *Repo) UpdateRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		return tx.Model(&user).Update("refresh_token", token).Error
	})
}

// ListCustomers returns a page of non-deleted customers, newest first, plus
// the total count.
func (r *Repo) ListCustomers(ctx context.Context, page, size int) ([]entity.User, int64, error) {
	base := r.db.WithContext(ctx).Model(&entity.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ? AND users.is_deleted = ?", entity.RoleCustomer, false)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []entity.User
	err := base.Preload("Role").
		Order("users.created_at DESC").
		Offset(page * size).Limit(size).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *Repo) GetRoleByName(ctx context.Context, name string) (entity.Role, error) {
	var role entity.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Role{}, ErrRoleNotFound
		}
		return entity.Role{}, err
	}
	return role, nil
}
