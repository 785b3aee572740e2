package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/repo"
)

var (
	ErrUserExists   = errors.New("email already exists")
	ErrUserInactive = errors.New("user is deactivated")
)

type CustomerRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	SaveUser(ctx context.Context, user *entity.User) error
	ListCustomers(ctx context.Context, page, size int) ([]entity.User, int64, error)
	GetRoleByName(ctx context.Context, name string) (entity.Role, error)
}

// EmailClient sends account emails. Sending is best-effort; failures are
// logged, never surfaced to the caller.
type EmailClient interface {
	SendWelcome(to, name string) error
}

type Users struct {
	log         *slog.Logger
	repo        CustomerRepository
	emailClient EmailClient
}

// NewUsers creates the customer-management service. emailClient may be nil to
// disable outgoing mail.
func NewUsers(log *slog.Logger, repo CustomerRepository, emailClient EmailClient) *Users {
	return &Users{log: log, repo: repo, emailClient: emailClient}
}

type CreateCustomer struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

type CustomerDetail struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"is_active"`
	RoleName    string    `json:"role_name"`
}

// SignUp registers a new customer account.
func (u *Users) SignUp(ctx context.Context, req CreateCustomer) error {
	const op = "users.SignUp"

	log := u.log.With(slog.String("op", op), slog.String("email", req.Email))
	log.Info("registering new customer")

	existing, err := u.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		if !existing.IsActive {
			return ErrUserInactive
		}
		return ErrUserExists
	}
	if !errors.Is(err, repo.ErrUserNotFound) {
		log.Error("failed to check existing user", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	role, err := u.repo.GetRoleByName(ctx, entity.RoleCustomer)
	if err != nil {
		log.Error("customer role missing", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	customer := entity.User{
		Email:       req.Email,
		Password:    string(passHash),
		RoleID:      role.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsActive:    true,
	}

	if err := u.repo.CreateUser(ctx, &customer); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			return ErrUserExists
		}
		log.Error("failed to create user", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if u.emailClient != nil {
		if err := u.emailClient.SendWelcome(customer.Email, customer.FirstName); err != nil {
			log.Warn("failed to send welcome email", "error", err)
		}
	}

	log.Info("customer registered", "user_id", customer.ID)
	return nil
}

func (u *Users) GetCustomer(ctx context.Context, id uuid.UUID) (CustomerDetail, error) {
	const op = "users.GetCustomer"

	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return CustomerDetail{}, ErrUserNotFound
		}
		return CustomerDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	return CustomerDetail{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		IsActive:    user.IsActive,
		RoleName:    user.Role.Name,
	}, nil
}

type UpdateCustomer struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

func (u *Users) UpdateCustomer(ctx context.Context, id uuid.UUID, req UpdateCustomer) error {
	const op = "users.UpdateCustomer"

	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address

	if err := u.repo.SaveUser(ctx, &user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetCustomerStatus activates or deactivates an account. A deactivated
// account cannot sign in.
func (u *Users) SetCustomerStatus(ctx context.Context, id uuid.UUID, active bool) error {
	const op = "users.SetCustomerStatus"

	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	user.IsActive = active
	if err := u.repo.SaveUser(ctx, &user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteCustomer soft-deletes the account; the row stays for audit.
func (u *Users) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	const op = "users.DeleteCustomer"

	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	user.IsDeleted = true
	if err := u.repo.SaveUser(ctx, &user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (u *Users) ListCustomers(ctx context.Context, page, size int) ([]CustomerDetail, int64, error) {
	const op = "users.ListCustomers"

	customers, total, err := u.repo.ListCustomers(ctx, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]CustomerDetail, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerDetail{
			ID:          c.ID,
			Email:       c.Email,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			PhoneNumber: c.PhoneNumber,
			Address:     c.Address,
			IsActive:    c.IsActive,
			RoleName:    c.Role.Name,
		})
	}
	return out, total, nil
}
