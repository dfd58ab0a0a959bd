package admin

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core"
)

var (
	// errors
	ErrNotFound    = errors.New("admin not found")
	ErrEmailExists = errors.New("an admin with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string) error
		CreateAdmin(ctx context.Context, adm Admin) (Admin, error)
		GetAdminByID(ctx context.Context, id primitive.ObjectID) (Admin, error)
		GetAdminByEmail(ctx context.Context, email string) (Admin, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(ctx context.Context, email string) error {
	if err := svc.repo.CheckEmailUniqueness(ctx, email); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Register(ctx context.Context, na NewAdmin) (Admin, error) {
	adm := Admin{
		Name:      na.Name,
		Email:     na.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := adm.SetPassword(na.Password); err != nil {
		return Admin{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateAdmin(ctx, adm)
}

func (svc *Service) GetByID(ctx context.Context, id primitive.ObjectID) (Admin, error) {
	return svc.repo.GetAdminByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Admin, error) {
	return svc.repo.GetAdminByEmail(ctx, core.CleanString(email, true /* lower */))
}
