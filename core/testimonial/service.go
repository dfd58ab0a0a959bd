package testimonial

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("testimonial not found")

type (
	Repository interface {
		// QueryAllTestimonials returns all testimonials, newest first.
		QueryAllTestimonials(ctx context.Context) ([]Testimonial, error)
		CreateTestimonial(ctx context.Context, tst Testimonial) (Testimonial, error)
		GetTestimonialByID(ctx context.Context, id primitive.ObjectID) (Testimonial, error)
		UpdateTestimonial(ctx context.Context, tst Testimonial) error
		DeleteTestimonial(ctx context.Context, id primitive.ObjectID) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Testimonial, error) {
	return svc.repo.QueryAllTestimonials(ctx)
}

func (svc *Service) Create(ctx context.Context, nt NewTestimonial) (Testimonial, error) {
	tst := Testimonial{
		Text:      nt.Text,
		Name:      nt.Name,
		Role:      nt.Role,
		Rating:    nt.Rating,
		CreatedAt: time.Now().UTC(),
	}
	if nt.IsFeatured != nil {
		tst.IsFeatured = *nt.IsFeatured
	}
	return svc.repo.CreateTestimonial(ctx, tst)
}

func (svc *Service) Update(ctx context.Context, id primitive.ObjectID, ut UpdateTestimonial) (Testimonial, error) {
	tst, err := svc.repo.GetTestimonialByID(ctx, id)
	if err != nil {
		return Testimonial{}, err
	}
	tst = ut.apply(tst)
	if err := svc.repo.UpdateTestimonial(ctx, tst); err != nil {
		return Testimonial{}, err
	}
	return tst, nil
}

func (svc *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return svc.repo.DeleteTestimonial(ctx, id)
}
