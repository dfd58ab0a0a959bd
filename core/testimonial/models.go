package testimonial

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core"
)

type Testimonial struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Text       string             `json:"text" bson:"text"`
	Name       string             `json:"name" bson:"name"`
	Role       string             `json:"role" bson:"role"`
	Rating     int                `json:"rating" bson:"rating"`
	IsFeatured bool               `json:"isFeatured" bson:"isFeatured"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"` // UTC
}

// NewTestimonial contains information needed to create a new Testimonial.
type NewTestimonial struct {
	Text       string `json:"text" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	IsFeatured *bool  `json:"isFeatured"`
}

func (nt *NewTestimonial) Validate() error {
	nt.Text = core.CleanString(nt.Text)
	nt.Name = core.CleanString(nt.Name)
	nt.Role = core.CleanString(nt.Role)
	return core.Validate.Struct(nt)
}

// UpdateTestimonial defines what information may be provided to modify an
// existing Testimonial. nil fields keep their previous value; IsFeatured
// distinguishes "not provided" from "explicitly false".
type UpdateTestimonial struct {
	Text       *string `json:"text"`
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Rating     *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	IsFeatured *bool   `json:"isFeatured"`
}

func (ut *UpdateTestimonial) Validate() error {
	return core.Validate.Struct(ut)
}

func (ut *UpdateTestimonial) apply(tst Testimonial) Testimonial {
	if ut.Text != nil {
		tst.Text = *ut.Text
	}
	if ut.Name != nil {
		tst.Name = *ut.Name
	}
	if ut.Role != nil {
		tst.Role = *ut.Role
	}
	if ut.Rating != nil {
		tst.Rating = *ut.Rating
	}
	if ut.IsFeatured != nil {
		tst.IsFeatured = *ut.IsFeatured
	}
	return tst
}
