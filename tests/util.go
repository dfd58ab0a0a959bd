package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/brightacademy/backend/core/admin"
	"github.com/brightacademy/backend/core/catalog"
	"github.com/brightacademy/backend/core/testimonial"
)

func CreateAdmin(
	t *testing.T,
	repo admin.Repository,
	name, email, pwd string,
	createdAt ...time.Time,
) admin.Admin {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	adm := admin.Admin{
		Name:      name,
		Email:     email,
		CreatedAt: tstamp,
	}
	if pwd != "" {
		if err := adm.SetPassword(pwd); err != nil {
			t.Fatalf("createAdmin() failed: %v", err)
		}
	}
	adm, err := repo.CreateAdmin(context.Background(), adm)
	if err != nil {
		t.Fatalf("createAdmin() failed: %v", err)
	}
	return adm
}

// NewCourse builds a minimal valid course creation payload.
func NewCourse(category, code, name string) catalog.NewCourse {
	return catalog.NewCourse{
		Category:   category,
		CourseCode: code,
		CourseName: name,
		Rating:     4.5,
		Fees:       catalog.Fees{Original: 25000, Discounted: 15000},
	}
}

// CreateCourse adds a course through svc and returns it flattened with its
// owning category's name.
func CreateCourse(t *testing.T, svc *catalog.Service, category, code, name string) catalog.CourseDetail {
	if _, err := svc.Create(context.Background(), NewCourse(category, code, name)); err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	crs, err := svc.GetByCode(context.Background(), code)
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}

func CreateTestimonial(
	t *testing.T,
	repo testimonial.Repository,
	text, name, role string,
	rating int,
	isFeatured bool,
	createdAt ...time.Time,
) testimonial.Testimonial {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	tst := testimonial.Testimonial{
		Text:       text,
		Name:       name,
		Role:       role,
		Rating:     rating,
		IsFeatured: isFeatured,
		CreatedAt:  tstamp,
	}
	tst, err := repo.CreateTestimonial(context.Background(), tst)
	if err != nil {
		t.Fatalf("createTestimonial() failed: %v", err)
	}
	return tst
}
