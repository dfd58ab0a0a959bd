package catalog

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound         = errors.New("course not found")
	ErrCourseCodeExists = errors.New("a course with this code already exists")
)

type (
	// Repository is the catalog store. Implementations must mutate the
	// embedded course array atomically (no load-mutate-save) and enforce
	// catalog-wide courseCode uniqueness.
	Repository interface {
		QueryAllCategories(ctx context.Context) ([]Category, error)
		// GetCategoryByCourseCode returns the first category whose embedded
		// course list contains code, or ErrNotFound.
		GetCategoryByCourseCode(ctx context.Context, code string) (Category, error)
		// CreateCourse appends crs to the category named name, creating the
		// category (with icon) when it does not exist yet. Fails with
		// ErrCourseCodeExists when crs.CourseCode is already taken.
		CreateCourse(ctx context.Context, name, icon string, crs Course) (Category, error)
		// ReplaceCourse swaps the embedded course matching oldCode for crs,
		// in place. Fails with ErrCourseCodeExists when crs renames the
		// course onto a code that is already taken.
		ReplaceCourse(ctx context.Context, oldCode string, crs Course) error
		// RemoveCourse pulls the embedded course matching code out of its
		// owning category. The category itself is kept even when emptied.
		RemoveCourse(ctx context.Context, code string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Category, error) {
	return svc.repo.QueryAllCategories(ctx)
}

// GetByCode resolves a courseCode to its course, flattened with the owning
// category's name.
func (svc *Service) GetByCode(ctx context.Context, code string) (CourseDetail, error) {
	cat, err := svc.repo.GetCategoryByCourseCode(ctx, code)
	if err != nil {
		return CourseDetail{}, err
	}
	for _, crs := range cat.Courses {
		if crs.CourseCode == code {
			return CourseDetail{Category: cat.Category, Course: crs}, nil
		}
	}
	return CourseDetail{}, ErrNotFound
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Category, error) {
	return svc.repo.CreateCourse(ctx, nc.Category, nc.Icon, nc.course())
}

// Update merges uc into the course matching code, which may rename the
// course's code itself. Returns the updated record.
func (svc *Service) Update(ctx context.Context, code string, uc UpdateCourse) (Course, error) {
	cat, err := svc.repo.GetCategoryByCourseCode(ctx, code)
	if err != nil {
		return Course{}, err
	}

	var crs Course
	var found bool
	for _, c := range cat.Courses {
		if c.CourseCode == code {
			crs, found = c, true
			break
		}
	}
	if !found {
		return Course{}, ErrNotFound
	}

	crs = uc.apply(crs)
	if err := svc.repo.ReplaceCourse(ctx, code, crs); err != nil {
		return Course{}, err
	}
	return crs, nil
}

func (svc *Service) Delete(ctx context.Context, code string) error {
	return svc.repo.RemoveCourse(ctx, code)
}
