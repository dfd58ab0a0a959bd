package inmemdb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core/catalog"
)

type catalogRepository struct {
	db *catalogTable
}

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{db: db.catalog}
}

// copyCategory detaches the stored record from what callers get.
func copyCategory(cat *catalog.Category) catalog.Category {
	cp := *cat
	cp.Courses = make([]catalog.Course, len(cat.Courses))
	copy(cp.Courses, cat.Courses)
	return cp
}

func (repo *catalogRepository) QueryAllCategories(_ context.Context) ([]catalog.Category, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	cats := make([]catalog.Category, 0, len(repo.db.table))
	for _, cat := range repo.db.table {
		cats = append(cats, copyCategory(cat))
	}
	return cats, nil
}

func (repo *catalogRepository) GetCategoryByCourseCode(_ context.Context, code string) (catalog.Category, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, cat := range repo.db.table {
		for _, crs := range cat.Courses {
			if crs.CourseCode == code {
				return copyCategory(cat), nil
			}
		}
	}
	return catalog.Category{}, catalog.ErrNotFound
}

// codeTaken must be called with the lock held.
func (repo *catalogRepository) codeTaken(code string) bool {
	for _, cat := range repo.db.table {
		for _, crs := range cat.Courses {
			if crs.CourseCode == code {
				return true
			}
		}
	}
	return false
}

func (repo *catalogRepository) CreateCourse(_ context.Context, name, icon string, crs catalog.Course) (catalog.Category, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.codeTaken(crs.CourseCode) {
		return catalog.Category{}, catalog.ErrCourseCodeExists
	}

	for _, cat := range repo.db.table {
		if cat.Category == name {
			cat.Courses = append(cat.Courses, crs)
			return copyCategory(cat), nil
		}
	}

	cat := &catalog.Category{
		ID:       primitive.NewObjectID(),
		Category: name,
		Icon:     icon,
		Courses:  []catalog.Course{crs},
	}
	repo.db.table = append(repo.db.table, cat)
	return copyCategory(cat), nil
}

func (repo *catalogRepository) ReplaceCourse(_ context.Context, oldCode string, crs catalog.Course) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if crs.CourseCode != oldCode && repo.codeTaken(crs.CourseCode) {
		return catalog.ErrCourseCodeExists
	}

	for _, cat := range repo.db.table {
		for i, c := range cat.Courses {
			if c.CourseCode == oldCode {
				cat.Courses[i] = crs
				return nil
			}
		}
	}
	return catalog.ErrNotFound
}

func (repo *catalogRepository) RemoveCourse(_ context.Context, code string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, cat := range repo.db.table {
		for i, c := range cat.Courses {
			if c.CourseCode == code {
				cat.Courses = append(cat.Courses[:i], cat.Courses[i+1:]...)
				// the owning category is kept even when emptied
				return nil
			}
		}
	}
	return catalog.ErrNotFound
}
