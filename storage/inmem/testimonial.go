package inmemdb

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core/testimonial"
)

type testimonialRepository struct {
	db *testimonialTable
}

func NewTestimonialRepository(db *DB) testimonial.Repository {
	return &testimonialRepository{db: db.testimonial}
}

func (repo *testimonialRepository) QueryAllTestimonials(_ context.Context) ([]testimonial.Testimonial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tsts := make([]testimonial.Testimonial, 0, len(repo.db.table))
	for _, tst := range repo.db.table {
		tsts = append(tsts, *tst)
	}
	sort.Slice(tsts, func(i, j int) bool { return tsts[i].CreatedAt.After(tsts[j].CreatedAt) })
	return tsts, nil
}

func (repo *testimonialRepository) CreateTestimonial(_ context.Context, tst testimonial.Testimonial) (testimonial.Testimonial, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	tst.ID = primitive.NewObjectID()
	repo.db.table[tst.ID] = &tst
	return tst, nil
}

func (repo *testimonialRepository) GetTestimonialByID(_ context.Context, id primitive.ObjectID) (testimonial.Testimonial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if tst, ok := repo.db.table[id]; ok {
		return *tst, nil
	}
	return testimonial.Testimonial{}, testimonial.ErrNotFound
}

func (repo *testimonialRepository) UpdateTestimonial(_ context.Context, tst testimonial.Testimonial) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[tst.ID]; !ok {
		return testimonial.ErrNotFound
	}
	repo.db.table[tst.ID] = &tst
	return nil
}

func (repo *testimonialRepository) DeleteTestimonial(_ context.Context, id primitive.ObjectID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return testimonial.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
