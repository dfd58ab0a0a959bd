package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightacademy/backend/core/testimonial"
)

type testimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) testimonial.Repository {
	return &testimonialRepository{col: db.Collection(testimonialCollection)}
}

func (repo *testimonialRepository) QueryAllTestimonials(ctx context.Context) ([]testimonial.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := repo.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying testimonials")
	}
	tsts := make([]testimonial.Testimonial, 0)
	if err := cur.All(ctx, &tsts); err != nil {
		return nil, errors.Wrap(err, "decoding testimonials")
	}
	return tsts, nil
}

func (repo *testimonialRepository) CreateTestimonial(ctx context.Context, tst testimonial.Testimonial) (testimonial.Testimonial, error) {
	tst.ID = primitive.NewObjectID()
	if _, err := repo.col.InsertOne(ctx, tst); err != nil {
		return testimonial.Testimonial{}, errors.Wrap(err, "inserting testimonial")
	}
	return tst, nil
}

func (repo *testimonialRepository) GetTestimonialByID(ctx context.Context, id primitive.ObjectID) (testimonial.Testimonial, error) {
	var tst testimonial.Testimonial
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tst); err != nil {
		if err == mongo.ErrNoDocuments {
			return testimonial.Testimonial{}, testimonial.ErrNotFound
		}
		return testimonial.Testimonial{}, errors.Wrap(err, "finding testimonial by id")
	}
	return tst, nil
}

func (repo *testimonialRepository) UpdateTestimonial(ctx context.Context, tst testimonial.Testimonial) error {
	res, err := repo.col.ReplaceOne(ctx, bson.M{"_id": tst.ID}, tst)
	if err != nil {
		return errors.Wrap(err, "updating testimonial")
	}
	if res.MatchedCount == 0 {
		return testimonial.ErrNotFound
	}
	return nil
}

func (repo *testimonialRepository) DeleteTestimonial(ctx context.Context, id primitive.ObjectID) error {
	res, err := repo.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting testimonial")
	}
	if res.DeletedCount == 0 {
		return testimonial.ErrNotFound
	}
	return nil
}
