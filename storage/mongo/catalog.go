package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightacademy/backend/core/catalog"
)

type catalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) catalog.Repository {
	return &catalogRepository{col: db.Collection(categoryCollection)}
}

func (repo *catalogRepository) QueryAllCategories(ctx context.Context) ([]catalog.Category, error) {
	cur, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying categories")
	}
	cats := make([]catalog.Category, 0)
	if err := cur.All(ctx, &cats); err != nil {
		return nil, errors.Wrap(err, "decoding categories")
	}
	return cats, nil
}

func (repo *catalogRepository) GetCategoryByCourseCode(ctx context.Context, code string) (catalog.Category, error) {
	var cat catalog.Category
	if err := repo.col.FindOne(ctx, bson.M{"courses.courseCode": code}).Decode(&cat); err != nil {
		if err == mongo.ErrNoDocuments {
			return catalog.Category{}, catalog.ErrNotFound
		}
		return catalog.Category{}, errors.Wrap(err, "finding category by course code")
	}
	return cat, nil
}

// checkCourseCode enforces the catalog-wide courseCode constraint; the
// unique index on courses.courseCode backs it up against races.
func (repo *catalogRepository) checkCourseCode(ctx context.Context, code string) error {
	n, err := repo.col.CountDocuments(ctx, bson.M{"courses.courseCode": code})
	if err != nil {
		return errors.Wrap(err, "counting course codes")
	}
	if n > 0 {
		return catalog.ErrCourseCodeExists
	}
	return nil
}

func (repo *catalogRepository) CreateCourse(ctx context.Context, name, icon string, crs catalog.Course) (catalog.Category, error) {
	if err := repo.checkCourseCode(ctx, crs.CourseCode); err != nil {
		return catalog.Category{}, err
	}

	// atomic append-or-create; no read-modify-write on the course array
	update := bson.M{
		"$push":        bson.M{"courses": crs},
		"$setOnInsert": bson.M{"icon": icon},
	}
	_, err := repo.col.UpdateOne(ctx, bson.M{"category": name}, update, options.Update().SetUpsert(true))
	if err != nil {
		if isDup(err) {
			return catalog.Category{}, catalog.ErrCourseCodeExists
		}
		return catalog.Category{}, errors.Wrap(err, "appending course")
	}

	var cat catalog.Category
	if err := repo.col.FindOne(ctx, bson.M{"category": name}).Decode(&cat); err != nil {
		return catalog.Category{}, errors.Wrap(err, "reloading category")
	}
	return cat, nil
}

func (repo *catalogRepository) ReplaceCourse(ctx context.Context, oldCode string, crs catalog.Course) error {
	if crs.CourseCode != oldCode {
		if err := repo.checkCourseCode(ctx, crs.CourseCode); err != nil {
			return err
		}
	}

	res, err := repo.col.UpdateOne(
		ctx,
		bson.M{"courses.courseCode": oldCode},
		bson.M{"$set": bson.M{"courses.$": crs}},
	)
	if err != nil {
		if isDup(err) {
			return catalog.ErrCourseCodeExists
		}
		return errors.Wrap(err, "replacing course")
	}
	if res.MatchedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (repo *catalogRepository) RemoveCourse(ctx context.Context, code string) error {
	res, err := repo.col.UpdateOne(
		ctx,
		bson.M{"courses.courseCode": code},
		bson.M{"$pull": bson.M{"courses": bson.M{"courseCode": code}}},
	)
	if err != nil {
		return errors.Wrap(err, "removing course")
	}
	// the owning category is kept even when its course list empties
	if res.ModifiedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
