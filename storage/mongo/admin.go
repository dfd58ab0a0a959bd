package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightacademy/backend/core/admin"
)

type adminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) admin.Repository {
	return &adminRepository{col: db.Collection(adminCollection)}
}

func (repo *adminRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	n, err := repo.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return errors.Wrap(err, "counting admins")
	}
	if n > 0 {
		return admin.ErrEmailExists
	}
	return nil
}

func (repo *adminRepository) CreateAdmin(ctx context.Context, adm admin.Admin) (admin.Admin, error) {
	adm.ID = primitive.NewObjectID()
	if _, err := repo.col.InsertOne(ctx, adm); err != nil {
		if isDup(err) {
			return admin.Admin{}, admin.ErrEmailExists
		}
		return admin.Admin{}, errors.Wrap(err, "inserting admin")
	}
	return adm, nil
}

func (repo *adminRepository) GetAdminByID(ctx context.Context, id primitive.ObjectID) (admin.Admin, error) {
	var adm admin.Admin
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&adm); err != nil {
		if err == mongo.ErrNoDocuments {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, errors.Wrap(err, "finding admin by id")
	}
	return adm, nil
}

func (repo *adminRepository) GetAdminByEmail(ctx context.Context, email string) (admin.Admin, error) {
	var adm admin.Admin
	if err := repo.col.FindOne(ctx, bson.M{"email": email}).Decode(&adm); err != nil {
		if err == mongo.ErrNoDocuments {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, errors.Wrap(err, "finding admin by email")
	}
	return adm, nil
}
