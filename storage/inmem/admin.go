package inmemdb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core/admin"
)

type adminRepository struct {
	db *adminTable
}

func NewAdminRepository(db *DB) admin.Repository {
	return &adminRepository{db: db.admin}
}

func (repo *adminRepository) CheckEmailUniqueness(_ context.Context, email string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, adm := range repo.db.table {
		if adm.Email == email {
			return admin.ErrEmailExists
		}
	}
	return nil
}

func (repo *adminRepository) CreateAdmin(_ context.Context, adm admin.Admin) (admin.Admin, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, a := range repo.db.table {
		if a.Email == adm.Email {
			return admin.Admin{}, admin.ErrEmailExists
		}
	}
	adm.ID = primitive.NewObjectID()
	repo.db.table[adm.ID] = &adm
	return adm, nil
}

func (repo *adminRepository) GetAdminByID(_ context.Context, id primitive.ObjectID) (admin.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if adm, ok := repo.db.table[id]; ok {
		return *adm, nil
	}
	return admin.Admin{}, admin.ErrNotFound
}

func (repo *adminRepository) GetAdminByEmail(_ context.Context, email string) (admin.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, adm := range repo.db.table {
		if adm.Email == email {
			return *adm, nil
		}
	}
	return admin.Admin{}, admin.ErrNotFound
}
