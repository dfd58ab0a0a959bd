package inmemdb

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core/admin"
	"github.com/brightacademy/backend/core/catalog"
	"github.com/brightacademy/backend/core/testimonial"
)

// DB is a mutex-guarded in-memory stand-in for the document store;
// for dev and tests.
type DB struct {
	admin       *adminTable
	catalog     *catalogTable
	testimonial *testimonialTable
}

func NewDB() *DB {
	return &DB{
		admin:       &adminTable{table: make(map[primitive.ObjectID]*admin.Admin)},
		catalog:     &catalogTable{},
		testimonial: &testimonialTable{table: make(map[primitive.ObjectID]*testimonial.Testimonial)},
	}
}

type adminTable struct {
	mutex sync.RWMutex
	table map[primitive.ObjectID]*admin.Admin
}

type catalogTable struct {
	mutex sync.RWMutex
	table []*catalog.Category // storage order
}

type testimonialTable struct {
	mutex sync.RWMutex
	table map[primitive.ObjectID]*testimonial.Testimonial
}
