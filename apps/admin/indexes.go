package main

import (
	"context"
	"time"

	mongodb "github.com/brightacademy/backend/storage/mongo"
)

var ensureIndexesFunc = mongodb.EnsureIndexes // mockable

func (cli *commandLine) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return ensureIndexesFunc(ctx, cli.db)
}
