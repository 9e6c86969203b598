package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var errNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn in a transaction bound to ctx. fn's error rolls
// back; nil commits. tx already carries ctx, so repositories may use it as is.
//
//	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.UpdateStatus(ctx, tx, id, member)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
