package database

import (
	"errors"

	"github.com/sijms/go-ora/v2/network"
	"gorm.io/gorm"
)

// oraUniqueViolation is ORA-00001.
const oraUniqueViolation = 1

// IsDuplicateKey reports whether err is a unique constraint violation.
// gorm-oracle has no ErrorTranslator, so ORA-00001 is matched on the driver error.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var oraErr *network.OracleError
	return errors.As(err, &oraErr) && oraErr.ErrCode == oraUniqueViolation
}
