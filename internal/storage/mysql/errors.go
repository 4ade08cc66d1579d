package mysql

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// MySQL server error numbers this layer translates. Everything else
// surfaces as a StoreError.
const (
	erDupEntry        = 1062
	erNoReferencedRow = 1452
	erBadNullColumn   = 1048
	erNoDefaultValue  = 1364
)

// classify maps driver errors onto domain errors so no caller ever
// inspects go-sql-driver types.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erDupEntry:
			return &domain.ConstraintError{Kind: domain.ConstraintUnique, Message: me.Message}
		case erNoReferencedRow:
			return &domain.ConstraintError{Kind: domain.ConstraintForeignKey, Message: me.Message}
		case erBadNullColumn, erNoDefaultValue:
			return &domain.ConstraintError{Kind: domain.ConstraintNotNull, Message: me.Message}
		}
	}
	return &domain.StoreError{Op: op, Err: err}
}
