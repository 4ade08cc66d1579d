package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want domain.ConstraintKind
	}{
		{"duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'slug'"}, domain.ConstraintUnique},
		{"foreign key", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, domain.ConstraintForeignKey},
		{"bad null", &mysql.MySQLError{Number: 1048, Message: "Column 'name_en' cannot be null"}, domain.ConstraintNotNull},
		{"missing default", &mysql.MySQLError{Number: 1364, Message: "Field 'slug' doesn't have a default value"}, domain.ConstraintNotNull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify("insert", tc.in)
			if !domain.ConstraintOfKind(err, tc.want) {
				t.Fatalf("classify(%v) = %v, want kind %s", tc.in, err, tc.want)
			}
		})
	}
}

func TestClassify_WrappedDriverError(t *testing.T) {
	wrapped := fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	if !domain.ConstraintOfKind(classify("insert", wrapped), domain.ConstraintUnique) {
		t.Fatal("wrapped driver error not classified")
	}
}

func TestClassify_NoRows(t *testing.T) {
	if err := classify("get", sql.ErrNoRows); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestClassify_UnknownBecomesStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := classify("list rooms", cause)

	var se *domain.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("got %T, want StoreError", err)
	}
	if se.Op != "list rooms" || !errors.Is(err, cause) {
		t.Fatalf("store error lost context: %v", err)
	}
}

func TestClassify_Nil(t *testing.T) {
	if classify("noop", nil) != nil {
		t.Fatal("nil must stay nil")
	}
}
