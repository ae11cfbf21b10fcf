package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	cases := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "pg code", err: fmt.Errorf("insert: %w", pgErr), want: true},
		{name: "pg constraint match", err: pgErr, constraint: "users_email_key", want: true},
		{name: "pg constraint mismatch", err: pgErr, constraint: "wishlist_items_user_product_key", want: false},
		{name: "pg other code", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "sqlite message", err: errors.New("UNIQUE constraint failed: users.email"), constraint: "users_email_key", want: true},
		{name: "pg message mismatch", err: errors.New(`duplicate key value violates unique constraint "users_email_key"`), constraint: "other_key", want: false},
		{name: "unrelated", err: errors.New("boom"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err, tc.constraint); got != tc.want {
				t.Fatalf("IsUniqueViolation() = %v, want %v", got, tc.want)
			}
		})
	}
}
