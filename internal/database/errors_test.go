package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"db-wipe/internal/errs"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/sijms/go-ora/v2/network"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback errs.ErrKind
		want     errs.ErrKind
	}{
		{
			name:     "deadline",
			err:      fmt.Errorf("exec: %w", context.DeadlineExceeded),
			fallback: errs.ErrKindStatementFailed,
			want:     errs.ErrKindTimeout,
		},
		{
			name:     "mysql missing table keeps fallback",
			err:      &mysql.MySQLError{Number: 1146, Message: "Table 'app.users' doesn't exist"},
			fallback: errs.ErrKindStatementFailed,
			want:     errs.ErrKindStatementFailed,
		},
		{
			name:     "mysql access denied",
			err:      &mysql.MySQLError{Number: 1045, Message: "Access denied for user 'root'"},
			fallback: errs.ErrKindQueryFailed,
			want:     errs.ErrKindConnectionFailed,
		},
		{
			name:     "mysql drop command denied",
			err:      &mysql.MySQLError{Number: 1142, Message: "DROP command denied"},
			fallback: errs.ErrKindStatementFailed,
			want:     errs.ErrKindPermissionDenied,
		},
		{
			name:     "pq insufficient privilege",
			err:      &pq.Error{Code: "42501", Message: "must be owner of table users"},
			fallback: errs.ErrKindStatementFailed,
			want:     errs.ErrKindPermissionDenied,
		},
		{
			name:     "pgx undefined table",
			err:      &pgconn.PgError{Code: "42P01", Message: `relation "users" does not exist`},
			fallback: errs.ErrKindStatementFailed,
			want:     errs.ErrKindStatementFailed,
		},
		{
			name:     "pgx auth failure",
			err:      &pgconn.PgError{Code: "28P01", Message: "password authentication failed"},
			fallback: errs.ErrKindQueryFailed,
			want:     errs.ErrKindConnectionFailed,
		},
		{
			name:     "mssql login failed",
			err:      mssql.Error{Number: 18456, Message: "Login failed for user 'sa'."},
			fallback: errs.ErrKindConnectionFailed,
			want:     errs.ErrKindConnectionFailed,
		},
		{
			name:     "oracle insufficient privileges",
			err:      &network.OracleError{ErrCode: 1031, ErrMsg: "ORA-01031: insufficient privileges"},
			fallback: errs.ErrKindStatementFailed,
			want:     errs.ErrKindPermissionDenied,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			fallback: errs.ErrKindQueryFailed,
			want:     errs.ErrKindQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err, tt.fallback, "op failed")
			assert.Equal(t, tt.want, errs.KindOf(got))
			assert.Equal(t, tt.err, errors.Unwrap(got))
			assert.Equal(t, tt.err.Error(), errs.Message(got))
		})
	}
}
