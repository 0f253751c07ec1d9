package database

import (
	"context"
	"errors"
	"strings"

	"db-wipe/internal/errs"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/sijms/go-ora/v2/network"
)

// mapError translates native driver errors into *errs.Error. Errors the
// driver does not classify get the fallback kind.
func mapError(err error, fallback errs.ErrKind, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	var (
		mysqlErr  *mysql.MySQLError
		pqErr     *pq.Error
		pgErr     *pgconn.PgError
		pgConnErr *pgconn.ConnectError
		msErr     mssql.Error
		oraErr    *network.OracleError
	)
	kind := fallback
	switch {
	case errors.As(err, &mysqlErr):
		kind = classifyMySQLCode(mysqlErr.Number, fallback)
	case errors.As(err, &pqErr):
		kind = classifySQLState(string(pqErr.Code), fallback)
	case errors.As(err, &pgErr):
		kind = classifySQLState(pgErr.Code, fallback)
	case errors.As(err, &pgConnErr):
		kind = errs.ErrKindConnectionFailed
	case errors.As(err, &msErr):
		kind = classifyMSSQLNumber(msErr.Number, fallback)
	case errors.As(err, &oraErr):
		kind = classifyOracleCode(oraErr.ErrCode, fallback)
	}
	return errs.Wrap(kind, msg, err)
}

// classifyMySQLCode maps MySQL server error numbers to ErrKind.
func classifyMySQLCode(code uint16, fallback errs.ErrKind) errs.ErrKind {
	switch code {
	case 1045, 1049, 1040, 1203:
		return errs.ErrKindConnectionFailed
	case 1044, 1142, 1227:
		return errs.ErrKindPermissionDenied
	default:
		return fallback
	}
}

// classifySQLState maps PostgreSQL SQLSTATE codes to ErrKind.
func classifySQLState(code string, fallback errs.ErrKind) errs.ErrKind {
	switch {
	case code == "42501":
		return errs.ErrKindPermissionDenied
	case code == "3D000", strings.HasPrefix(code, "08"), strings.HasPrefix(code, "28"):
		return errs.ErrKindConnectionFailed
	default:
		return fallback
	}
}

// classifyMSSQLNumber maps SQL Server error numbers to ErrKind.
func classifyMSSQLNumber(number int32, fallback errs.ErrKind) errs.ErrKind {
	switch number {
	case 18456, 4060:
		return errs.ErrKindConnectionFailed
	case 229, 262, 300:
		return errs.ErrKindPermissionDenied
	default:
		return fallback
	}
}

// classifyOracleCode maps ORA- error codes to ErrKind.
func classifyOracleCode(code int, fallback errs.ErrKind) errs.ErrKind {
	switch code {
	case 1017, 12514, 12541:
		return errs.ErrKindConnectionFailed
	case 1031:
		return errs.ErrKindPermissionDenied
	default:
		return fallback
	}
}
