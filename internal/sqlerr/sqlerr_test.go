package sqlerr

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wil-ckaew/taskdocs/internal/errs"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"no rows", pgx.ErrNoRows, KindNotFound},
		{"wrapped no rows", errors.Wrap(pgx.ErrNoRows, "select task"), KindNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, KindConstraintViolation},
		{"not null", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23502"}), KindConstraintViolation},
		{"connection class", &pgconn.PgError{Code: "08006"}, KindConnectivityFailure},
		{"too many connections", &pgconn.PgError{Code: "53300"}, KindConnectivityFailure},
		{"deadline", errors.Wrap(context.DeadlineExceeded, "list tasks"), KindConnectivityFailure},
		{"syntax", &pgconn.PgError{Code: "42601"}, KindOther},
		{"plain", errors.New("boom"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ConnectionException, MapCode("08001"))
	assert.Equal(t, InsufficientRes, MapCode("53200"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "DOCUMENT_ALREADY_EXISTS", ErrorCode(&pgconn.PgError{Code: "23505", TableName: "documents"}))
	assert.Equal(t, "TASK_REQUIRED", ErrorCode(&pgconn.PgError{Code: "23502", TableName: "tasks"}))
	assert.Equal(t, "RECORD_ERROR", ErrorCode(&pgconn.PgError{Code: "42601"}))
	assert.Equal(t, "NOT_FOUND", ErrorCode(pgx.ErrNoRows))
}

func TestHandleError(t *testing.T) {
	t.Run("unique violation names the column", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "documents",
			ConstraintName: "documents_filename_key",
		})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
		assert.Equal(t, "A Document with this Filename already exists", httpErr.Message)
	})

	t.Run("not null violation becomes a field error", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{Code: "23502", TableName: "tasks", ColumnName: "title"})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "The Title is required", httpErr.Message)
		assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("no rows", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(errors.Wrap(pgx.ErrNoRows, "get")), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, errs.StatusFail, httpErr.Status)
	})

	t.Run("envelope passes through", func(t *testing.T) {
		original := errs.NewNotFoundError("Task not found")
		assert.Same(t, original, HandleError(original))
	})

	t.Run("unknown is internal", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(errors.New("boom")), &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.Equal(t, errs.StatusError, httpErr.Status)
	})
}
