package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wil-ckaew/taskdocs/internal/errs"
)

var uniqueKeyRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ConvertPgError normalizes a driver error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ErrorCode builds a machine readable code such as DOCUMENT_ALREADY_EXISTS
// from a driver error. Errors that did not come from the server yield
// the upper-cased Kind, e.g. NOT_FOUND.
func ErrorCode(err error) string {
	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return strings.ToUpper(string(KindOf(err)))
	}

	domain := strings.ToUpper(singular(pgerr.TableName))
	if domain == "" {
		domain = "RECORD"
	}

	action := "ERROR"
	switch MapCode(pgerr.Code) {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}
	return domain + "_" + action
}

func friendlyMessage(e *Error) string {
	entity := entityName(e.TableName, e.ColumnName)

	switch e.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entity)
	case UniqueViolation:
		field := "identifier"
		if column := uniqueColumn(e.ConstraintName); column != "" {
			field = humanize(column)
		}
		return fmt.Sprintf("A %s with this %s already exists", entity, field)
	case NotNullViolation:
		field := humanize(e.ColumnName)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)
	case CheckViolation:
		if field := humanize(e.ColumnName); field != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return "One or more values do not meet required conditions"
	default:
		return "An error occurred while processing your request"
	}
}

// entityName prefers an "<entity>_id" column, then the singular table name.
func entityName(table, column string) string {
	if lower := strings.ToLower(column); strings.HasSuffix(lower, "_id") {
		return humanize(strings.TrimSuffix(lower, "_id"))
	}
	if table != "" {
		return humanize(singular(table))
	}
	return "record"
}

func singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(strings.ToLower(name), "s") {
		return name[:len(name)-1]
	}
	return name
}

// humanize turns doc_type into "Doc Type".
func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueColumn recovers the column from constraint names following
// either unique_<table>_<column> or <table>_<column>_key.
func uniqueColumn(constraint string) string {
	if strings.HasPrefix(constraint, "unique_") {
		if parts := strings.Split(constraint, "_"); len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}
	if m := uniqueKeyRe.FindStringSubmatch(constraint); len(m) > 1 {
		return m[1]
	}
	return ""
}

// HandleError converts an error that reached the global error handler
// without classification into an envelope error.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		message := friendlyMessage(sqlErr)

		switch sqlErr.Code {
		case UniqueViolation:
			return errs.NewFailError(http.StatusConflict, message)
		case NotNullViolation:
			return errs.NewBadRequestError(message, []errs.FieldError{
				{Field: strings.ToLower(sqlErr.ColumnName), Error: "is required"},
			})
		case ForeignKeyViolation, CheckViolation, InvalidText:
			return errs.NewBadRequestError(message, nil)
		default:
			return errs.NewInternalServerError("")
		}
	}

	if IsNotFound(err) {
		return errs.NewFailError(http.StatusNotFound, "Resource not found")
	}

	return errs.NewInternalServerError("")
}
