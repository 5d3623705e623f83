package infra

import (
	"errors"
	"log/slog"

	"wanderlust-booking/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	slogger.Error("Store error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindBackendFailure StoreErrorKind = "BACKEND_FAILURE"
	KindDBFailure      StoreErrorKind = "DB_FAILURE"
	KindMailFailure    StoreErrorKind = "MAIL_FAILURE"
)
