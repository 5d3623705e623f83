package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/errs"
)

const schemaVersion = 1

type envelope struct {
	V    int             `json:"v"`
	Data json.RawMessage `json:"data"`
}

// Slot binds one session key to a record type. Anything that cannot be
// decoded or fails validation reads back as ErrAbsent.
type Slot[T any] struct {
	store    Store
	key      string
	validate func(T) error
	logger   *slog.Logger
	metrics  *observability.Metrics
}

func NewSlot[T any](store Store, key string, validate func(T) error, logger *slog.Logger, metrics *observability.Metrics) *Slot[T] {
	return &Slot[T]{
		store:    store,
		key:      key,
		validate: validate,
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *Slot[T]) Key() string { return s.key }

func (s *Slot[T]) Save(ctx context.Context, sessionID string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "failed to encode "+s.key)
	}
	raw, err := json.Marshal(envelope{V: schemaVersion, Data: data})
	if err != nil {
		return errs.Wrap(err, "failed to encode envelope for "+s.key)
	}
	if err := s.store.Write(ctx, sessionID, s.key, raw); err != nil {
		s.observe("error")
		return errs.Wrap(err, "failed to save "+s.key)
	}
	s.observe("write")
	return nil
}

func (s *Slot[T]) Load(ctx context.Context, sessionID string) (T, error) {
	var zero T

	raw, err := s.store.Read(ctx, sessionID, s.key)
	if errors.Is(err, ErrAbsent) {
		s.observe("miss")
		return zero, ErrAbsent
	}
	if err != nil {
		s.observe("error")
		return zero, errs.Wrap(err, "failed to load "+s.key)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.V != schemaVersion || len(env.Data) == 0 {
		return zero, s.reject(sessionID, "malformed envelope", err)
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return zero, s.reject(sessionID, "malformed payload", err)
	}
	if s.validate != nil {
		if err := s.validate(v); err != nil {
			return zero, s.reject(sessionID, "payload failed validation", err)
		}
	}

	s.observe("hit")
	return v, nil
}

func (s *Slot[T]) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID, s.key); err != nil {
		s.observe("error")
		return errs.Wrap(err, "failed to clear "+s.key)
	}
	s.observe("delete")
	return nil
}

func (s *Slot[T]) reject(sessionID, reason string, cause error) error {
	args := []any{
		slog.String("key", s.key),
		slog.String("session_id", sessionID),
		slog.String("reason", reason),
	}
	if cause != nil {
		args = append(args, slog.String("cause", cause.Error()))
	}
	s.logger.Warn("Discarding unreadable session value", args...)
	s.observe("corrupt")
	return ErrAbsent
}

func (s *Slot[T]) observe(event string) {
	if s.metrics != nil {
		s.metrics.ObserveSession(s.key, event)
	}
}
