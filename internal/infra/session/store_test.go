//go:build unit

package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"wanderlust-booking/internal/infra"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/infra/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type record struct {
	ItemID string `json:"itemId"`
	Guests int    `json:"guestCount"`
}

func validRecord(r record) error {
	if r.ItemID == "" || r.Guests < 1 {
		return errors.New("invalid record")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// storeSuite runs the same contract against every backend.
type storeSuite struct {
	suite.Suite
	newStore func() session.Store
	store    session.Store
	metrics  *observability.Metrics
	slot     *session.Slot[record]
	ctx      context.Context
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
	s.metrics = observability.NewMetrics()
	s.slot = session.NewSlot(s.store, "current-booking", validRecord, discardLogger(), s.metrics)
}

func (s *storeSuite) TestReadMissingKey() {
	_, err := s.store.Read(s.ctx, "sid-1", "current-booking")
	s.ErrorIs(err, session.ErrAbsent)
}

func (s *storeSuite) TestWriteReadDelete() {
	s.Require().NoError(s.store.Write(s.ctx, "sid-1", "k", []byte("hello")))

	v, err := s.store.Read(s.ctx, "sid-1", "k")
	s.Require().NoError(err)
	s.Equal([]byte("hello"), v)

	s.Require().NoError(s.store.Delete(s.ctx, "sid-1", "k"))
	_, err = s.store.Read(s.ctx, "sid-1", "k")
	s.ErrorIs(err, session.ErrAbsent)
}

func (s *storeSuite) TestSessionsAreIsolated() {
	s.Require().NoError(s.store.Write(s.ctx, "sid-1", "k", []byte("a")))

	_, err := s.store.Read(s.ctx, "sid-2", "k")
	s.ErrorIs(err, session.ErrAbsent)
}

func (s *storeSuite) TestLastWriterWins() {
	s.Require().NoError(s.slot.Save(s.ctx, "sid-1", record{ItemID: "1", Guests: 1}))
	s.Require().NoError(s.slot.Save(s.ctx, "sid-1", record{ItemID: "3", Guests: 2}))

	got, err := s.slot.Load(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Equal(record{ItemID: "3", Guests: 2}, got)
}

func (s *storeSuite) TestSlotRoundTrip() {
	want := record{ItemID: "3", Guests: 2}
	s.Require().NoError(s.slot.Save(s.ctx, "sid-1", want))

	raw, err := s.store.Read(s.ctx, "sid-1", "current-booking")
	s.Require().NoError(err)
	s.JSONEq(`{"v":1,"data":{"itemId":"3","guestCount":2}}`, string(raw))

	got, err := s.slot.Load(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Equal(want, got)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.SessionEvents.WithLabelValues("current-booking", "hit")))
}

func (s *storeSuite) TestSlotTreatsUnreadableValuesAsAbsent() {
	cases := map[string]string{
		"not json":          `{{{`,
		"bare payload":      `{"itemId":"3","guestCount":2}`,
		"unknown version":   `{"v":2,"data":{"itemId":"3","guestCount":2}}`,
		"wrong field types": `{"v":1,"data":{"itemId":3,"guestCount":"two"}}`,
		"fails validation":  `{"v":1,"data":{"itemId":"","guestCount":0}}`,
		"null data":         `{"v":1}`,
	}
	for name, raw := range cases {
		s.Run(name, func() {
			s.Require().NoError(s.store.Write(s.ctx, "sid-1", "current-booking", []byte(raw)))

			_, err := s.slot.Load(s.ctx, "sid-1")
			s.ErrorIs(err, session.ErrAbsent)
		})
	}
	s.Equal(float64(len(cases)), testutil.ToFloat64(s.metrics.SessionEvents.WithLabelValues("current-booking", "corrupt")))
}

func (s *storeSuite) TestSlotClear() {
	s.Require().NoError(s.slot.Save(s.ctx, "sid-1", record{ItemID: "1", Guests: 1}))
	s.Require().NoError(s.slot.Clear(s.ctx, "sid-1"))

	_, err := s.slot.Load(s.ctx, "sid-1")
	s.ErrorIs(err, session.ErrAbsent)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storeSuite{newStore: func() session.Store { return session.NewMemoryStore() }})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	suite.Run(t, &storeSuite{newStore: func() session.Store {
		mr.FlushAll()
		client := session.NewRedisClient(mr.Addr(), "", 0)
		t.Cleanup(func() { _ = client.Close() })
		return session.NewRedisStore(client, "wl:test", 0, discardLogger())
	}})
}

func TestRedisStoreSurvivesReload(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first := session.NewRedisStore(session.NewRedisClient(mr.Addr(), "", 0), "wl", 0, discardLogger())
	slot := session.NewSlot(first, "current-booking", validRecord, discardLogger(), nil)
	require.NoError(t, slot.Save(ctx, "sid-1", record{ItemID: "3", Guests: 2}))

	// a fresh client and store over the same server stands in for a page reload
	second := session.NewRedisStore(session.NewRedisClient(mr.Addr(), "", 0), "wl", 0, discardLogger())
	reloaded := session.NewSlot(second, "current-booking", validRecord, discardLogger(), nil)

	got, err := reloaded.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, record{ItemID: "3", Guests: 2}, got)
	assert.True(t, mr.Exists("wl:sid-1:current-booking"))
}

func TestRedisStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store := session.NewRedisStore(session.NewRedisClient(mr.Addr(), "", 0), "wl", time.Minute, discardLogger())
	require.NoError(t, store.Write(ctx, "sid-1", "k", []byte("v")))

	mr.FastForward(2 * time.Minute)

	_, err := store.Read(ctx, "sid-1", "k")
	assert.ErrorIs(t, err, session.ErrAbsent)
}

func TestRedisStoreBackendFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store := session.NewRedisStore(session.NewRedisClient(mr.Addr(), "", 0), "wl", 0, discardLogger())
	mr.Close()

	_, err := store.Read(ctx, "sid-1", "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrAbsent)
	assert.True(t, infra.IsKind(err, infra.KindBackendFailure))

	slot := session.NewSlot(store, "k", validRecord, discardLogger(), nil)
	_, err = slot.Load(ctx, "sid-1")
	assert.NotErrorIs(t, err, session.ErrAbsent)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, store.Write(ctx, "sid", "k", buf))
	buf[0] = 'z'

	got, err := store.Read(ctx, "sid", "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
