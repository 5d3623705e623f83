//go:build unit

package archive_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"wanderlust-booking/internal/infra"
	"wanderlust-booking/internal/infra/archive"
	"wanderlust-booking/internal/usecase/shared"
	"wanderlust-booking/tests/common/builder"
	archivemock "wanderlust-booking/tests/mock/archive"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCardFingerprint(t *testing.T) {
	a := archive.CardFingerprint("4111 1111 1111 1111")
	b := archive.CardFingerprint("4111111111111111")
	c := archive.CardFingerprint("4111111111111112")

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.False(t, strings.Contains(a, "4111"))
	assert.Empty(t, archive.CardFingerprint(""))
}

func TestPostgresArchiveAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := archivemock.NewMockDBTX(ctrl)
	a := archive.NewPostgresArchive(db, discardLogger())

	conf := builder.NewConfirmationBuilder().BuildSnapshot()
	entry := shared.ArchiveEntry{SessionID: "sid-1", Confirmation: conf, TotalMinor: 1008000}

	t.Run("stores last four and fingerprint only", func(t *testing.T) {
		db.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				assert.True(t, strings.Contains(sql, "INSERT INTO booking_confirmations"))
				require.Len(t, args, 20)
				assert.Equal(t, "sid-1", args[1])
				assert.Equal(t, conf.ConfirmationNumber, args[2])
				assert.Equal(t, int64(1008000), args[10])
				assert.Equal(t, "Priya Sharma", args[12])
				for _, arg := range args {
					if s, ok := arg.(string); ok {
						assert.NotEqual(t, conf.CardNumber, s)
					}
				}
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			})

		require.NoError(t, a.Append(context.Background(), entry))
	})

	t.Run("database failure is wrapped", func(t *testing.T) {
		db.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag{}, errors.New("connection reset"))

		err := a.Append(context.Background(), entry)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPostgresArchiveMigrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := archivemock.NewMockDBTX(ctrl)
	a := archive.NewPostgresArchive(db, discardLogger())

	db.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(pgconn.CommandTag{}, nil).Times(2)

	require.NoError(t, a.Migrate(context.Background()))
}

func TestNoop(t *testing.T) {
	var n archive.Noop
	require.NoError(t, n.Append(context.Background(), shared.ArchiveEntry{}))

	got, err := n.ListBySession(context.Background(), "sid")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
