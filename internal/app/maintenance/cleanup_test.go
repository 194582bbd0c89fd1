package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/internal/database/testutil"
	"github.com/estateview/estateview/internal/models"
)

func newStore(t *testing.T) *content.Store {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store, err := content.NewStore(db)
	require.NoError(t, err)
	return store
}

func TestRunOncePrunesStaleEntries(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	stale, err := store.Upsert(ctx, "Mumbai", models.KindDailyNews, "old news")
	require.NoError(t, err)
	_, err = store.Upsert(ctx, "Pune", models.KindDailyNews, "fresh news")
	require.NoError(t, err)

	// Backdate one entry beyond the prune horizon.
	db := testutil.MustOpenTestDB(t)
	require.NoError(t, db.Model(&models.ContentCacheEntry{}).
		Where("id = ?", stale.ID).
		UpdateColumn("updated_at", time.Now().Add(-48*time.Hour)).Error)

	cleaner := NewCleaner(store, WithMaxAge(24*time.Hour))
	require.NoError(t, cleaner.RunOnce(ctx))

	_, found, err := store.Get(ctx, "Mumbai", models.KindDailyNews)
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = store.Get(ctx, "Pune", models.KindDailyNews)
	require.NoError(t, err)
	require.True(t, found)
}

func TestRunOnceWithoutStoreIsNoOp(t *testing.T) {
	cleaner := NewCleaner(nil)
	require.NoError(t, cleaner.RunOnce(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	store := newStore(t)

	cleaner := NewCleaner(store, WithSchedule("@every 1h"))
	require.NoError(t, cleaner.Start())

	stopCtx := cleaner.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
