package repo

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mkSwap(t *testing.T, db *gorm.DB, requester int64, offered, requested string) *model.Swap {
	t.Helper()
	s := &model.Swap{
		ID:              uuid.NewString(),
		RequesterID:     requester,
		OfferedItemID:   offered,
		RequestedItemID: requested,
		Status:          model.SwapPending,
	}
	if err := NewSwapRepository(db).Create(context.Background(), s); err != nil {
		t.Fatalf("create swap: %v", err)
	}
	return s
}

func TestSwapRepository_GetByID_PreloadsRelations(t *testing.T) {
	db := newTestDB(t)
	r := NewSwapRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")
	a := mkItem(t, db, alice.ID, "a")
	b := mkItem(t, db, bob.ID, "b")
	sw := mkSwap(t, db, alice.ID, a.ID, b.ID)

	got, err := r.GetByID(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SwapPending, got.Status)
	if assert.NotNil(t, got.OfferedItem) && assert.NotNil(t, got.RequestedItem) && assert.NotNil(t, got.Requester) {
		assert.Equal(t, a.ID, got.OfferedItem.ID)
		assert.Equal(t, b.ID, got.RequestedItem.ID)
		assert.Equal(t, "alice", got.Requester.Name)
	}
	assert.Equal(t, bob.ID, got.ReceiverID())

	// не-UUID не доходит до БД
	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = r.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSwapRepository_ListForUser_BothSidesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewSwapRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")
	carol := mkUser(t, db, "carol")
	a := mkItem(t, db, alice.ID, "a")
	b := mkItem(t, db, bob.ID, "b")
	c := mkItem(t, db, carol.ID, "c")

	older := mkSwap(t, db, alice.ID, a.ID, b.ID) // alice -> bob
	newer := mkSwap(t, db, carol.ID, c.ID, a.ID) // carol -> alice
	other := mkSwap(t, db, carol.ID, c.ID, b.ID) // carol -> bob, alice не участвует

	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Model(older).Update("created_at", base).Error)
	require.NoError(t, db.Model(newer).Update("created_at", base.Add(time.Minute)).Error)
	require.NoError(t, db.Model(other).Update("created_at", base.Add(2*time.Minute)).Error)

	list, err := r.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)
		assert.NotNil(t, list[0].RequestedItem)
		assert.NotNil(t, list[0].Requester)
	}

	bobs, err := r.ListForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobs, 2)
}

func TestSwapRepository_UpdateStatus_CompareAndSet(t *testing.T) {
	db := newTestDB(t)
	r := NewSwapRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")
	a := mkItem(t, db, alice.ID, "a")
	b := mkItem(t, db, bob.ID, "b")
	sw := mkSwap(t, db, alice.ID, a.ID, b.ID)

	changed, err := r.UpdateStatus(ctx, sw.ID, model.SwapPending, model.SwapAccepted)
	require.NoError(t, err)
	assert.True(t, changed)

	// повторный переход из pending уже невозможен
	changed, err = r.UpdateStatus(ctx, sw.ID, model.SwapPending, model.SwapRejected)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := r.GetByID(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SwapAccepted, got.Status)
}

func TestSwapRepository_Delete_RequesterOnly(t *testing.T) {
	db := newTestDB(t)
	r := NewSwapRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")
	a := mkItem(t, db, alice.ID, "a")
	b := mkItem(t, db, bob.ID, "b")
	sw := mkSwap(t, db, alice.ID, a.ID, b.ID)

	assert.ErrorIs(t, r.Delete(ctx, sw.ID, bob.ID), apperr.ErrNotFound)
	require.NoError(t, r.Delete(ctx, sw.ID, alice.ID))
	_, err := r.GetByID(ctx, sw.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "swapmarket.db?_pragma=foreign_keys(1)", sqliteDSN(""))
	assert.Equal(t, "a.db?mode=rwc&_pragma=foreign_keys(1)", sqliteDSN("a.db?mode=rwc"))
	assert.Equal(t, "a.db?_pragma=foreign_keys(0)", sqliteDSN("a.db?_pragma=foreign_keys(0)"))
	assert.True(t, IsPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, IsPostgresDSN("host=localhost user=u dbname=db"))
	assert.False(t, IsPostgresDSN("file.db"))
}
