package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
)

func newTestStore(t *testing.T) (*CartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCartStore(client, time.Hour), mr
}

func TestConnect(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	store, err := Connect(ctx, database.RedisConfig{Host: mr.Host(), Port: port}, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Save(ctx, "sess-1", &domain.Cart{}))
	assert.True(t, mr.Exists("cart-storage:sess-1"))
}

func TestCartStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	cart := &domain.Cart{}
	cart.AddItem(domain.CartItem{ProductID: 1, Name: "Premium Headphones", Price: decimal.RequireFromString("6999"), Quantity: 2})

	require.NoError(t, store.Save(ctx, "sess-1", cart))

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 2, got.ItemCount())
	assert.True(t, got.TotalPrice().Equal(decimal.RequireFromString("13998")))
}

func TestCartStoreLoadMissingReturnsEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Load(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartStoreSnapshotExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, "sess-1", &domain.Cart{}))
	assert.True(t, mr.Exists("cart-storage:sess-1"))

	mr.FastForward(2 * time.Hour)

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	cart := &domain.Cart{}
	cart.AddItem(domain.CartItem{ProductID: 3, Name: "Bluetooth Speaker", Price: decimal.RequireFromString("4299"), Quantity: 1})
	require.NoError(t, store.Save(ctx, "sess-9", cart))

	require.NoError(t, store.Delete(ctx, "sess-9"))
	assert.False(t, mr.Exists("cart-storage:sess-9"))
}
