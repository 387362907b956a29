package cart

import (
	"context"
	"testing"
	"time"

	"laundryhub-backend/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis starts a miniredis server and a RedisStore pointing at it.
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 30*time.Minute), mr
}

func stores(t *testing.T) map[string]Store {
	rs, _ := setupTestRedis(t)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  rs,
	}
}

func TestStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			c, err := s.Load(context.Background(), "nobody")
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.True(t, c.IsEmpty())
			assert.NotNil(t, c.Lines)
		})
	}
}

func TestStore_SaveLoadDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := New()
			a := c.AddItem(item(t, catalog.WashAndFold, "t-shirt"), catalog.WashAndFold)
			b := c.AddItem(item(t, catalog.WashAndFold, "dress-shirt"), catalog.WashAndFold)
			require.NoError(t, s.Save(ctx, "user-1", c))

			got, err := s.Load(ctx, "user-1")
			require.NoError(t, err)
			require.Len(t, got.Lines, 2)
			assert.Equal(t, a.LineID, got.Lines[0].LineID)
			assert.Equal(t, b.LineID, got.Lines[1].LineID)
			assert.True(t, got.Subtotal().Equal(dec("7.00")))

			// Other owners don't see it.
			other, err := s.Load(ctx, "user-2")
			require.NoError(t, err)
			assert.True(t, other.IsEmpty())

			require.NoError(t, s.Delete(ctx, "user-1"))
			gone, err := s.Load(ctx, "user-1")
			require.NoError(t, err)
			assert.True(t, gone.IsEmpty())
		})
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	c := New()
	c.AddItem(item(t, catalog.Express, "jeans"), "")
	require.NoError(t, s.Save(ctx, "u", c))

	loaded, err := s.Load(ctx, "u")
	require.NoError(t, err)
	loaded.Clear()

	again, err := s.Load(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 1, again.TotalItemCount())
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	s, mr := setupTestRedis(t)
	ctx := context.Background()

	c := New()
	c.AddItem(item(t, catalog.Comforters, "quilt"), "")
	require.NoError(t, s.Save(ctx, "abc", c))

	assert.True(t, mr.Exists("cart:abc"))
	assert.Equal(t, 30*time.Minute, mr.TTL("cart:abc"))

	mr.FastForward(31 * time.Minute)
	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	s, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("cart:bad", "{not json"))

	_, err := s.Load(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	s, mr := setupTestRedis(t)
	mr.Close()

	_, err := s.Load(context.Background(), "x")
	assert.Error(t, err)
	assert.Error(t, s.Save(context.Background(), "x", New()))
}
