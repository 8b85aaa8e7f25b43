package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu        sync.Mutex
	slugs     []string
	listCalls int
	hasCalls  int
	err       error
}

func (f *fakeSource) ListSlugs(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.slugs...), nil
}

func (f *fakeSource) Has(ctx context.Context, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hasCalls++
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.slugs {
		if s == slug {
			return true, nil
		}
	}
	return false, nil
}

// testRedis returns a client on an empty category key; redisAddr comes from the
// build-specific helper.
func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: redisAddr(t), DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())

	client.Del(context.Background(), categorySetKey)
	t.Cleanup(func() {
		client.Del(context.Background(), categorySetKey)
		_ = client.Close()
	})
	return client
}

// expireBeforeLookup deletes the category key just before the first command batch that
// asks for set membership, the way a TTL lapse or a concurrent Invalidate would.
type expireBeforeLookup struct {
	other *redis.Client
	fired atomic.Bool
}

func (h *expireBeforeLookup) expire(ctx context.Context, cmds []redis.Cmder) {
	for _, cmd := range cmds {
		if cmd.Name() == "sismember" && h.fired.CompareAndSwap(false, true) {
			h.other.Del(ctx, categorySetKey)
			return
		}
	}
}

func (h *expireBeforeLookup) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *expireBeforeLookup) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.expire(ctx, []redis.Cmder{cmd})
		return next(ctx, cmd)
	}
}

func (h *expireBeforeLookup) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		h.expire(ctx, cmds)
		return next(ctx, cmds)
	}
}

func TestCategoryCacheWithoutRedisUsesSource(t *testing.T) {
	src := &fakeSource{slugs: []string{"dexterity"}}
	c := NewCategoryCache(nil, src, time.Minute, nil)

	ok, err := c.Has(context.Background(), "dexterity")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Has(context.Background(), "bananas")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 2, src.hasCalls)
	assert.NoError(t, c.Invalidate(context.Background()))
}

func TestCategoryCacheFillsOnce(t *testing.T) {
	client := testRedis(t)
	src := &fakeSource{slugs: []string{"euro game", "social deduction", "dexterity", "children's games"}}
	c := NewCategoryCache(client, src, time.Minute, nil)
	ctx := context.Background()

	ok, err := c.Has(ctx, "dexterity")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Has(ctx, "children's games")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Has(ctx, "bananas")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, src.listCalls)
	assert.Zero(t, src.hasCalls)

	ttl, err := client.TTL(ctx, categorySetKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestCategoryCacheInvalidateSeesNewCategory(t *testing.T) {
	client := testRedis(t)
	src := &fakeSource{slugs: []string{"dexterity"}}
	c := NewCategoryCache(client, src, time.Minute, nil)
	ctx := context.Background()

	ok, err := c.Has(ctx, "strategy")
	require.NoError(t, err)
	assert.False(t, ok)

	src.slugs = append(src.slugs, "strategy")
	require.NoError(t, c.Invalidate(ctx))

	ok, err = c.Has(ctx, "strategy")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, src.listCalls)
}

func TestCategoryCacheSourceError(t *testing.T) {
	client := testRedis(t)
	src := &fakeSource{err: errors.New("db down")}
	c := NewCategoryCache(client, src, time.Minute, nil)

	_, err := c.Has(context.Background(), "dexterity")
	assert.Error(t, err)
}

func TestCategoryCacheKeyExpiringMidLookupStillAccepts(t *testing.T) {
	client := testRedis(t)
	src := &fakeSource{slugs: []string{"euro game", "social deduction", "dexterity", "children's games"}}
	c := NewCategoryCache(client, src, time.Minute, nil)
	ctx := context.Background()

	ok, err := c.Has(ctx, "dexterity")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, src.listCalls)

	opts := *client.Options()
	other := redis.NewClient(&opts)
	t.Cleanup(func() { _ = other.Close() })
	hook := &expireBeforeLookup{other: other}
	client.AddHook(hook)

	ok, err = c.Has(ctx, "social deduction")
	require.NoError(t, err)
	assert.True(t, hook.fired.Load())
	assert.True(t, ok)
	assert.Equal(t, 2, src.listCalls)

	members, err := client.SCard(ctx, categorySetKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(4), members)
}

func TestCategoryCacheInvalidateBetweenLookups(t *testing.T) {
	client := testRedis(t)
	src := &fakeSource{slugs: []string{"dexterity"}}
	c := NewCategoryCache(client, src, time.Minute, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ok, err := c.Has(ctx, "dexterity")
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Invalidate(ctx))
		}()
	}
	wg.Wait()
}
