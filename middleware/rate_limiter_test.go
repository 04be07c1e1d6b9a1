package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRedis answers the limiter's INCR/EXPIRE NX/TTL pipeline from memory.
type countingRedis struct {
	redis.Cmdable
	mu     sync.Mutex
	counts map[string]int64
	ttl    time.Duration
}

func (r *countingRedis) TxPipeline() redis.Pipeliner {
	return &countingPipe{store: r}
}

type countingPipe struct {
	redis.Pipeliner
	store *countingRedis
	cmds  []redis.Cmder
}

func (p *countingPipe) Incr(ctx context.Context, key string) *redis.IntCmd {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	p.store.counts[key]++
	cmd := redis.NewIntResult(p.store.counts[key], nil)
	p.cmds = append(p.cmds, cmd)
	return cmd
}

func (p *countingPipe) ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolResult(true, nil)
	p.cmds = append(p.cmds, cmd)
	return cmd
}

func (p *countingPipe) TTL(ctx context.Context, key string) *redis.DurationCmd {
	cmd := redis.NewDurationResult(p.store.ttl, nil)
	p.cmds = append(p.cmds, cmd)
	return cmd
}

func (p *countingPipe) Exec(ctx context.Context) ([]redis.Cmder, error) {
	return p.cmds, nil
}

func newLimitedRouter(client redis.Cmdable, max int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiterWithClient(func() redis.Cmdable { return client }, max, time.Minute))
	r.GET("/customers", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})
	return r
}

func get(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers", nil))
	return w
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	store := &countingRedis{counts: map[string]int64{}, ttl: 42 * time.Second}
	r := newLimitedRouter(store, 2)

	w := get(r)
	require.Equal(t, http.StatusOK, w.Code)
	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Rate)
	assert.Equal(t, 2, body.Rate.Limit)
	assert.Equal(t, 1, body.Rate.Remaining)

	assert.Equal(t, http.StatusOK, get(r).Code)

	w = get(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, 0, body.Rate.Remaining)
}

func TestRateLimiterFailsOpenWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	r := newLimitedRouter(client, 1)

	for i := 0; i < 3; i++ {
		w := get(r)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Retry-After"))

		var body models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Nil(t, body.Rate)
	}
}
