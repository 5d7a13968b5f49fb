package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "taxhub/internal/adapter/storage/redis"
	"taxhub/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, rule RateLimitRule) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := redisStore.NewRateLimitStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	router := gin.New()
	router.GET("/probe", RateLimiter(store, "probe", rule, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, mr
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router, _ := setupRateLimiter(t, RateLimitRule{Limit: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	router, mr := setupRateLimiter(t, RateLimitRule{Limit: 1, Window: time.Minute})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	mr.FastForward(61 * time.Second)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_KeyedByPrincipal(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := redisStore.NewRateLimitStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	rule := RateLimitRule{Limit: 1, Window: time.Minute}

	seed := func(id uuid.UUID) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(CtxPrincipal, domain.Principal{UserID: id, Email: "x@example.com"})
		}
	}

	userA := uuid.New()
	userB := uuid.New()

	router := gin.New()
	router.GET("/a", seed(userA), RateLimiter(store, "probe", rule, zerolog.Nop()), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/b", seed(userB), RateLimiter(store, "probe", rule, zerolog.Nop()), func(c *gin.Context) { c.Status(http.StatusOK) })

	// Exhaust user A's budget; user B still passes.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/b", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	store := redisStore.NewRateLimitStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	mr.Close() // store now errors on every call

	router := gin.New()
	router.GET("/probe", RateLimiter(store, "probe", RateLimitRule{Limit: 1, Window: time.Minute}, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
