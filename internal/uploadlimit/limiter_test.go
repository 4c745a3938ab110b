package uploadlimit_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalBullGO/indicatorems/internal/uploadlimit"
)

type failingStore struct{}

func (failingStore) Count(string) (int, error) { return 0, errors.New("db unreachable") }
func (failingStore) Increment(string) error    { return errors.New("db unreachable") }

func newTestLimiter(t *testing.T, max int) (*uploadlimit.Limiter, *uploadlimit.MemoryStore) {
	t.Helper()
	store := uploadlimit.NewMemoryStore()
	return uploadlimit.NewLimiter(store, max), store
}

func TestLimiterCountsDown(t *testing.T) {
	limiter, _ := newTestLimiter(t, 10)

	assert.Equal(t, 10, limiter.RemainingToday())
	assert.True(t, limiter.CanUpload())

	for i := 0; i < 3; i++ {
		limiter.RecordUpload()
	}
	assert.Equal(t, 7, limiter.RemainingToday())
}

func TestLimiterExhaustsAtMax(t *testing.T) {
	limiter, _ := newTestLimiter(t, 10)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.CanUpload())
		limiter.RecordUpload()
	}
	assert.Equal(t, 0, limiter.RemainingToday())
	assert.False(t, limiter.CanUpload())

	// 超量记录不会让余量变负
	limiter.RecordUpload()
	assert.Equal(t, 0, limiter.RemainingToday())
}

func TestLimiterResetsOnNewDay(t *testing.T) {
	store := uploadlimit.NewMemoryStore()
	for i := 0; i < 10; i++ {
		assert.NoError(t, store.Increment("2026-08-30"))
	}
	limiter := uploadlimit.NewLimiter(store, 10)

	// 新的一天使用新的 dateKey,昨天耗尽不影响今天
	today := time.Now().Format("2006-01-02")
	assert.NotEqual(t, "2026-08-30", today)
	assert.Equal(t, 10, limiter.RemainingToday())
}

func TestLimiterFailsOpenOnStoreError(t *testing.T) {
	limiter := uploadlimit.NewLimiter(failingStore{}, 10)

	assert.True(t, limiter.CanUpload())
	assert.Equal(t, 10, limiter.RemainingToday())
	assert.NotPanics(t, func() { limiter.RecordUpload() })
}

func TestLimiterDefaultMax(t *testing.T) {
	limiter := uploadlimit.NewLimiter(uploadlimit.NewMemoryStore(), 0)
	assert.Equal(t, uploadlimit.DefaultMaxPerDay, limiter.MaxPerDay())
}
