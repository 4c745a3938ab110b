package uploadlimit

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMaxPerDay 每日上传次数上限
const DefaultMaxPerDay = 10

// Store 上传计数存储接口
// dateKey 格式为 YYYY-MM-DD
type Store interface {
	// Count 返回指定日期的已用次数
	Count(dateKey string) (int, error)
	// Increment 将指定日期的计数加一
	Increment(dateKey string) error
}

// Limiter 按自然日限制上传次数
// 存储故障时放行,限流器不能成为上传链路的单点
type Limiter struct {
	store     Store
	maxPerDay int
	now       func() time.Time
}

// NewLimiter 创建上传限流器,maxPerDay <= 0 时使用默认上限
func NewLimiter(store Store, maxPerDay int) *Limiter {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	return &Limiter{
		store:     store,
		maxPerDay: maxPerDay,
		now:       time.Now,
	}
}

// MaxPerDay 返回每日上限
func (l *Limiter) MaxPerDay() int {
	return l.maxPerDay
}

// RemainingToday 返回今日剩余可上传次数,最小为 0
func (l *Limiter) RemainingToday() int {
	used, err := l.store.Count(l.dateKey())
	if err != nil {
		logrus.WithError(err).Warn("upload counter read failed, allowing upload")
		return l.maxPerDay
	}
	remaining := l.maxPerDay - used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanUpload 判断今日是否还能上传
func (l *Limiter) CanUpload() bool {
	return l.RemainingToday() > 0
}

// RecordUpload 记录一次上传,存储失败只打日志
func (l *Limiter) RecordUpload() {
	if err := l.store.Increment(l.dateKey()); err != nil {
		logrus.WithError(err).Warn("upload counter write failed")
	}
}

func (l *Limiter) dateKey() string {
	return l.now().Format("2006-01-02")
}
