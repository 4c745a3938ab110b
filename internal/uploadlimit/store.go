package uploadlimit

import (
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// GormStore 基于数据库的上传计数存储
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库计数存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Count 返回指定日期的已用次数,无记录视为 0
func (s *GormStore) Count(dateKey string) (int, error) {
	var counter model.UploadCounterModel
	err := s.db.Where("date_key = ?", dateKey).First(&counter).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Count, nil
}

// Increment 将指定日期的计数加一,记录不存在时插入
func (s *GormStore) Increment(dateKey string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("count + 1"),
		}),
	}).Create(&model.UploadCounterModel{DateKey: dateKey, Count: 1}).Error
}

// MemoryStore 内存计数存储,用于测试和无数据库场景
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemoryStore 创建内存计数存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int)}
}

// Count 返回指定日期的已用次数
func (s *MemoryStore) Count(dateKey string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[dateKey], nil
}

// Increment 将指定日期的计数加一
func (s *MemoryStore) Increment(dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[dateKey]++
	return nil
}
