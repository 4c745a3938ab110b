package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// SapTableRepository SAP 表描述符仓储接口
type SapTableRepository interface {
	FindAll() ([]*model.SapTableModel, error)
	FindByName(name string) (*model.SapTableModel, error)
	MarkSynced(name string, syncedAt time.Time) error
}

// sapTableRepository SAP 表描述符仓储实现
type sapTableRepository struct {
	db *gorm.DB
}

// NewSapTableRepository 创建 SAP 表描述符仓储
func NewSapTableRepository(db *gorm.DB) SapTableRepository {
	return &sapTableRepository{db: db}
}

// FindAll 查找所有表描述符
func (r *sapTableRepository) FindAll() ([]*model.SapTableModel, error) {
	var tables []*model.SapTableModel
	err := r.db.Order("name ASC").Find(&tables).Error
	return tables, err
}

// FindByName 根据表名查找描述符
func (r *sapTableRepository) FindByName(name string) (*model.SapTableModel, error) {
	var table model.SapTableModel
	if err := r.db.Where("name = ?", name).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// MarkSynced 更新同步时间并把状态置回 synced
func (r *sapTableRepository) MarkSynced(name string, syncedAt time.Time) error {
	return r.db.Model(&model.SapTableModel{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"last_sync_at": syncedAt,
			"status":       model.SapStatusSynced,
		}).Error
}
