package repository

import (
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// BOMRepository BOM 行仓储接口
type BOMRepository interface {
	FindAll() ([]*model.BOMItemModel, error)
	FindPage(page, pageSize int) ([]*model.BOMItemModel, int64, error)
}

// bomRepository BOM 行仓储实现
type bomRepository struct {
	db *gorm.DB
}

// NewBOMRepository 创建 BOM 行仓储
func NewBOMRepository(db *gorm.DB) BOMRepository {
	return &bomRepository{db: db}
}

// FindAll 查找所有 BOM 行,保持录入顺序
func (r *bomRepository) FindAll() ([]*model.BOMItemModel, error) {
	var items []*model.BOMItemModel
	err := r.db.Order("id ASC").Find(&items).Error
	return items, err
}

// FindPage 分页查询 BOM 行
func (r *bomRepository) FindPage(page, pageSize int) ([]*model.BOMItemModel, int64, error) {
	var total int64
	if err := r.db.Model(&model.BOMItemModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*model.BOMItemModel
	err := r.db.Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}
