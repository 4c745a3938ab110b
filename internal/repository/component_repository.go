package repository

import (
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// ComponentRepository 物料仓储接口
type ComponentRepository interface {
	FindPage(commodity, search string, page, pageSize int) ([]*model.ComponentModel, int64, error)
	FindByMPN(mpn string) (*model.ComponentModel, error)
	FindAll() ([]*model.ComponentModel, error)
	FindLeadTimeOver(days int) ([]*model.ComponentModel, error)
}

// componentRepository 物料仓储实现
type componentRepository struct {
	db *gorm.DB
}

// NewComponentRepository 创建物料仓储
func NewComponentRepository(db *gorm.DB) ComponentRepository {
	return &componentRepository{db: db}
}

// FindPage 分页查询物料
// commodity 按类目过滤,search 在 MPN 和描述上做模糊匹配,均为空时不过滤
func (r *componentRepository) FindPage(commodity, search string, page, pageSize int) ([]*model.ComponentModel, int64, error) {
	query := r.db.Model(&model.ComponentModel{})
	if commodity != "" {
		query = query.Where("commodity = ?", commodity)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("mpn LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var components []*model.ComponentModel
	err := query.Order("mpn ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&components).Error
	return components, total, err
}

// FindByMPN 根据 MPN 查找物料
func (r *componentRepository) FindByMPN(mpn string) (*model.ComponentModel, error) {
	var component model.ComponentModel
	if err := r.db.Where("mpn = ?", mpn).First(&component).Error; err != nil {
		return nil, err
	}
	return &component, nil
}

// FindAll 查找所有物料
func (r *componentRepository) FindAll() ([]*model.ComponentModel, error) {
	var components []*model.ComponentModel
	err := r.db.Order("mpn ASC").Find(&components).Error
	return components, err
}

// FindLeadTimeOver 查找交期超过指定天数的物料,按交期降序
func (r *componentRepository) FindLeadTimeOver(days int) ([]*model.ComponentModel, error) {
	var components []*model.ComponentModel
	err := r.db.Where("lead_time_days > ?", days).
		Order("lead_time_days DESC").
		Find(&components).Error
	return components, err
}
