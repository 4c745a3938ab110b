package repository

import (
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// SupplierRepository 供应商仓储接口
type SupplierRepository interface {
	FindPage(category string, page, pageSize int) ([]*model.SupplierModel, int64, error)
	FindByID(id string) (*model.SupplierModel, error)
	FindAll() ([]*model.SupplierModel, error)
}

// supplierRepository 供应商仓储实现
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository 创建供应商仓储
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

// FindPage 分页查询供应商,category 为空时不过滤
func (r *supplierRepository) FindPage(category string, page, pageSize int) ([]*model.SupplierModel, int64, error) {
	query := r.db.Model(&model.SupplierModel{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []*model.SupplierModel
	err := query.Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&suppliers).Error
	return suppliers, total, err
}

// FindByID 根据 ID 查找供应商
func (r *supplierRepository) FindByID(id string) (*model.SupplierModel, error) {
	var supplier model.SupplierModel
	if err := r.db.Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindAll 查找所有供应商
func (r *supplierRepository) FindAll() ([]*model.SupplierModel, error) {
	var suppliers []*model.SupplierModel
	err := r.db.Order("id ASC").Find(&suppliers).Error
	return suppliers, err
}
