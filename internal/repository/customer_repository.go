package repository

import (
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// CustomerRepository 客户仓储接口
type CustomerRepository interface {
	FindPage(region string, page, pageSize int) ([]*model.CustomerModel, int64, error)
	FindAll() ([]*model.CustomerModel, error)
	SumRevenue() (float64, error)
}

// customerRepository 客户仓储实现
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// FindPage 分页查询客户,region 为空时不过滤
func (r *customerRepository) FindPage(region string, page, pageSize int) ([]*model.CustomerModel, int64, error) {
	query := r.db.Model(&model.CustomerModel{})
	if region != "" {
		query = query.Where("region = ?", region)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []*model.CustomerModel
	err := query.Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error
	return customers, total, err
}

// FindAll 查找所有客户
func (r *customerRepository) FindAll() ([]*model.CustomerModel, error) {
	var customers []*model.CustomerModel
	err := r.db.Order("id ASC").Find(&customers).Error
	return customers, err
}

// SumRevenue 汇总全部客户营收
func (r *customerRepository) SumRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&model.CustomerModel{}).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&total).Error
	return total, err
}
