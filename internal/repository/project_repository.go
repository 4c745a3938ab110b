package repository

import (
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// ProjectRepository 项目仓储接口
type ProjectRepository interface {
	FindPage(status string, page, pageSize int) ([]*model.ProjectModel, int64, error)
	FindAll() ([]*model.ProjectModel, error)
	CountActive() (int64, error)
}

// projectRepository 项目仓储实现
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目仓储
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// FindPage 分页查询项目,status 为空时不过滤
func (r *projectRepository) FindPage(status string, page, pageSize int) ([]*model.ProjectModel, int64, error) {
	query := r.db.Model(&model.ProjectModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*model.ProjectModel
	err := query.Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&projects).Error
	return projects, total, err
}

// FindAll 查找所有项目
func (r *projectRepository) FindAll() ([]*model.ProjectModel, error) {
	var projects []*model.ProjectModel
	err := r.db.Order("id ASC").Find(&projects).Error
	return projects, err
}

// CountActive 统计项目总数
func (r *projectRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProjectModel{}).Count(&count).Error
	return count, err
}
