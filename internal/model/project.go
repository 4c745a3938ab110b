package model

// ProjectModel 项目数据模型
type ProjectModel struct {
	ID           string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	CustomerName string  `gorm:"type:varchar(255);index" json:"customer_name"`
	Status       string  `gorm:"type:varchar(32);index" json:"status"` // Quoting, Prototype, In Production...
	Value        float64 `gorm:"not null" json:"value"`
	StartDate    string  `gorm:"type:varchar(10)" json:"start_date"` // YYYY-MM-DD
}

// TableName 指定表名
func (ProjectModel) TableName() string {
	return "projects"
}
