package model

// CustomerModel 客户数据模型
type CustomerModel struct {
	ID      string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Region  string  `gorm:"type:varchar(32);index" json:"region"` // EMEA, Americas, APAC
	Revenue float64 `gorm:"not null" json:"revenue"`
	Orders  int     `gorm:"not null" json:"orders"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}
