package model

import "errors"

// SupplierModel 供应商数据模型
type SupplierModel struct {
	ID           string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Category     string  `gorm:"type:varchar(64);index" json:"category"` // Distributor, Manufacturer
	LeadTimeDays int     `gorm:"not null" json:"lead_time_days"`
	Rating       float64 `gorm:"not null" json:"rating"` // 0-5,仅用于展示,不强制校验范围
	Country      string  `gorm:"type:varchar(64)" json:"country"`
}

// TableName 指定表名
func (SupplierModel) TableName() string {
	return "suppliers"
}

// Validate 验证供应商模型
func (m *SupplierModel) Validate() error {
	if m.ID == "" {
		return errors.New("supplier ID is required")
	}
	if m.Name == "" {
		return errors.New("supplier name is required")
	}
	return nil
}
