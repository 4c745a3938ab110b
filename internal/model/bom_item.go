package model

import "errors"

// BOMItemModel BOM 行项目数据模型
type BOMItemModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	MPN          string  `gorm:"type:varchar(64);not null;index" json:"mpn"`
	Description  string  `gorm:"type:varchar(255)" json:"description"`
	Qty          int     `gorm:"not null" json:"qty"`
	UnitCost     float64 `gorm:"not null" json:"unit_cost"`
	SupplierName string  `gorm:"type:varchar(255);index" json:"supplier_name"`
	LeadTimeDays int     `gorm:"not null" json:"lead_time_days"`
}

// TableName 指定表名
func (BOMItemModel) TableName() string {
	return "bom_items"
}

// ExtendedCost 行项目小计 = 数量 × 单价（派生值,不落库）
func (m *BOMItemModel) ExtendedCost() float64 {
	return float64(m.Qty) * m.UnitCost
}

// Validate 验证 BOM 行项目
func (m *BOMItemModel) Validate() error {
	if m.MPN == "" {
		return errors.New("BOM item MPN is required")
	}
	if m.Qty <= 0 {
		return errors.New("BOM item qty must be positive")
	}
	return nil
}
