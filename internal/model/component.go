package model

import "errors"

// ComponentModel 元器件数据模型
// MPN 作为主键,是自由文本的制造商料号,不保证跨数据集全局唯一
type ComponentModel struct {
	MPN          string  `gorm:"primaryKey;type:varchar(64)" json:"mpn"`
	Description  string  `gorm:"type:varchar(255)" json:"description"`
	SupplierName string  `gorm:"type:varchar(255);index" json:"supplier_name"`
	Commodity    string  `gorm:"type:varchar(64);index" json:"commodity"` // Passives, ICs, Power...
	UnitCost     float64 `gorm:"not null" json:"unit_cost"`
	MOQ          int     `gorm:"not null" json:"moq"`
	LeadTimeDays int     `gorm:"not null;index" json:"lead_time_days"`
	StockQty     int     `gorm:"not null" json:"stock_qty"`
}

// TableName 指定表名
func (ComponentModel) TableName() string {
	return "components"
}

// Validate 验证元器件模型
func (m *ComponentModel) Validate() error {
	if m.MPN == "" {
		return errors.New("component MPN is required")
	}
	return nil
}
