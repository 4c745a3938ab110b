package model

import (
	"errors"
	"strings"
	"time"
)

// SAP 表同步状态
const (
	SapStatusSynced = "synced"
	SapStatusStale  = "stale"
)

// SAP 表同步方式
const (
	SapSyncModeFull  = "Full"
	SapSyncModeDelta = "Delta"
)

// SapTableModel SAP 表描述符数据模型
// 纯描述性元数据,不代表真实的 SAP 连接
type SapTableModel struct {
	Name         string    `gorm:"primaryKey;type:varchar(32)" json:"name"` // MARA, EKPO...
	Description  string    `gorm:"type:varchar(255)" json:"description"`
	RecordCount  int64     `gorm:"not null" json:"record_count"`
	LastSyncAt   time.Time `gorm:"not null;index" json:"last_sync_at"`
	Status       string    `gorm:"type:varchar(16);not null" json:"status"` // synced, stale
	Category     string    `gorm:"type:varchar(64)" json:"category"`
	ColumnsCount int       `gorm:"not null" json:"columns_count"`
	KeyFields    string    `gorm:"type:varchar(255)" json:"-"`                 // 逗号分隔的关键字段列表
	SyncMode     string    `gorm:"type:varchar(16);not null" json:"sync_mode"` // Full, Delta
}

// TableName 指定表名
func (SapTableModel) TableName() string {
	return "sap_tables"
}

// KeyFieldList 返回关键字段列表
func (m *SapTableModel) KeyFieldList() []string {
	if m.KeyFields == "" {
		return nil
	}
	return strings.Split(m.KeyFields, ",")
}

// Validate 验证 SAP 表描述符
func (m *SapTableModel) Validate() error {
	if m.Name == "" {
		return errors.New("sap table name is required")
	}
	if m.SyncMode != SapSyncModeFull && m.SyncMode != SapSyncModeDelta {
		return errors.New("sap table sync mode must be Full or Delta")
	}
	return nil
}
