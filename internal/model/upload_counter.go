package model

import "errors"

// UploadCounterModel 每日上传计数数据模型
// 每个自然日一行,日期翻转后旧行自然失效
type UploadCounterModel struct {
	DateKey string `gorm:"primaryKey;type:varchar(10)" json:"date_key"` // YYYY-MM-DD
	Count   int    `gorm:"not null;default:0" json:"count"`
}

// TableName 指定表名
func (UploadCounterModel) TableName() string {
	return "upload_counters"
}

// Validate 验证上传计数模型
func (m *UploadCounterModel) Validate() error {
	if len(m.DateKey) != 10 {
		return errors.New("upload counter date key must be YYYY-MM-DD")
	}
	return nil
}
