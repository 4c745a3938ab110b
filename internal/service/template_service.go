package service

import (
	"errors"

	"github.com/DigitalBullGO/indicatorems/internal/export"
	"github.com/DigitalBullGO/indicatorems/internal/metrics"
	"github.com/DigitalBullGO/indicatorems/internal/template"
)

// ErrTemplateNotFound 模板不存在
var ErrTemplateNotFound = errors.New("template not found")

// RenderResult 模板渲染结果
type RenderResult struct {
	TemplateID  string   `json:"template_id"`
	Body        string   `json:"body"`
	MissingKeys []string `json:"missing_keys,omitempty"`
}

// TemplateService 业务模板服务接口
type TemplateService interface {
	ListCommTemplates(section string) []template.BusinessCommTemplate
	GetCommTemplate(id string) (template.BusinessCommTemplate, error)
	RenderCommTemplate(id string, values map[string]string) (*RenderResult, error)
	ExportCommTemplate(id, format string, values map[string]string) (*export.Export, error)
	ListPromptTemplates(section string) []template.AIPromptTemplate
}

// templateService 业务模板服务实现
type templateService struct{}

// NewTemplateService 创建业务模板服务
func NewTemplateService() TemplateService {
	return &templateService{}
}

// ListCommTemplates 返回业务公函模板目录
func (s *templateService) ListCommTemplates(section string) []template.BusinessCommTemplate {
	return template.CommTemplates(section)
}

// GetCommTemplate 按 ID 返回业务公函模板
func (s *templateService) GetCommTemplate(id string) (template.BusinessCommTemplate, error) {
	tpl, ok := template.CommTemplateByID(id)
	if !ok {
		return template.BusinessCommTemplate{}, ErrTemplateNotFound
	}
	return tpl, nil
}

// RenderCommTemplate 用给定字段值渲染公函模板
// 缺失的字段以 [key] 形式保留在正文中并在结果中列出
func (s *templateService) RenderCommTemplate(id string, values map[string]string) (*RenderResult, error) {
	tpl, ok := template.CommTemplateByID(id)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	metrics.RecordTemplateRender(id)
	return &RenderResult{
		TemplateID:  id,
		Body:        template.Render(tpl.BodyTemplate, tpl.Fields, values),
		MissingKeys: template.MissingKeys(tpl.Fields, values),
	}, nil
}

// ExportCommTemplate 渲染并导出公函模板
func (s *templateService) ExportCommTemplate(id, format string, values map[string]string) (*export.Export, error) {
	result, err := s.RenderCommTemplate(id, values)
	if err != nil {
		return nil, err
	}
	tpl, _ := template.CommTemplateByID(id)

	exp := export.Build(tpl.Title, format, result.Body)
	return &exp, nil
}

// ListPromptTemplates 返回 AI 提示词模板目录
func (s *templateService) ListPromptTemplates(section string) []template.AIPromptTemplate {
	return template.PromptTemplates(section)
}
