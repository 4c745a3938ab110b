package service

import (
	"context"
	"time"

	"github.com/DigitalBullGO/indicatorems/internal/metrics"
	"github.com/DigitalBullGO/indicatorems/internal/utils"
)

// SampleQueries 预置的建议问题
var SampleQueries = []string{
	"Which components from Mouser are delayed?",
	"Show spend by commodity for Q1",
	"Top 5 suppliers by order volume",
	"MPNs with lead time > 90 days",
}

// InsightReply AI 洞察回复
type InsightReply struct {
	Content string       `json:"content"`
	Chart   []ChartPoint `json:"chart,omitempty"`
	Actions []string     `json:"actions,omitempty"`
}

// InsightService AI 洞察服务接口
// 回复是预置的,延迟模拟推理耗时
type InsightService interface {
	Chat(ctx context.Context, message string) (*InsightReply, error)
	Suggestions() []string
}

// insightService AI 洞察服务实现
type insightService struct {
	responseDelay time.Duration
}

// NewInsightService 创建 AI 洞察服务
func NewInsightService(responseDelay time.Duration) InsightService {
	return &insightService{responseDelay: responseDelay}
}

// Suggestions 返回建议问题列表
func (s *insightService) Suggestions() []string {
	return SampleQueries
}

// Chat 处理一条用户消息
// 命中预置问题返回对应回复,否则返回通用摘要;请求取消时立即返回
func (s *insightService) Chat(ctx context.Context, message string) (*InsightReply, error) {
	clean, err := utils.TrimAndValidate(message, 2000)
	if err != nil {
		return nil, err
	}

	if s.responseDelay > 0 {
		select {
		case <-time.After(s.responseDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	metrics.RecordInsightChat()
	if reply, ok := cannedReplies[clean]; ok {
		return &reply, nil
	}
	return &InsightReply{
		Content: "Based on my analysis of your data: your overall supply chain health is at 94.2% on-time delivery " +
			"with 3 active component shortages. I recommend focusing on diversifying suppliers for long-lead-time ICs.\n\n" +
			"This is a simulated response. Connect an AI backend for real analysis.",
		Actions: []string{"View Details", "Export Report"},
	}, nil
}

var cannedReplies = map[string]InsightReply{
	"Which components from Mouser are delayed?": {
		Content: "I found 2 components from Mouser Electronics with extended lead times:\n\n" +
			"- LM3940IT-3.3 - LDO Regulator, 14 days (within threshold)\n" +
			"- SN74LVC1G14DBVR - Schmitt Trigger, 28 days (within threshold)\n\n" +
			"No critical delays from Mouser currently. However, TUSB320IRWBR from Arrow has a 130-day lead time, " +
			"consider sourcing alternatives.",
		Actions: []string{"Draft RFQ for TUSB320", "Find Alternates"},
	},
	"Show spend by commodity for Q1": {
		Content: "Here's your Q1 commodity spend breakdown:",
		Chart: []ChartPoint{
			{Name: "Passives", Value: 245000},
			{Name: "ICs", Value: 520000},
			{Name: "Power", Value: 180000},
			{Name: "Connectors", Value: 95000},
			{Name: "PCBs", Value: 310000},
		},
		Actions: []string{"Drill down into ICs", "Export to Excel"},
	},
}
