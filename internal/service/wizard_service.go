package service

import (
	"errors"

	"github.com/DigitalBullGO/indicatorems/internal/wizard"
)

// ErrSessionNotFound 向导会话不存在
var ErrSessionNotFound = errors.New("wizard session not found")

// WizardSessionView 向导会话视图,含流程定义与状态快照
type WizardSessionView struct {
	Flow  wizard.Flow     `json:"flow"`
	State wizard.Snapshot `json:"state"`
}

// WizardService 向导服务接口
type WizardService interface {
	StartSession(flowID string) (*WizardSessionView, error)
	GetSession(id string) (*WizardSessionView, error)
	Advance(id string) (*WizardSessionView, error)
	Back(id string) (*WizardSessionView, error)
	Reset(id string) (*WizardSessionView, error)
	CompleteStep(id string) (*WizardSessionView, error)
}

// wizardService 向导服务实现
type wizardService struct {
	manager *wizard.Manager
}

// NewWizardService 创建向导服务
func NewWizardService() WizardService {
	return &wizardService{manager: wizard.NewManager()}
}

// StartSession 创建指定流程的会话
func (s *wizardService) StartSession(flowID string) (*WizardSessionView, error) {
	sess, err := s.manager.Start(flowID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// GetSession 查询会话状态
func (s *wizardService) GetSession(id string) (*WizardSessionView, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.view(sess), nil
}

// Advance 前进到下一步
func (s *wizardService) Advance(id string) (*WizardSessionView, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if _, err := sess.Advance(); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Back 后退一步
func (s *wizardService) Back(id string) (*WizardSessionView, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if _, err := sess.Back(); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Reset 重置会话
func (s *wizardService) Reset(id string) (*WizardSessionView, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.Reset()
	return s.view(sess), nil
}

// CompleteStep 标记当前步骤完成
func (s *wizardService) CompleteStep(id string) (*WizardSessionView, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.CompleteStep()
	return s.view(sess), nil
}

func (s *wizardService) view(sess *wizard.Session) *WizardSessionView {
	flow, _ := wizard.GetFlow(sess.FlowID)
	return &WizardSessionView{
		Flow:  flow,
		State: sess.Snapshot(),
	}
}
