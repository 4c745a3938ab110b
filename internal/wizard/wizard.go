package wizard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// 向导流程标识
const (
	FlowExcelDashboard = "excel-dashboard"
	FlowSapBridge      = "sap-bridge"
)

var (
	// ErrUnknownFlow 流程不存在
	ErrUnknownFlow = errors.New("unknown wizard flow")
	// ErrStepLocked 目标步骤尚未解锁
	ErrStepLocked = errors.New("wizard step is locked")
	// ErrStepIncomplete 当前步骤未完成,不能前进
	ErrStepIncomplete = errors.New("current step is not complete")
	// ErrAtFirstStep 已在第一步,不能后退
	ErrAtFirstStep = errors.New("already at first step")
	// ErrAtLastStep 已在最后一步,不能前进
	ErrAtLastStep = errors.New("already at last step")
)

// Step 向导步骤定义
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Flow 向导流程定义,步骤编号从 1 开始连续
type Flow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

var flows = map[string]Flow{
	FlowExcelDashboard: {
		ID:    FlowExcelDashboard,
		Title: "Excel to Dashboard",
		Steps: []Step{
			{Number: 1, Title: "Upload", Description: "Upload your Excel workbook"},
			{Number: 2, Title: "Clean", Description: "Review and clean imported rows"},
			{Number: 3, Title: "Map", Description: "Map columns to dashboard fields"},
			{Number: 4, Title: "Publish", Description: "Publish the dashboard"},
		},
	},
	FlowSapBridge: {
		ID:    FlowSapBridge,
		Title: "SAP Bridge Setup",
		Steps: []Step{
			{Number: 1, Title: "Connect", Description: "Connect to the SAP system"},
			{Number: 2, Title: "Select", Description: "Select tables to bridge"},
			{Number: 3, Title: "Validate", Description: "Validate field mappings"},
			{Number: 4, Title: "Sync", Description: "Run the initial sync"},
		},
	},
}

// GetFlow 按 ID 返回流程定义
func GetFlow(id string) (Flow, bool) {
	f, ok := flows[id]
	return f, ok
}

// Session 一次向导会话
// furthest 记录到达过的最远步骤,后退不回收已解锁的步骤
type Session struct {
	mu        sync.Mutex
	ID        string
	FlowID    string
	current   int
	furthest  int
	completed map[int]bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession 创建指定流程的会话,从第 1 步开始
func NewSession(flowID string) (*Session, error) {
	if _, ok := flows[flowID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, flowID)
	}
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		FlowID:    flowID,
		current:   1,
		furthest:  1,
		completed: make(map[int]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Snapshot 会话状态快照
type Snapshot struct {
	ID             string `json:"id"`
	FlowID         string `json:"flow_id"`
	CurrentStep    int    `json:"current_step"`
	FurthestStep   int    `json:"furthest_step"`
	TotalSteps     int    `json:"total_steps"`
	CompletedSteps []int  `json:"completed_steps"`
	Finished       bool   `json:"finished"`
}

// Snapshot 返回当前状态快照
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.totalSteps()
	completed := make([]int, 0, len(s.completed))
	for n := 1; n <= total; n++ {
		if s.completed[n] {
			completed = append(completed, n)
		}
	}
	return Snapshot{
		ID:             s.ID,
		FlowID:         s.FlowID,
		CurrentStep:    s.current,
		FurthestStep:   s.furthest,
		TotalSteps:     total,
		CompletedSteps: completed,
		Finished:       s.completed[total],
	}
}

// CompleteStep 标记当前步骤完成
func (s *Session) CompleteStep() Snapshot {
	s.mu.Lock()
	s.completed[s.current] = true
	s.UpdatedAt = time.Now()
	s.mu.Unlock()
	return s.Snapshot()
}

// CanAdvance 当前步骤已完成且未到最后一步时可前进
func (s *Session) CanAdvance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[s.current] && s.current < s.totalSteps()
}

// Advance 前进到下一步,必要时推进 furthest
func (s *Session) Advance() (Snapshot, error) {
	s.mu.Lock()
	if s.current >= s.totalSteps() {
		s.mu.Unlock()
		return s.Snapshot(), ErrAtLastStep
	}
	if !s.completed[s.current] {
		s.mu.Unlock()
		return s.Snapshot(), ErrStepIncomplete
	}
	s.current++
	if s.current > s.furthest {
		s.furthest = s.current
	}
	s.UpdatedAt = time.Now()
	s.mu.Unlock()
	return s.Snapshot(), nil
}

// Back 后退一步,furthest 保持不变
func (s *Session) Back() (Snapshot, error) {
	s.mu.Lock()
	if s.current <= 1 {
		s.mu.Unlock()
		return s.Snapshot(), ErrAtFirstStep
	}
	s.current--
	s.UpdatedAt = time.Now()
	s.mu.Unlock()
	return s.Snapshot(), nil
}

// GoTo 跳转到任意已解锁的步骤
func (s *Session) GoTo(step int) (Snapshot, error) {
	s.mu.Lock()
	if step < 1 || step > s.totalSteps() {
		s.mu.Unlock()
		return s.Snapshot(), fmt.Errorf("%w: step %d out of range", ErrStepLocked, step)
	}
	if step > s.furthest {
		s.mu.Unlock()
		return s.Snapshot(), fmt.Errorf("%w: step %d", ErrStepLocked, step)
	}
	s.current = step
	s.UpdatedAt = time.Now()
	s.mu.Unlock()
	return s.Snapshot(), nil
}

// Reset 回到第 1 步并清空全部进度
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	s.current = 1
	s.furthest = 1
	s.completed = make(map[int]bool)
	s.UpdatedAt = time.Now()
	s.mu.Unlock()
	return s.Snapshot()
}

func (s *Session) totalSteps() int {
	return len(flows[s.FlowID].Steps)
}

// Manager 会话管理器,内存保存进行中的会话
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager 创建会话管理器
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start 创建并登记新会话
func (m *Manager) Start(flowID string) (*Session, error) {
	sess, err := NewSession(flowID)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess, nil
}

// Get 按 ID 查找会话
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}
