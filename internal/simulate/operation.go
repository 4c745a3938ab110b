package simulate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// 操作状态
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Progress 操作进度快照
type Progress struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Step       int     `json:"step"`
	TotalSteps int     `json:"total_steps"`
	Percent    float64 `json:"percent"`
	Status     string  `json:"status"`
}

// Operation 模拟长耗时操作,按固定步长推进进度
// 取消后进度停在当前步,不会回退也不会继续
type Operation struct {
	id         string
	name       string
	totalSteps int

	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	step   int
	status string
}

// Start 启动模拟操作,总时长 duration 均分为 steps 步
// onProgress 在每步推进和终态时回调,可为 nil
func Start(ctx context.Context, name string, duration time.Duration, steps int, onProgress func(Progress)) *Operation {
	if steps <= 0 {
		steps = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	op := &Operation{
		id:         uuid.New().String(),
		name:       name,
		totalSteps: steps,
		cancel:     cancel,
		done:       make(chan struct{}),
		status:     StatusRunning,
	}
	go op.run(ctx, duration/time.Duration(steps), onProgress)
	return op
}

func (op *Operation) run(ctx context.Context, interval time.Duration, onProgress func(Progress)) {
	defer close(op.done)
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			op.mu.Lock()
			if op.status == StatusRunning {
				op.status = StatusCancelled
			}
			op.mu.Unlock()
			op.notify(onProgress)
			return
		case <-ticker.C:
			op.mu.Lock()
			op.step++
			finished := op.step >= op.totalSteps
			if finished {
				op.step = op.totalSteps
				op.status = StatusCompleted
			}
			op.mu.Unlock()
			op.notify(onProgress)
			if finished {
				return
			}
		}
	}
}

func (op *Operation) notify(onProgress func(Progress)) {
	if onProgress != nil {
		onProgress(op.Progress())
	}
}

// ID 返回操作标识
func (op *Operation) ID() string { return op.id }

// Name 返回操作名称
func (op *Operation) Name() string { return op.name }

// Progress 返回当前进度快照
func (op *Operation) Progress() Progress {
	op.mu.Lock()
	defer op.mu.Unlock()
	return Progress{
		ID:         op.id,
		Name:       op.name,
		Step:       op.step,
		TotalSteps: op.totalSteps,
		Percent:    float64(op.step) / float64(op.totalSteps) * 100,
		Status:     op.status,
	}
}

// Cancel 取消操作,幂等
func (op *Operation) Cancel() {
	op.cancel()
}

// Done 操作结束(完成或取消)时关闭
func (op *Operation) Done() <-chan struct{} {
	return op.done
}

// Wait 阻塞等待操作结束,返回终态进度
func (op *Operation) Wait() Progress {
	<-op.done
	return op.Progress()
}

// Registry 进行中操作的注册表
type Registry struct {
	mu  sync.RWMutex
	ops map[string]*Operation
}

// NewRegistry 创建操作注册表
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Operation)}
}

// Add 登记操作
func (r *Registry) Add(op *Operation) {
	r.mu.Lock()
	r.ops[op.ID()] = op
	r.mu.Unlock()
}

// Get 按 ID 查找操作
func (r *Registry) Get(id string) (*Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[id]
	return op, ok
}
