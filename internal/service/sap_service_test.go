package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/model"
	"github.com/DigitalBullGO/indicatorems/internal/service"
	"github.com/DigitalBullGO/indicatorems/internal/simulate"
)

func waitForSyncEnd(t *testing.T, svc service.SapService, id string) simulate.Progress {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("sync did not finish in time")
		case <-time.After(10 * time.Millisecond):
		}
		progress, err := svc.GetSync(id)
		require.NoError(t, err)
		if progress.Status != simulate.StatusRunning {
			return progress
		}
	}
}

func TestListTables(t *testing.T) {
	svc := service.NewSapService(newSeededDB(t), nil, 50*time.Millisecond)

	tables, err := svc.ListTables()
	require.NoError(t, err)
	assert.Len(t, tables, 6)
}

func TestStartSyncCompletesAndMarksTable(t *testing.T) {
	db := newSeededDB(t)
	svc := service.NewSapService(db, nil, 50*time.Millisecond)

	before := time.Now()
	progress, err := svc.StartSync(context.Background(), "MARA")
	require.NoError(t, err)
	assert.Equal(t, "MARA", progress.Name)
	assert.NotEmpty(t, progress.ID)

	final := waitForSyncEnd(t, svc, progress.ID)
	assert.Equal(t, simulate.StatusCompleted, final.Status)
	assert.Equal(t, final.TotalSteps, final.Step)

	// 状态回写发生在进度回调里,最终一致
	assert.Eventually(t, func() bool {
		var table model.SapTableModel
		if err := db.First(&table, "name = ?", "MARA").Error; err != nil {
			return false
		}
		return table.Status == model.SapStatusSynced && table.LastSyncAt.After(before)
	}, 2*time.Second, 20*time.Millisecond)
}

func TestStartSyncUnknownTable(t *testing.T) {
	svc := service.NewSapService(newSeededDB(t), nil, 50*time.Millisecond)

	_, err := svc.StartSync(context.Background(), "ZZNOPE")
	assert.ErrorIs(t, err, service.ErrSapTableNotFound)

	// 非法表名直接拒绝,不触发查询
	_, err = svc.StartSync(context.Background(), "MARA; DROP TABLE suppliers")
	assert.ErrorIs(t, err, service.ErrSapTableNotFound)
}

func TestCancelSync(t *testing.T) {
	svc := service.NewSapService(newSeededDB(t), nil, 5*time.Second)

	progress, err := svc.StartSync(context.Background(), "EKPO")
	require.NoError(t, err)

	cancelled, err := svc.CancelSync(progress.ID)
	require.NoError(t, err)
	assert.Equal(t, simulate.StatusCancelled, cancelled.Status)

	// 取消是幂等的
	again, err := svc.CancelSync(progress.ID)
	require.NoError(t, err)
	assert.Equal(t, simulate.StatusCancelled, again.Status)
}

func TestGetSyncUnknownID(t *testing.T) {
	svc := service.NewSapService(newSeededDB(t), nil, 50*time.Millisecond)

	_, err := svc.GetSync("not-a-sync")
	assert.ErrorIs(t, err, service.ErrSyncNotFound)

	_, err = svc.CancelSync("not-a-sync")
	assert.ErrorIs(t, err, service.ErrSyncNotFound)
}
