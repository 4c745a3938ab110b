package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/service"
	"github.com/DigitalBullGO/indicatorems/internal/wizard"
)

func TestStartSessionReturnsFlowDefinition(t *testing.T) {
	svc := service.NewWizardService()

	view, err := svc.StartSession(wizard.FlowExcelDashboard)
	require.NoError(t, err)

	assert.Equal(t, wizard.FlowExcelDashboard, view.Flow.ID)
	assert.Len(t, view.Flow.Steps, 4)
	assert.Equal(t, 1, view.State.CurrentStep)
	assert.Equal(t, 1, view.State.FurthestStep)
	assert.False(t, view.State.Finished)
}

func TestStartSessionUnknownFlow(t *testing.T) {
	svc := service.NewWizardService()

	_, err := svc.StartSession("teleport")
	assert.ErrorIs(t, err, wizard.ErrUnknownFlow)
}

func TestWizardFullWalkthrough(t *testing.T) {
	svc := service.NewWizardService()

	view, err := svc.StartSession(wizard.FlowSapBridge)
	require.NoError(t, err)
	id := view.State.ID

	// 未完成当前步骤时不能前进
	_, err = svc.Advance(id)
	assert.ErrorIs(t, err, wizard.ErrStepIncomplete)

	for step := 1; step < 4; step++ {
		_, err = svc.CompleteStep(id)
		require.NoError(t, err)
		view, err = svc.Advance(id)
		require.NoError(t, err)
		assert.Equal(t, step+1, view.State.CurrentStep)
	}

	view, err = svc.CompleteStep(id)
	require.NoError(t, err)
	assert.True(t, view.State.Finished)
}

func TestWizardBackKeepsUnlocked(t *testing.T) {
	svc := service.NewWizardService()

	view, err := svc.StartSession(wizard.FlowExcelDashboard)
	require.NoError(t, err)
	id := view.State.ID

	_, err = svc.CompleteStep(id)
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)

	view, err = svc.Back(id)
	require.NoError(t, err)
	assert.Equal(t, 1, view.State.CurrentStep)
	assert.Equal(t, 2, view.State.FurthestStep)
}

func TestWizardReset(t *testing.T) {
	svc := service.NewWizardService()

	view, err := svc.StartSession(wizard.FlowExcelDashboard)
	require.NoError(t, err)
	id := view.State.ID

	_, err = svc.CompleteStep(id)
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)

	view, err = svc.Reset(id)
	require.NoError(t, err)
	assert.Equal(t, 1, view.State.CurrentStep)
	assert.Equal(t, 1, view.State.FurthestStep)
}

func TestWizardSessionNotFound(t *testing.T) {
	svc := service.NewWizardService()

	for _, call := range []func(string) (*service.WizardSessionView, error){
		svc.GetSession, svc.Advance, svc.Back, svc.Reset, svc.CompleteStep,
	} {
		_, err := call("missing-session")
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	}
}
