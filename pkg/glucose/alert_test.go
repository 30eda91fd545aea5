package glucose

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
	_ "liyu1981.xyz/glucose-insights-service/pkg/testing"
)

func seedAbnormalReading(t *testing.T, engine *Engine, patientID string, age time.Duration) {
	t.Helper()
	reading := models.Reading{
		PatientID: patientID,
		Timestamp: time.Now().Add(-age),
		Value:     250,
		Unit:      models.DefaultUnit,
		Status:    models.StatusHigh,
		Severity:  models.SeverityHigh,
	}
	err := engine.Db.Conn.Create(&reading).Error
	require.NoError(t, err)
}

func TestEvaluatePatientAlert_WindowRule(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, mockINotifier := GetMockEngineWithMemorySqliteDialector(t, false, true)
	defer ctrl.Finish()

	patientID := uuid.NewString()
	specialistID := uuid.NewString()

	err := engine.Assignment.AssignSpecialist(patientID, specialistID)
	require.NoError(t, err)

	// two abnormal readings are below the count
	seedAbnormalReading(t, engine, patientID, 2*time.Hour)
	seedAbnormalReading(t, engine, patientID, time.Hour)

	alert, err := engine.Alert.EvaluatePatientAlert(patientID)
	assert.NoError(t, err)
	assert.Nil(t, alert)

	// the third fires exactly one notification, patient and specialist both
	mockINotifier.
		EXPECT().
		Notify(gomock.Eq([]string{patientID, specialistID}), gomock.Eq("Blood Sugar Alert"), gomock.Any()).
		Times(1).
		Return(nil)

	seedAbnormalReading(t, engine, patientID, time.Minute)

	alert, err = engine.Alert.EvaluatePatientAlert(patientID)
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "3 abnormal readings in 7 days", alert.Reason)
	assert.Equal(t, specialistID, alert.SpecialistID)
	assert.False(t, alert.Resolved)

	// the unresolved alert suppresses re-firing for the same window
	alert, err = engine.Alert.EvaluatePatientAlert(patientID)
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestEvaluatePatientAlert_NormalReadingsDontCount(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	patientID := uuid.NewString()

	for i := range 3 {
		reading := models.Reading{
			PatientID: patientID,
			Timestamp: time.Now().Add(-time.Duration(i) * time.Hour),
			Value:     95,
			Unit:      models.DefaultUnit,
			Status:    models.StatusNormal,
			Severity:  models.SeverityLow,
		}
		err := engine.Db.Conn.Create(&reading).Error
		require.NoError(t, err)
	}

	alert, err := engine.Alert.EvaluatePatientAlert(patientID)
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestEvaluatePatientAlert_OldReadingsOutsideWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	patientID := uuid.NewString()

	for range 3 {
		seedAbnormalReading(t, engine, patientID, 10*24*time.Hour)
	}

	alert, err := engine.Alert.EvaluatePatientAlert(patientID)
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestResolveAlert_ReopensWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	patientID := uuid.NewString()

	for range 3 {
		seedAbnormalReading(t, engine, patientID, time.Hour)
	}

	alert, err := engine.Alert.EvaluatePatientAlert(patientID)
	require.NoError(t, err)
	require.NotNil(t, alert)

	err = engine.Alert.ResolveAlert(alert.ID)
	assert.NoError(t, err)

	// resolving clears the suppression; the still-abnormal window re-fires
	reopened, err := engine.Alert.EvaluatePatientAlert(patientID)
	require.NoError(t, err)
	require.NotNil(t, reopened)
	assert.NotEqual(t, alert.ID, reopened.ID)
}

func TestResolveAlert_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	err := engine.Alert.ResolveAlert(99999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSweepAllPatients_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	patientID := uuid.NewString()

	for range 3 {
		seedAbnormalReading(t, engine, patientID, time.Hour)
	}

	_, err := engine.Alert.SweepAllPatients()
	require.NoError(t, err)

	alerts, err := engine.Alert.GetPatientAlerts(patientID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	// a second pass finds the unresolved alert and skips the patient
	_, err = engine.Alert.SweepAllPatients()
	require.NoError(t, err)

	alerts, err = engine.Alert.GetPatientAlerts(patientID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}
