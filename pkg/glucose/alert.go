package glucose

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

// evaluatePatientAlert runs the window-count rule for one patient. Both the
// per-reading path and the scheduled sweep land here, so the
// unresolved-alert-in-window guard keeps whichever runs second a no-op.
func (e *Engine) evaluatePatientAlert(patientID string) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryAlert),
	)

	p := e.policy()
	now := time.Now()
	windowStart := now.AddDate(0, 0, -p.AlertWindowDays)

	var abnormalCount int64
	err := e.Db.Conn.Model(&models.Reading{}).
		Where("patient_id = ? AND timestamp >= ? AND status NOT IN ?",
			patientID, windowStart, []string{"", string(models.StatusNormal)}).
		Count(&abnormalCount).Error
	if err != nil {
		return nil, err
	}

	if int(abnormalCount) < p.AlertAbnormalCount {
		return nil, nil
	}

	var unresolved int64
	err = e.Db.Conn.Model(&models.Alert{}).
		Where("patient_id = ? AND resolved = ? AND date_sent >= ?", patientID, false, windowStart).
		Count(&unresolved).Error
	if err != nil {
		return nil, err
	}

	if unresolved > 0 {
		logger.Info("Unresolved alert already covers window, skipping",
			zap.String("patient_id", patientID),
			zap.Int64("abnormal_count", abnormalCount))
		return nil, nil
	}

	specialistID := ""
	if e.Assignment != nil {
		id, lookupErr := e.Assignment.GetAssignedSpecialist(patientID)
		if lookupErr != nil {
			logger.Warn("Specialist lookup failed, alerting patient only", zap.Error(lookupErr))
		} else {
			specialistID = id
		}
	}

	alert := models.Alert{
		PatientID:    patientID,
		SpecialistID: specialistID,
		Reason:       fmt.Sprintf("%d abnormal readings in %d days", abnormalCount, p.AlertWindowDays),
		DateSent:     now,
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := e.Db.Conn.Create(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	recipients := []string{patientID}
	if specialistID != "" {
		recipients = append(recipients, specialistID)
	}
	if e.Notifier != nil {
		if err := e.Notifier.Notify(recipients, "Blood Sugar Alert", alert.Reason); err != nil {
			logger.Warn("Alert notification failed", zap.Error(err))
		}
	}

	return &alert, nil
}

// sweepAllPatients applies the alert rule to every patient with readings.
// Safe to run repeatedly; already-alerted conditions are skipped.
func (e *Engine) sweepAllPatients() (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategorySweep),
	)

	var patientIDs []string
	err := e.Db.Conn.Model(&models.Reading{}).
		Distinct("patient_id").
		Pluck("patient_id", &patientIDs).Error
	if err != nil {
		return 0, err
	}

	created := 0
	for _, patientID := range patientIDs {
		alert, evalErr := e.evaluatePatientAlert(patientID)
		if evalErr != nil {
			logger.Warn("Sweep evaluation failed for patient",
				zap.String("patient_id", patientID), zap.Error(evalErr))
			continue
		}
		if alert != nil {
			created++
		}
	}

	logger.Info("Swept patients for alerts",
		zap.Int("patients", len(patientIDs)),
		zap.Int("alerts_created", created))

	return created, nil
}

func (e *Engine) getPatientAlerts(patientID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := e.Db.Conn.
		Where("patient_id = ?", patientID).
		Order("date_sent desc").
		Find(&alerts).Error
	return alerts, err
}

func (e *Engine) resolveAlert(alertID uint) error {
	result := e.Db.Conn.Model(&models.Alert{}).
		Where("id = ?", alertID).
		Update("resolved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type IAlertImpl struct {
	engine *Engine
}

func (ia *IAlertImpl) EvaluatePatientAlert(patientID string) (*models.Alert, error) {
	return ia.engine.evaluatePatientAlert(patientID)
}

func (ia *IAlertImpl) SweepAllPatients() (int, error) {
	return ia.engine.sweepAllPatients()
}

func (ia *IAlertImpl) GetPatientAlerts(patientID string) ([]models.Alert, error) {
	return ia.engine.getPatientAlerts(patientID)
}

func (ia *IAlertImpl) ResolveAlert(alertID uint) error {
	return ia.engine.resolveAlert(alertID)
}

func (e *Engine) GetIAlert() IAlert {
	return &IAlertImpl{engine: e}
}
