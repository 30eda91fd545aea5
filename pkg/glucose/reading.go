package glucose

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

func (e *Engine) recordReading(patientID string, input *models.Reading) (*models.Reading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryReading),
	)

	reading := models.Reading{
		PatientID:  patientID,
		Timestamp:  input.Timestamp,
		Value:      input.Value,
		Unit:       input.Unit,
		Fasting:    input.Fasting,
		FoodIntake: input.FoodIntake,
		Activity:   input.Activity,
		Symptoms:   input.Symptoms,
		Note:       input.Note,
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}
	if reading.Unit == "" {
		reading.Unit = models.DefaultUnit
	}

	logger.Info("Received reading for patient", zap.Reflect("reading", reading))

	classification := e.classifyAgainstThresholds(patientID, reading.Value, reading.Fasting, logger)
	reading.Status = classification.Status
	reading.Severity = classification.Severity

	if err := e.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Classified and saved reading", zap.Reflect("reading", reading))

	if e.Alert == nil {
		return nil, fmt.Errorf("alert service not available")
	}

	// per-reading alert path; a failed evaluation never fails the ingest
	if _, err := e.Alert.EvaluatePatientAlert(patientID); err != nil {
		logger.Warn("Alert evaluation failed after reading", zap.Error(err))
	}

	return &reading, nil
}

// classifyAgainstThresholds resolves the patient's thresholds and classifies.
// A resolution failure downgrades to the clinical fallback instead of
// blocking classification.
func (e *Engine) classifyAgainstThresholds(patientID string, value float64, fasting bool, logger *zap.Logger) Classification {
	var resolved models.ResolvedThresholds
	if e.Threshold != nil {
		r, err := e.Threshold.ResolveAll(patientID)
		if err != nil {
			logger.Warn("Threshold resolution failed, using clinical fallback", zap.Error(err))
		} else {
			resolved = r
		}
	}
	return Classify(value, fasting, resolved, e.policy())
}

// correctReading is the explicit correction path: it replaces the mutable
// fields and re-triggers classification before persisting.
func (e *Engine) correctReading(readingID uint, input *models.Reading) (*models.Reading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryReading),
	)

	var reading models.Reading
	if err := e.Db.Conn.First(&reading, readingID).Error; err != nil {
		return nil, err
	}

	reading.Value = input.Value
	reading.Fasting = input.Fasting
	reading.FoodIntake = input.FoodIntake
	reading.Activity = input.Activity
	reading.Symptoms = input.Symptoms
	reading.Note = input.Note
	if input.Unit != "" {
		reading.Unit = input.Unit
	}

	classification := e.classifyAgainstThresholds(reading.PatientID, reading.Value, reading.Fasting, logger)
	reading.Status = classification.Status
	reading.Severity = classification.Severity

	if err := e.Db.Conn.Save(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Corrected and re-classified reading", zap.Reflect("reading", reading))

	if e.Alert != nil {
		if _, err := e.Alert.EvaluatePatientAlert(reading.PatientID); err != nil {
			logger.Warn("Alert evaluation failed after correction", zap.Error(err))
		}
	}

	return &reading, nil
}

func (e *Engine) getPatientReadings(patientID string, days int) ([]models.Reading, error) {
	if days <= 0 {
		days = e.policy().LookbackDays
	}
	since := time.Now().AddDate(0, 0, -days)

	var readings []models.Reading
	err := e.Db.Conn.
		Where("patient_id = ? AND timestamp >= ?", patientID, since).
		Order("timestamp asc, id asc").
		Find(&readings).Error
	return readings, err
}

type IReadingImpl struct {
	engine *Engine
}

func (ir *IReadingImpl) RecordReading(patientID string, input *models.Reading) (*models.Reading, error) {
	return ir.engine.recordReading(patientID, input)
}

func (ir *IReadingImpl) CorrectReading(readingID uint, input *models.Reading) (*models.Reading, error) {
	return ir.engine.correctReading(readingID, input)
}

func (ir *IReadingImpl) GetPatientReadings(patientID string, days int) ([]models.Reading, error) {
	return ir.engine.getPatientReadings(patientID, days)
}

func (e *Engine) GetIReading() IReading {
	return &IReadingImpl{engine: e}
}
