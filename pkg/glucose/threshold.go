package glucose

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

// ResolutionError reports a failed threshold lookup. The reading path treats
// it as the trigger for the clinical fallback, never as a hard failure.
type ResolutionError struct {
	PatientID string
	Category  models.ThresholdCategory
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s threshold for patient %s: %v", e.Category, e.PatientID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *Engine) setThreshold(patientID string, input *models.Threshold) error {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryThreshold),
	)

	threshold := models.Threshold{
		PatientID: patientID,
		Category:  input.Category,
		MinValue:  input.MinValue,
		MaxValue:  input.MaxValue,
	}

	logger.Info("Received threshold for patient", zap.Reflect("threshold", threshold))

	// thresholds are append-only; the most recently created row per
	// (patient, category) wins at resolution time
	if err := e.Db.Conn.Create(&threshold).Error; err != nil {
		return err
	}

	logger.Info("Saved threshold for patient", zap.Reflect("threshold", threshold))
	return nil
}

// resolveThreshold returns the effective bounds for one category: most recent
// patient override first, most recent system default second, nil when neither
// exists.
func (e *Engine) resolveThreshold(patientID string, category models.ThresholdCategory) (*models.Bounds, error) {
	scopes := []string{patientID}
	if patientID != models.SystemScopeID {
		scopes = append(scopes, models.SystemScopeID)
	}

	for _, scope := range scopes {
		var threshold models.Threshold
		err := e.Db.Conn.
			Where("patient_id = ? AND category = ?", scope, category).
			Order("created_at DESC, id DESC").
			First(&threshold).Error
		if err == nil {
			return &models.Bounds{Min: threshold.MinValue, Max: threshold.MaxValue}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ResolutionError{PatientID: patientID, Category: category, Err: err}
		}
	}

	return nil, nil
}

func (e *Engine) resolveAll(patientID string) (models.ResolvedThresholds, error) {
	resolved := models.ResolvedThresholds{}
	for _, category := range models.AllThresholdCategories {
		bounds, err := e.resolveThreshold(patientID, category)
		if err != nil {
			return nil, err
		}
		if bounds != nil {
			resolved[category] = *bounds
		}
	}
	return resolved, nil
}

func (e *Engine) getPatientThresholds(patientID string) ([]models.Threshold, error) {
	var thresholds []models.Threshold
	err := e.Db.Conn.
		Where("patient_id = ?", patientID).
		Order("created_at desc, id desc").
		Find(&thresholds).Error
	return thresholds, err
}

type IThresholdImpl struct {
	engine *Engine
}

func (it *IThresholdImpl) SetThreshold(patientID string, input *models.Threshold) error {
	return it.engine.setThreshold(patientID, input)
}

func (it *IThresholdImpl) ResolveThreshold(patientID string, category models.ThresholdCategory) (*models.Bounds, error) {
	return it.engine.resolveThreshold(patientID, category)
}

func (it *IThresholdImpl) ResolveAll(patientID string) (models.ResolvedThresholds, error) {
	return it.engine.resolveAll(patientID)
}

func (it *IThresholdImpl) GetPatientThresholds(patientID string) ([]models.Threshold, error) {
	return it.engine.getPatientThresholds(patientID)
}

func (e *Engine) GetIThreshold() IThreshold {
	return &IThresholdImpl{engine: e}
}
