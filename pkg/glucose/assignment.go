package glucose

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

func (e *Engine) assignSpecialist(patientID string, specialistID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryAlert),
	)

	assignment := models.Assignment{
		PatientID:    patientID,
		SpecialistID: specialistID,
	}

	err := e.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}},
		UpdateAll: true,
	}).Create(&assignment).Error

	if err == nil {
		logger.Info("Assigned specialist to patient", zap.Reflect("assignment", assignment))
	}

	return err
}

// getAssignedSpecialist returns the empty string when no specialist is
// assigned; that is not an error.
func (e *Engine) getAssignedSpecialist(patientID string) (string, error) {
	var assignment models.Assignment
	err := e.Db.Conn.First(&assignment, "patient_id = ?", patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return assignment.SpecialistID, nil
}

type IAssignmentImpl struct {
	engine *Engine
}

func (ia *IAssignmentImpl) AssignSpecialist(patientID string, specialistID string) error {
	return ia.engine.assignSpecialist(patientID, specialistID)
}

func (ia *IAssignmentImpl) GetAssignedSpecialist(patientID string) (string, error) {
	return ia.engine.getAssignedSpecialist(patientID)
}

func (e *Engine) GetIAssignment() IAssignment {
	return &IAssignmentImpl{engine: e}
}
