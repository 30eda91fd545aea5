package glucose

import (
	"liyu1981.xyz/glucose-insights-service/pkg/db"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

type IReading interface {
	RecordReading(patientID string, input *models.Reading) (*models.Reading, error)
	CorrectReading(readingID uint, input *models.Reading) (*models.Reading, error)
	GetPatientReadings(patientID string, days int) ([]models.Reading, error)
}

type IThreshold interface {
	SetThreshold(patientID string, input *models.Threshold) error
	ResolveThreshold(patientID string, category models.ThresholdCategory) (*models.Bounds, error)
	ResolveAll(patientID string) (models.ResolvedThresholds, error)
	GetPatientThresholds(patientID string) ([]models.Threshold, error)
}

type IAlert interface {
	EvaluatePatientAlert(patientID string) (*models.Alert, error)
	SweepAllPatients() (int, error)
	GetPatientAlerts(patientID string) ([]models.Alert, error)
	ResolveAlert(alertID uint) error
}

type IAnalysis interface {
	AnalyzePatientPatterns(patientID string) (*models.PatternReport, error)
	AnalyzePatientTrend(patientID string) (*models.TrendReport, error)
}

type IInsight interface {
	ComposeInsight(patientID string) (*models.InsightReport, error)
	GetPatientInsights(patientID string, limit int) ([]models.Insight, error)
	MarkInsightRead(insightID uint) error
}

type IAssignment interface {
	AssignSpecialist(patientID string, specialistID string) error
	GetAssignedSpecialist(patientID string) (string, error)
}

// INotifier is the delivery collaborator. The engine only decides whether an
// alert fires and who to tell; transport lives behind this interface.
type INotifier interface {
	Notify(recipientIDs []string, subject string, body string) error
}

type Engine struct {
	Db     db.DB
	Policy Policy

	Reading    IReading
	Threshold  IThreshold
	Alert      IAlert
	Analysis   IAnalysis
	Insight    IInsight
	Assignment IAssignment
	Notifier   INotifier
}

type ServiceOpts struct {
	Reading    IReading
	Threshold  IThreshold
	Alert      IAlert
	Analysis   IAnalysis
	Insight    IInsight
	Assignment IAssignment
	Notifier   INotifier
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Reading != nil {
		e.Reading = opts.Reading
	}
	if opts.Threshold != nil {
		e.Threshold = opts.Threshold
	}
	if opts.Alert != nil {
		e.Alert = opts.Alert
	}
	if opts.Analysis != nil {
		e.Analysis = opts.Analysis
	}
	if opts.Insight != nil {
		e.Insight = opts.Insight
	}
	if opts.Assignment != nil {
		e.Assignment = opts.Assignment
	}
	if opts.Notifier != nil {
		e.Notifier = opts.Notifier
	}
	return e
}

// policy falls back to the defaults when the engine was constructed without
// an explicit policy.
func (e *Engine) policy() Policy {
	if e.Policy == (Policy{}) {
		return DefaultPolicy()
	}
	return e.Policy
}
