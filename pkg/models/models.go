package models

import "time"

type ReadingStatus string

const (
	StatusNormal      ReadingStatus = "normal"
	StatusBorderline  ReadingStatus = "borderline"
	StatusPrediabetic ReadingStatus = "prediabetic"
	StatusHigh        ReadingStatus = "high"
	StatusLow         ReadingStatus = "low"
	StatusAbnormal    ReadingStatus = "abnormal"
)

// IsAbnormal reports whether a classified status counts against the alert
// window. Anything other than normal does.
func (s ReadingStatus) IsAbnormal() bool {
	return s != "" && s != StatusNormal
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type ThresholdCategory string

const (
	CategoryNormal       ThresholdCategory = "normal"
	CategoryBorderline   ThresholdCategory = "borderline"
	CategoryAbnormalLow  ThresholdCategory = "abnormal-low"
	CategoryAbnormalHigh ThresholdCategory = "abnormal-high"
)

// AllThresholdCategories lists every category the resolver knows about.
var AllThresholdCategories = []ThresholdCategory{
	CategoryNormal,
	CategoryBorderline,
	CategoryAbnormalLow,
	CategoryAbnormalHigh,
}

// SystemScopeID is the reserved patient id for system-default thresholds.
const SystemScopeID = "system"

const DefaultUnit = "mg/dL"

type Reading struct {
	ID         uint   `gorm:"primaryKey"`
	PatientID  string `gorm:"index"`
	Timestamp  time.Time
	Value      float64
	Unit       string
	Fasting    bool
	FoodIntake string
	Activity   string
	Symptoms   string
	Note       string
	Status     ReadingStatus `gorm:"type:varchar(16);check:status IN ('','normal','borderline','prediabetic','high','low','abnormal')"`
	Severity   Severity      `gorm:"type:varchar(16)"`
}

type Threshold struct {
	ID        uint              `gorm:"primaryKey"`
	PatientID string            `gorm:"index"`
	Category  ThresholdCategory `gorm:"type:varchar(16);check:category IN ('normal','borderline','abnormal-low','abnormal-high')"`
	MinValue  float64
	MaxValue  float64
	CreatedAt time.Time
}

type Insight struct {
	ID         uint   `gorm:"primaryKey"`
	PatientID  string `gorm:"index"`
	Pattern    string
	Suggestion string
	Confidence float64
	CreatedAt  time.Time
	Read       bool
}

type Alert struct {
	ID           uint   `gorm:"primaryKey"`
	PatientID    string `gorm:"index"`
	SpecialistID string
	Reason       string
	DateSent     time.Time
	Resolved     bool
}

// Assignment links a patient to the specialist who oversees them.
type Assignment struct {
	PatientID    string `gorm:"primaryKey"`
	SpecialistID string
}
