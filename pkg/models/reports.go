package models

// Analysis outputs of the glucose engine. They live next to the entities so
// the generated mocks only ever depend on this package.

// Bounds is a resolved inclusive value range for one threshold category.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b Bounds) Contains(value float64) bool {
	return value >= b.Min && value <= b.Max
}

// ResolvedThresholds maps category to effective bounds. A missing key means
// no threshold of that category exists at any scope.
type ResolvedThresholds map[ThresholdCategory]Bounds

type RiskBand string

const (
	RiskLow    RiskBand = "low"
	RiskMedium RiskBand = "medium"
	RiskHigh   RiskBand = "high"
)

type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"
	BucketAfternoon TimeBucket = "afternoon"
	BucketEvening   TimeBucket = "evening"
	BucketNight     TimeBucket = "night"
)

// PatternRecord is one categorical attribute value correlated against
// abnormal outcomes.
type PatternRecord struct {
	Attribute      string   `json:"attribute"`
	Value          string   `json:"value"`
	TotalCount     int      `json:"total_count"`
	AbnormalCount  int      `json:"abnormal_count"`
	Strength       float64  `json:"correlation_strength"`
	Risk           RiskBand `json:"risk"`
	Recommendation string   `json:"recommendation"`
}

type PatternReport struct {
	TotalReadings  int             `json:"total_readings"`
	Patterns       []PatternRecord `json:"patterns"`
	DawnPhenomenon bool            `json:"dawn_phenomenon"`
}

type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "increasing"
	TrendDecreasing       TrendDirection = "decreasing"
	TrendStable           TrendDirection = "stable"
	TrendInsufficientData TrendDirection = "insufficient-data"
)

type TrendUrgency string

const (
	UrgencyLow    TrendUrgency = "low"
	UrgencyMedium TrendUrgency = "medium"
	UrgencyHigh   TrendUrgency = "high"
)

type TrendReport struct {
	Direction   TrendDirection `json:"direction"`
	OlderAvg    float64        `json:"older_avg"`
	RecentAvg   float64        `json:"recent_avg"`
	Delta       float64        `json:"delta"`
	RatePerDay  float64        `json:"rate_per_day"`
	Projection  float64        `json:"projection"`
	Urgency     TrendUrgency   `json:"urgency"`
	SampleCount int            `json:"sample_count"`
}

type SummaryStats struct {
	TotalReadings   int     `json:"total_readings"`
	Mean            float64 `json:"mean"`
	Median          float64 `json:"median"`
	StdDev          float64 `json:"std_dev"`
	AbnormalPercent float64 `json:"abnormal_percent"`
}

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

// InsightReport is the composed view over stats, patterns and trend. NoData
// is set instead of fabricating zero statistics when the history is empty.
type InsightReport struct {
	PatientID string        `json:"patient_id"`
	NoData    bool          `json:"no_data"`
	Stats     SummaryStats  `json:"stats"`
	Patterns  PatternReport `json:"patterns"`
	Trend     TrendReport   `json:"trend"`
	Risk      RiskLevel     `json:"risk"`
	Saved     *Insight      `json:"saved,omitempty"`
}
