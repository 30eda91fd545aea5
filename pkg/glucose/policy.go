package glucose

import (
	"os"
	"strconv"

	"liyu1981.xyz/glucose-insights-service/pkg/common"
)

// Policy holds the rule parameters of the engine. The values are product
// policy, not derived constants, so they stay tunable per deployment.
type Policy struct {
	// LookbackDays bounds the history used for pattern/trend/insight analysis.
	LookbackDays int
	// AlertWindowDays and AlertAbnormalCount define the window-count alert
	// rule: at least AlertAbnormalCount abnormal readings within the trailing
	// AlertWindowDays fire an alert.
	AlertWindowDays    int
	AlertAbnormalCount int
	// MinPatternSupport is the minimum occurrences of an attribute value
	// before its correlation strength is reported.
	MinPatternSupport int
	// Risk banding on correlation strength (percent).
	HighRiskStrength   float64
	MediumRiskStrength float64
	// DawnAbnormalRate is the morning-bucket abnormal rate (percent) above
	// which the dawn phenomenon is flagged.
	DawnAbnormalRate float64
	// Trend sub-window size, stable deadband (mg/dL) and projection horizon.
	TrendWindowSize     int
	TrendStableBand     float64
	TrendProjectionDays int
	// Clinical fallback cutoffs (mg/dL), applied when no thresholds resolve.
	FastingHighCutoff    float64
	NonFastingHighCutoff float64
	LowCutoff            float64
	PrediabeticMin       float64
	PrediabeticMax       float64
	CriticalLowCutoff    float64
	CriticalHighCutoff   float64
}

func DefaultPolicy() Policy {
	return Policy{
		LookbackDays:         30,
		AlertWindowDays:      7,
		AlertAbnormalCount:   3,
		MinPatternSupport:    3,
		HighRiskStrength:     60,
		MediumRiskStrength:   40,
		DawnAbnormalRate:     40,
		TrendWindowSize:      7,
		TrendStableBand:      5,
		TrendProjectionDays:  30,
		FastingHighCutoff:    126,
		NonFastingHighCutoff: 200,
		LowCutoff:            70,
		PrediabeticMin:       140,
		PrediabeticMax:       200,
		CriticalLowCutoff:    50,
		CriticalHighCutoff:   300,
	}
}

// PolicyFromEnv starts from the defaults and overrides the window and support
// parameters from the environment. Unset or malformed values keep the default.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	overrideInt(common.EnvKeyGlucoseLookbackDays, &p.LookbackDays)
	overrideInt(common.EnvKeyGlucoseAlertWindowDays, &p.AlertWindowDays)
	overrideInt(common.EnvKeyGlucoseAlertAbnormalCount, &p.AlertAbnormalCount)
	overrideInt(common.EnvKeyGlucoseMinPatternSupport, &p.MinPatternSupport)
	overrideInt(common.EnvKeyGlucoseTrendWindowSize, &p.TrendWindowSize)
	return p
}

func overrideInt(envKey string, target *int) {
	raw, found := os.LookupEnv(envKey)
	if !found {
		return
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return
	}
	*target = parsed
}
