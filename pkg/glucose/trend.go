package glucose

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

// AnalyzeTrend compares the earliest and latest sub-windows of the history.
// Fewer than two full sub-windows report insufficient-data instead of a
// guessed direction. Resolved thresholds, when present, decide whether the
// projection crosses into an abnormal range.
func AnalyzeTrend(readings []models.Reading, resolved models.ResolvedThresholds, p Policy) models.TrendReport {
	report := models.TrendReport{
		Direction:   models.TrendInsufficientData,
		Urgency:     models.UrgencyLow,
		SampleCount: len(readings),
	}

	k := p.TrendWindowSize
	if k <= 0 || len(readings) < 2*k {
		return report
	}

	ordered := make([]models.Reading, len(readings))
	copy(ordered, readings)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	older := ordered[:k]
	recent := ordered[len(ordered)-k:]

	report.OlderAvg = meanValue(older)
	report.RecentAvg = meanValue(recent)
	report.Delta = report.RecentAvg - report.OlderAvg

	switch {
	case report.Delta > p.TrendStableBand:
		report.Direction = models.TrendIncreasing
	case report.Delta < -p.TrendStableBand:
		report.Direction = models.TrendDecreasing
	default:
		report.Direction = models.TrendStable
	}

	elapsedDays := windowMidpoint(recent).Sub(windowMidpoint(older)).Hours() / 24
	if elapsedDays > 0 {
		report.RatePerDay = report.Delta / elapsedDays
	}
	report.Projection = report.RecentAvg + report.RatePerDay*float64(p.TrendProjectionDays)

	if report.Direction != models.TrendStable {
		report.Urgency = models.UrgencyMedium
	}
	if projectionCrossesAbnormal(report.Projection, resolved, p) {
		report.Urgency = models.UrgencyHigh
	}

	return report
}

func meanValue(readings []models.Reading) float64 {
	if len(readings) == 0 {
		return 0
	}
	sum := common.Reducer(readings, func(acc float64, r models.Reading) float64 {
		return acc + r.Value
	}, 0.0)
	return sum / float64(len(readings))
}

func windowMidpoint(readings []models.Reading) time.Time {
	var total int64
	for _, r := range readings {
		total += r.Timestamp.Unix()
	}
	return time.Unix(total/int64(len(readings)), 0)
}

func projectionCrossesAbnormal(projection float64, resolved models.ResolvedThresholds, p Policy) bool {
	if bounds, ok := resolved[models.CategoryAbnormalHigh]; ok {
		if projection >= bounds.Min {
			return true
		}
	} else if projection > p.NonFastingHighCutoff {
		return true
	}

	if bounds, ok := resolved[models.CategoryAbnormalLow]; ok {
		if projection <= bounds.Max {
			return true
		}
	} else if projection < p.LowCutoff {
		return true
	}

	return false
}

func (e *Engine) analyzePatientTrend(patientID string) (*models.TrendReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryTrend),
	)

	readings, err := e.getPatientReadings(patientID, e.policy().LookbackDays)
	if err != nil {
		return nil, err
	}

	var resolved models.ResolvedThresholds
	if e.Threshold != nil {
		r, rerr := e.Threshold.ResolveAll(patientID)
		if rerr != nil {
			logger.Warn("Threshold resolution failed, projecting against fallback cutoffs", zap.Error(rerr))
		} else {
			resolved = r
		}
	}

	report := AnalyzeTrend(readings, resolved, e.policy())

	logger.Info("Analyzed trend for patient",
		zap.String("patient_id", patientID),
		zap.String("direction", string(report.Direction)),
		zap.Float64("rate_per_day", report.RatePerDay),
		zap.String("urgency", string(report.Urgency)))

	return &report, nil
}

type IAnalysisImpl struct {
	engine *Engine
}

func (ia *IAnalysisImpl) AnalyzePatientPatterns(patientID string) (*models.PatternReport, error) {
	return ia.engine.analyzePatientPatterns(patientID)
}

func (ia *IAnalysisImpl) AnalyzePatientTrend(patientID string) (*models.TrendReport, error) {
	return ia.engine.analyzePatientTrend(patientID)
}

func (e *Engine) GetIAnalysis() IAnalysis {
	return &IAnalysisImpl{engine: e}
}
