package glucose

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

// Summarize computes the basic statistics over a reading history.
func Summarize(readings []models.Reading) models.SummaryStats {
	stats := models.SummaryStats{TotalReadings: len(readings)}
	if len(readings) == 0 {
		return stats
	}

	values := common.Mapper(readings, func(r models.Reading) float64 { return r.Value })

	var sum float64
	abnormal := 0
	for i, r := range readings {
		sum += values[i]
		if r.Status.IsAbnormal() {
			abnormal++
		}
	}
	stats.Mean = sum / float64(len(values))
	stats.AbnormalPercent = 100 * float64(abnormal) / float64(len(readings))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		stats.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		stats.Median = sorted[mid]
	}

	var variance float64
	for _, v := range values {
		variance += (v - stats.Mean) * (v - stats.Mean)
	}
	stats.StdDev = math.Sqrt(variance / float64(len(values)))

	return stats
}

func riskRollup(abnormalPercent float64, urgency models.TrendUrgency) models.RiskLevel {
	switch {
	case abnormalPercent > 50 || urgency == models.UrgencyHigh:
		return models.RiskLevelHigh
	case abnormalPercent > 25 || urgency == models.UrgencyMedium:
		return models.RiskLevelModerate
	default:
		return models.RiskLevelLow
	}
}

// composeInsight aggregates stats, patterns and trend into one persisted
// insight. An empty history yields an explicit no-data report and nothing is
// written.
func (e *Engine) composeInsight(patientID string) (*models.InsightReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryInsight),
	)

	p := e.policy()

	readings, err := e.getPatientReadings(patientID, p.LookbackDays)
	if err != nil {
		return nil, err
	}

	if len(readings) == 0 {
		logger.Info("No readings for patient, nothing to compose", zap.String("patient_id", patientID))
		return &models.InsightReport{PatientID: patientID, NoData: true}, nil
	}

	stats := Summarize(readings)
	patterns := AnalyzePatterns(readings, p)

	var resolved models.ResolvedThresholds
	if e.Threshold != nil {
		r, rerr := e.Threshold.ResolveAll(patientID)
		if rerr != nil {
			logger.Warn("Threshold resolution failed, projecting against fallback cutoffs", zap.Error(rerr))
		} else {
			resolved = r
		}
	}
	trend := AnalyzeTrend(readings, resolved, p)

	patternText, suggestion, confidence := describeInsight(stats, patterns, trend)

	insight := models.Insight{
		PatientID:  patientID,
		Pattern:    patternText,
		Suggestion: suggestion,
		Confidence: confidence,
		CreatedAt:  time.Now(),
	}

	if err := e.Db.Conn.Create(&insight).Error; err != nil {
		return nil, err
	}

	logger.Info("Insight saved", zap.Reflect("insight", insight))

	return &models.InsightReport{
		PatientID: patientID,
		Stats:     stats,
		Patterns:  patterns,
		Trend:     trend,
		Risk:      riskRollup(stats.AbnormalPercent, trend.Urgency),
		Saved:     &insight,
	}, nil
}

func describeInsight(stats models.SummaryStats, patterns models.PatternReport, trend models.TrendReport) (pattern, suggestion string, confidence float64) {
	if len(patterns.Patterns) > 0 {
		top := patterns.Patterns[0]
		pattern = fmt.Sprintf("%s %q abnormal in %.0f%% of %d readings",
			top.Attribute, top.Value, top.Strength, top.TotalCount)
		suggestion = top.Recommendation
		confidence = top.Strength / 100
	} else {
		pattern = fmt.Sprintf("Average %.1f %s over %d readings, trend %s",
			stats.Mean, models.DefaultUnit, stats.TotalReadings, trend.Direction)
		suggestion = "Keep logging readings to unlock pattern analysis."
		confidence = 0.5
	}

	if patterns.DawnPhenomenon {
		pattern += "; morning readings show a dawn phenomenon"
	}

	confidence = math.Max(0, math.Min(1, confidence))
	return pattern, suggestion, confidence
}

func (e *Engine) getPatientInsights(patientID string, limit int) ([]models.Insight, error) {
	if limit <= 0 {
		limit = 10
	}
	var insights []models.Insight
	err := e.Db.Conn.
		Where("patient_id = ?", patientID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&insights).Error
	return insights, err
}

func (e *Engine) markInsightRead(insightID uint) error {
	result := e.Db.Conn.Model(&models.Insight{}).
		Where("id = ?", insightID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type IInsightImpl struct {
	engine *Engine
}

func (ii *IInsightImpl) ComposeInsight(patientID string) (*models.InsightReport, error) {
	return ii.engine.composeInsight(patientID)
}

func (ii *IInsightImpl) GetPatientInsights(patientID string, limit int) ([]models.Insight, error) {
	return ii.engine.getPatientInsights(patientID, limit)
}

func (ii *IInsightImpl) MarkInsightRead(insightID uint) error {
	return ii.engine.markInsightRead(insightID)
}

func (e *Engine) GetIInsight() IInsight {
	return &IInsightImpl{engine: e}
}
