package glucose

import (
	"sort"

	"go.uber.org/zap"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

const (
	AttributeFood      = "food"
	AttributeActivity  = "activity"
	AttributeSymptom   = "symptom"
	AttributeTimeOfDay = "time-of-day"
)

// BucketForHour maps an hour of day onto the fixed time buckets:
// morning 06-11, afternoon 12-17, evening 18-21, night 22-05.
func BucketForHour(hour int) models.TimeBucket {
	switch {
	case hour >= 6 && hour <= 11:
		return models.BucketMorning
	case hour >= 12 && hour <= 17:
		return models.BucketAfternoon
	case hour >= 18 && hour <= 21:
		return models.BucketEvening
	default:
		return models.BucketNight
	}
}

func RiskBandFor(strength float64, p Policy) models.RiskBand {
	switch {
	case strength > p.HighRiskStrength:
		return models.RiskHigh
	case strength >= p.MediumRiskStrength:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

type patternTally struct {
	total    int
	abnormal int
}

// AnalyzePatterns computes the correlation strength of each categorical
// attribute value against abnormal outcomes. Attribute values below the
// minimum support are excluded so single observations do not produce noise.
// Ranking is deterministic: strength desc, total desc, value asc,
// attribute asc.
func AnalyzePatterns(readings []models.Reading, p Policy) models.PatternReport {
	report := models.PatternReport{TotalReadings: len(readings)}

	tallies := map[string]map[string]*patternTally{}
	bump := func(attribute, value string, abnormal bool) {
		values := tallies[attribute]
		if values == nil {
			values = map[string]*patternTally{}
			tallies[attribute] = values
		}
		tally := values[value]
		if tally == nil {
			tally = &patternTally{}
			values[value] = tally
		}
		tally.total++
		if abnormal {
			tally.abnormal++
		}
	}

	for _, reading := range readings {
		abnormal := reading.Status.IsAbnormal()
		if reading.FoodIntake != "" {
			bump(AttributeFood, reading.FoodIntake, abnormal)
		}
		if reading.Activity != "" {
			bump(AttributeActivity, reading.Activity, abnormal)
		}
		if reading.Symptoms != "" {
			bump(AttributeSymptom, reading.Symptoms, abnormal)
		}
		bump(AttributeTimeOfDay, string(BucketForHour(reading.Timestamp.Hour())), abnormal)
	}

	for attribute, values := range tallies {
		for value, tally := range values {
			if tally.total < p.MinPatternSupport {
				continue
			}
			strength := 100 * float64(tally.abnormal) / float64(tally.total)
			risk := RiskBandFor(strength, p)
			report.Patterns = append(report.Patterns, models.PatternRecord{
				Attribute:      attribute,
				Value:          value,
				TotalCount:     tally.total,
				AbnormalCount:  tally.abnormal,
				Strength:       strength,
				Risk:           risk,
				Recommendation: recommendationFor(attribute, risk),
			})
		}
	}

	sort.Slice(report.Patterns, func(i, j int) bool {
		a, b := report.Patterns[i], report.Patterns[j]
		if a.Strength != b.Strength {
			return a.Strength > b.Strength
		}
		if a.TotalCount != b.TotalCount {
			return a.TotalCount > b.TotalCount
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Attribute < b.Attribute
	})

	report.DawnPhenomenon = detectDawnPhenomenon(tallies[AttributeTimeOfDay], p)

	return report
}

// detectDawnPhenomenon flags a morning bucket whose abnormal rate exceeds the
// configured rate and every other bucket's rate. The morning bucket must meet
// minimum support first.
func detectDawnPhenomenon(buckets map[string]*patternTally, p Policy) bool {
	morning := buckets[string(models.BucketMorning)]
	if morning == nil || morning.total < p.MinPatternSupport {
		return false
	}

	morningRate := 100 * float64(morning.abnormal) / float64(morning.total)
	if morningRate <= p.DawnAbnormalRate {
		return false
	}

	for bucket, tally := range buckets {
		if bucket == string(models.BucketMorning) || tally.total == 0 {
			continue
		}
		rate := 100 * float64(tally.abnormal) / float64(tally.total)
		if morningRate <= rate {
			return false
		}
	}
	return true
}

func recommendationFor(attribute string, risk models.RiskBand) string {
	if risk == models.RiskLow {
		return "No action needed; keep monitoring."
	}

	switch attribute {
	case AttributeFood:
		if risk == models.RiskHigh {
			return "Readings after this food are frequently abnormal; consider adjusting portion size or timing."
		}
		return "This food shows some correlation with abnormal readings; watch portions."
	case AttributeActivity:
		if risk == models.RiskHigh {
			return "Readings around this activity are frequently abnormal; discuss the routine with your care team."
		}
		return "This activity shows some correlation with abnormal readings; monitor before and after."
	case AttributeSymptom:
		if risk == models.RiskHigh {
			return "This symptom often coincides with abnormal readings; report it to your care team."
		}
		return "This symptom sometimes coincides with abnormal readings; keep logging it."
	case AttributeTimeOfDay:
		if risk == models.RiskHigh {
			return "Readings in this time window are frequently abnormal; consider testing more often then."
		}
		return "Readings in this time window show some correlation with abnormal results."
	default:
		return "Keep monitoring this pattern."
	}
}

func (e *Engine) analyzePatientPatterns(patientID string) (*models.PatternReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryPattern),
	)

	readings, err := e.getPatientReadings(patientID, e.policy().LookbackDays)
	if err != nil {
		return nil, err
	}

	report := AnalyzePatterns(readings, e.policy())

	logger.Info("Analyzed patterns for patient",
		zap.String("patient_id", patientID),
		zap.Int("readings", report.TotalReadings),
		zap.Int("patterns", len(report.Patterns)),
		zap.Bool("dawn_phenomenon", report.DawnPhenomenon))

	return &report, nil
}
