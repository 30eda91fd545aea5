package glucose

import "liyu1981.xyz/glucose-insights-service/pkg/models"

// Classification is the status label plus an auxiliary severity attribute.
type Classification struct {
	Status   models.ReadingStatus
	Severity models.Severity
}

// Classify labels a single value against resolved thresholds, evaluated in
// fixed order: normal, borderline, then the abnormal ranges. A value no
// resolved range covers falls through to the clinical fallback rule, so
// classification never fails for a valid numeric input.
func Classify(value float64, fasting bool, resolved models.ResolvedThresholds, p Policy) Classification {
	if bounds, ok := resolved[models.CategoryNormal]; ok && bounds.Contains(value) {
		return Classification{Status: models.StatusNormal, Severity: severityFor(models.StatusNormal, value, p)}
	}
	if bounds, ok := resolved[models.CategoryBorderline]; ok && bounds.Contains(value) {
		return Classification{Status: models.StatusBorderline, Severity: severityFor(models.StatusBorderline, value, p)}
	}
	lowBounds, hasLow := resolved[models.CategoryAbnormalLow]
	highBounds, hasHigh := resolved[models.CategoryAbnormalHigh]
	if (hasLow && lowBounds.Contains(value)) || (hasHigh && highBounds.Contains(value)) {
		return Classification{Status: models.StatusAbnormal, Severity: severityFor(models.StatusAbnormal, value, p)}
	}

	return clinicalFallback(value, fasting, p)
}

// clinicalFallback applies the documented cutoffs when no threshold covers
// the value.
func clinicalFallback(value float64, fasting bool, p Policy) Classification {
	var status models.ReadingStatus
	switch {
	case fasting && value > p.FastingHighCutoff:
		status = models.StatusHigh
	case !fasting && value > p.NonFastingHighCutoff:
		status = models.StatusHigh
	case value < p.LowCutoff:
		status = models.StatusLow
	case value >= p.PrediabeticMin && value < p.PrediabeticMax:
		status = models.StatusPrediabetic
	default:
		status = models.StatusNormal
	}
	return Classification{Status: status, Severity: severityFor(status, value, p)}
}

// severityFor is value-driven for the critical band and label-driven
// otherwise.
func severityFor(status models.ReadingStatus, value float64, p Policy) models.Severity {
	if value < p.CriticalLowCutoff || value > p.CriticalHighCutoff {
		return models.SeverityCritical
	}
	switch status {
	case models.StatusHigh, models.StatusLow, models.StatusAbnormal:
		return models.SeverityHigh
	case models.StatusBorderline, models.StatusPrediabetic:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}
