package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/glucose-insights-service/pkg/glucose"
)

type RestfulServer struct {
	Server           *gin.Engine
	Glucose          *glucose.Engine
	RateLimiterStore *glucose.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(patientID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(patientID)
	}
}

func (rs *RestfulServer) CheckPatientLimiter(patientID string) bool {
	limiter := rs.GetLimiter(patientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(patientID string, patientRate float64, patientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(patientID, rate.Limit(patientRate), patientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/thresholds/system", rs.PostSystemThreshold)

	patients := rs.Server.Group("/patients/:patient_id")
	{
		patients.POST("/readings", rs.PostReading)
		patients.PUT("/readings/:reading_id", rs.PutReading)
		patients.GET("/readings", rs.GetReadings)
		patients.POST("/thresholds", rs.PostThreshold)
		patients.GET("/thresholds", rs.GetThresholds)
		patients.GET("/alerts", rs.GetAlerts)
		patients.POST("/alerts/:alert_id/resolve", rs.ResolveAlert)
		patients.GET("/patterns", rs.GetPatterns)
		patients.GET("/trends", rs.GetTrend)
		patients.POST("/insights", rs.PostInsight)
		patients.GET("/insights", rs.GetInsights)
		patients.POST("/insights/:insight_id/read", rs.MarkInsightRead)
		patients.POST("/assignment", rs.PostAssignment)
		patients.GET("/assignment", rs.GetAssignment)
		patients.POST("/limiter", rs.PostLimiter)
	}
}
