package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
	"liyu1981.xyz/glucose-insights-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ReadingRequest struct {
	Timestamp  time.Time `json:"timestamp"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Fasting    bool      `json:"fasting"`
	FoodIntake string    `json:"food_intake"`
	Activity   string    `json:"activity"`
	Symptoms   string    `json:"symptoms"`
	Note       string    `json:"note"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Timestamp":  z.Time(),
	"Value":      z.Float64().Required().GT(0),
	"Unit":       z.String(),
	"Fasting":    z.Bool(),
	"FoodIntake": z.String(),
	"Activity":   z.String(),
	"Symptoms":   z.String(),
	"Note":       z.String(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest

	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reading, err := rs.Glucose.Reading.RecordReading(patientID, &models.Reading{
		Timestamp:  req.Timestamp,
		Value:      req.Value,
		Unit:       req.Unit,
		Fasting:    req.Fasting,
		FoodIntake: req.FoodIntake,
		Activity:   req.Activity,
		Symptoms:   req.Symptoms,
		Note:       req.Note,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

func (rs *RestfulServer) PutReading(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	readingID, err := strconv.ParseUint(c.Param("reading_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading id"})
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reading, err := rs.Glucose.Reading.CorrectReading(uint(readingID), &models.Reading{
		Value:      req.Value,
		Unit:       req.Unit,
		Fasting:    req.Fasting,
		FoodIntake: req.FoodIntake,
		Activity:   req.Activity,
		Symptoms:   req.Symptoms,
		Note:       req.Note,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	days, _ := strconv.Atoi(c.Query("days"))

	readings, err := rs.Glucose.Reading.GetPatientReadings(patientID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

type ThresholdRequest struct {
	Category string  `json:"category"`
	MinValue float64 `json:"min_value"`
	MaxValue float64 `json:"max_value"`
}

var thresholdRequestSchema = z.Struct(z.Shape{
	"Category": z.String().Required().OneOf([]string{
		string(models.CategoryNormal),
		string(models.CategoryBorderline),
		string(models.CategoryAbnormalLow),
		string(models.CategoryAbnormalHigh),
	}),
	"MinValue": z.Float64().Required(),
	"MaxValue": z.Float64().Required(),
})

func (rs *RestfulServer) postThresholdFor(c *gin.Context, patientID string) {
	var req ThresholdRequest
	if err := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.MinValue > req.MaxValue {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_value must not exceed max_value"})
		return
	}

	err := rs.Glucose.Threshold.SetThreshold(patientID, &models.Threshold{
		Category: models.ThresholdCategory(req.Category),
		MinValue: req.MinValue,
		MaxValue: req.MaxValue,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) PostThreshold(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.postThresholdFor(c, patientID)
}

// PostSystemThreshold sets a system-wide default; not subject to the
// per-patient limiter.
func (rs *RestfulServer) PostSystemThreshold(c *gin.Context) {
	rs.postThresholdFor(c, models.SystemScopeID)
}

func (rs *RestfulServer) GetThresholds(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	thresholds, err := rs.Glucose.Threshold.GetPatientThresholds(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, thresholds)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var alerts []models.Alert
	var err error
	if alerts, err = rs.Glucose.Alert.GetPatientAlerts(patientID); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	if err := rs.Glucose.Alert.ResolveAlert(uint(alertID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetPatterns(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	report, err := rs.Glucose.Analysis.AnalyzePatientPatterns(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) GetTrend(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	report, err := rs.Glucose.Analysis.AnalyzePatientTrend(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) PostInsight(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	report, err := rs.Glucose.Insight.ComposeInsight(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) GetInsights(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	insights, err := rs.Glucose.Insight.GetPatientInsights(patientID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

func (rs *RestfulServer) MarkInsightRead(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	insightID, err := strconv.ParseUint(c.Param("insight_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid insight id"})
		return
	}

	if err := rs.Glucose.Insight.MarkInsightRead(uint(insightID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type AssignmentRequest struct {
	SpecialistID string `json:"specialist_id"`
}

var assignmentRequestSchema = z.Struct(z.Shape{
	"SpecialistID": z.String().Required(),
})

func (rs *RestfulServer) PostAssignment(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req AssignmentRequest
	if err := assignmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Glucose.Assignment.AssignSpecialist(patientID, req.SpecialistID); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetAssignment(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	specialistID, err := rs.Glucose.Assignment.GetAssignedSpecialist(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"specialist_id": specialistID})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	patientID := c.Param("patient_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(patientID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
