package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/glucose-insights-service/pkg/glucose/mocks"
	_ "liyu1981.xyz/glucose-insights-service/pkg/testing"

	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/db"
	"liyu1981.xyz/glucose-insights-service/pkg/glucose"
	"liyu1981.xyz/glucose-insights-service/pkg/models"
)

func setupTestServer() *RestfulServer {
	engine := glucose.Engine{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	engine.WithServices(glucose.ServiceOpts{
		Reading:    engine.GetIReading(),
		Threshold:  engine.GetIThreshold(),
		Alert:      engine.GetIAlert(),
		Analysis:   engine.GetIAnalysis(),
		Insight:    engine.GetIInsight(),
		Assignment: engine.GetIAssignment(),
	})

	rs := &RestfulServer{
		Server:  gin.Default(),
		Glucose: &engine,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = glucose.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func postJSON(rs *RestfulServer, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPostReading(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()

	w := postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
		Timestamp:  time.Now(),
		Value:      150,
		FoodIntake: "rice",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Reading
	err := json.Unmarshal(w.Body.Bytes(), &saved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPrediabetic, saved.Status)
	assert.Equal(t, models.DefaultUnit, saved.Unit)

	// Verify in DB
	var persisted models.Reading
	err = rs.Glucose.Db.Conn.Where("patient_id = ?", patientID).First(&persisted).Error
	assert.NoError(t, err)
	assert.Equal(t, 150.0, persisted.Value)
}

func TestPostReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServer()
		patientID := uuid.NewString()
		// empty payload should be rejected
		w := postJSON(rs, "/patients/"+patientID+"/readings", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer()
		patientID := uuid.NewString()
		// non-positive values should be rejected
		w := postJSON(rs, "/patients/"+patientID+"/readings", map[string]any{"value": -5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer()
		patientID := uuid.NewString()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIReading := mocks.NewMockIReading(ctrl)
		rs.Glucose.Reading = mockIReading
		mockIReading.EXPECT().
			RecordReading(gomock.Eq(patientID), gomock.Any()).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
			Timestamp: time.Now(),
			Value:     150,
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestPutReading(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()

	w := postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
		Timestamp: time.Now(),
		Value:     150,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Reading
	err := json.Unmarshal(w.Body.Bytes(), &saved)
	require.NoError(t, err)

	body, _ := json.Marshal(ReadingRequest{Value: 65})
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/patients/%s/readings/%d", patientID, saved.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	putW := httptest.NewRecorder()
	rs.Server.ServeHTTP(putW, req)

	assert.Equal(t, http.StatusOK, putW.Code)

	var corrected models.Reading
	err = json.Unmarshal(putW.Body.Bytes(), &corrected)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, corrected.ID)
	assert.Equal(t, models.StatusLow, corrected.Status)
}

func TestPutReading_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()

	body, _ := json.Marshal(ReadingRequest{Value: 100})
	req := httptest.NewRequest(http.MethodPut,
		"/patients/"+patientID+"/readings/99999999", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThresholdAffectsClassification(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()

	// a tighter abnormal-high range for this patient
	w := postJSON(rs, "/patients/"+patientID+"/thresholds", ThresholdRequest{
		Category: string(models.CategoryAbnormalHigh),
		MinValue: 130,
		MaxValue: 500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 135 is below the clinical cutoffs but inside the patient's range
	w = postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
		Timestamp: time.Now(),
		Value:     135,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Reading
	err := json.Unmarshal(w.Body.Bytes(), &saved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbnormal, saved.Status)

	// GET lists the configured threshold
	req := httptest.NewRequest("GET", "/patients/"+patientID+"/thresholds", nil)
	getW := httptest.NewRecorder()
	rs.Server.ServeHTTP(getW, req)
	require.Equal(t, http.StatusOK, getW.Code)

	var thresholds []models.Threshold
	err = json.Unmarshal(getW.Body.Bytes(), &thresholds)
	require.NoError(t, err)
	require.Len(t, thresholds, 1)
	assert.Equal(t, models.CategoryAbnormalHigh, thresholds[0].Category)
}

func TestPostThreshold_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	patientID := uuid.NewString()

	// unknown category
	w := postJSON(rs, "/patients/"+patientID+"/thresholds", ThresholdRequest{
		Category: "bogus",
		MinValue: 1,
		MaxValue: 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// inverted bounds
	w = postJSON(rs, "/patients/"+patientID+"/thresholds", ThresholdRequest{
		Category: string(models.CategoryNormal),
		MinValue: 120,
		MaxValue: 80,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := postJSON(rs, "/thresholds/system", ThresholdRequest{
		Category: string(models.CategoryAbnormalLow),
		MinValue: 1,
		MaxValue: 60,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// a fresh patient inherits the system default
	patientID := uuid.NewString()
	w = postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
		Timestamp: time.Now(),
		Value:     55,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Reading
	err := json.Unmarshal(w.Body.Bytes(), &saved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbnormal, saved.Status)
}

func TestAlertFlow(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()

	// three abnormal readings in a row fire one alert
	for range 3 {
		w := postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
			Timestamp: time.Now(),
			Value:     250,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("GET", "/patients/"+patientID+"/alerts", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var alerts []models.Alert
	err := json.Unmarshal(w.Body.Bytes(), &alerts)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "3 abnormal readings in 7 days", alerts[0].Reason)

	resolveW := postJSON(rs, fmt.Sprintf("/patients/%s/alerts/%d/resolve", patientID, alerts[0].ID), nil)
	assert.Equal(t, http.StatusOK, resolveW.Code)

	missingW := postJSON(rs, "/patients/"+patientID+"/alerts/99999999/resolve", nil)
	assert.Equal(t, http.StatusNotFound, missingW.Code)
}

func TestAnalysisAndInsightEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()

	for i := range 4 {
		status := models.StatusHigh
		if i >= 3 {
			status = models.StatusNormal
		}
		reading := models.Reading{
			PatientID:  patientID,
			Timestamp:  time.Now().Add(-time.Duration(i) * time.Hour),
			Value:      220,
			Unit:       models.DefaultUnit,
			FoodIntake: "pasta",
			Status:     status,
		}
		err := rs.Glucose.Db.Conn.Create(&reading).Error
		require.NoError(t, err)
	}

	{
		req := httptest.NewRequest("GET", "/patients/"+patientID+"/patterns", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var report models.PatternReport
		err := json.Unmarshal(w.Body.Bytes(), &report)
		require.NoError(t, err)
		assert.Equal(t, 4, report.TotalReadings)
	}

	{
		req := httptest.NewRequest("GET", "/patients/"+patientID+"/trends", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var report models.TrendReport
		err := json.Unmarshal(w.Body.Bytes(), &report)
		require.NoError(t, err)
		// four readings cannot fill two trend windows
		assert.Equal(t, models.TrendInsufficientData, report.Direction)
	}

	{
		w := postJSON(rs, "/patients/"+patientID+"/insights", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var report models.InsightReport
		err := json.Unmarshal(w.Body.Bytes(), &report)
		require.NoError(t, err)
		assert.False(t, report.NoData)
		require.NotNil(t, report.Saved)

		readW := postJSON(rs, fmt.Sprintf("/patients/%s/insights/%d/read", patientID, report.Saved.ID), nil)
		assert.Equal(t, http.StatusOK, readW.Code)

		req := httptest.NewRequest("GET", "/patients/"+patientID+"/insights", nil)
		getW := httptest.NewRecorder()
		rs.Server.ServeHTTP(getW, req)
		require.Equal(t, http.StatusOK, getW.Code)

		var insights []models.Insight
		err = json.Unmarshal(getW.Body.Bytes(), &insights)
		require.NoError(t, err)
		require.Len(t, insights, 1)
		assert.True(t, insights[0].Read)
	}
}

func TestAssignmentEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	patientID := uuid.NewString()
	specialistID := uuid.NewString()

	w := postJSON(rs, "/patients/"+patientID+"/assignment", AssignmentRequest{SpecialistID: specialistID})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("GET", "/patients/"+patientID+"/assignment", nil)
	getW := httptest.NewRecorder()
	rs.Server.ServeHTTP(getW, req)
	require.Equal(t, http.StatusOK, getW.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"specialist_id":%q}`, specialistID), getW.Body.String())
}

func setupTestServerWithLimiter(limiter *glucose.RateLimiterStore) *RestfulServer {
	engine := glucose.Engine{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	engine.WithServices(glucose.ServiceOpts{
		Reading:    engine.GetIReading(),
		Threshold:  engine.GetIThreshold(),
		Alert:      engine.GetIAlert(),
		Analysis:   engine.GetIAnalysis(),
		Insight:    engine.GetIInsight(),
		Assignment: engine.GetIAssignment(),
	})

	rs := &RestfulServer{
		Server:           gin.Default(),
		Glucose:          &engine,
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(glucose.NewRateLimiterStore(2, 2))

	patientID := uuid.NewString()

	// Simulate 3 requests in quick succession — only 2 should be allowed
	for i := range 3 {
		w := postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
			Timestamp: time.Now(),
			Value:     100,
		})

		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// raising the patient's limit unblocks the next request
	w := postJSON(rs, "/patients/"+patientID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
		Timestamp: time.Now(),
		Value:     100,
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLimiter_BlocksAll(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(glucose.NewRateLimiterStore(0, 0))

	patientID := uuid.NewString()

	// nothing should pass below
	{
		w := postJSON(rs, "/patients/"+patientID+"/readings", ReadingRequest{
			Timestamp: time.Now(),
			Value:     100,
		})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		req := httptest.NewRequest("GET", "/patients/"+patientID+"/alerts", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		req := httptest.NewRequest("GET", "/patients/"+patientID+"/patterns", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(glucose.NewRateLimiterStore(2, 2))

	patientID := uuid.NewString()

	// empty payload should be rejected
	w := postJSON(rs, "/patients/"+patientID+"/limiter", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetLimiter_NoStore(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer() // default without limiter store

	patientID := uuid.NewString()

	// without limiter store setup limiter should be allowed and just return ok (but no effect)
	w := postJSON(rs, "/patients/"+patientID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code)

	// and request to alerts should return empty alerts instead of too many requests
	req := httptest.NewRequest("GET", "/patients/"+patientID+"/alerts", nil)
	getW := httptest.NewRecorder()
	rs.Server.ServeHTTP(getW, req)
	assert.Equal(t, http.StatusOK, getW.Code)
}
