package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyGlucoseDBType string = "GLUCOSE_DB_TYPE"
	EnvKeyGlucoseDbPath string = "GLUCOSE_DB_PATH"

	EnvKeyGlucoseHttpHostPort string = "GLUCOSE_HTTP_HOST_PORT"

	EnvKeyGlucoseDefaultRate  string = "GLUCOSE_DEFAULT_RATE"
	EnvKeyGlucoseDefaultBurst string = "GLUCOSE_DEFAULT_BURST"

	EnvKeyGlucoseSweepInterval string = "GLUCOSE_SWEEP_INTERVAL"
	EnvKeyGlucoseNotifyUrls    string = "GLUCOSE_NOTIFY_URLS"

	EnvKeyGlucoseLookbackDays       string = "GLUCOSE_LOOKBACK_DAYS"
	EnvKeyGlucoseAlertWindowDays    string = "GLUCOSE_ALERT_WINDOW_DAYS"
	EnvKeyGlucoseAlertAbnormalCount string = "GLUCOSE_ALERT_ABNORMAL_COUNT"
	EnvKeyGlucoseMinPatternSupport  string = "GLUCOSE_MIN_PATTERN_SUPPORT"
	EnvKeyGlucoseTrendWindowSize    string = "GLUCOSE_TREND_WINDOW_SIZE"

	LoggerNameGlucoseCore      string = "glucose_core"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerFieldGlucoseCategory string = "category"

	LoggerCategoryReading   string = "reading"
	LoggerCategoryThreshold string = "threshold"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryPattern   string = "pattern"
	LoggerCategoryTrend     string = "trend"
	LoggerCategoryInsight   string = "insight"
	LoggerCategorySweep     string = "sweep"
	LoggerCategoryNotify    string = "notify"
)
