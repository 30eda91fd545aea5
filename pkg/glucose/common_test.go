package glucose

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/glucose-insights-service/pkg/db"
	"liyu1981.xyz/glucose-insights-service/pkg/glucose/mocks"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockIAlert, useMockINotifier bool) (
	*gomock.Controller,
	*Engine,
	*mocks.MockIAlert,
	*mocks.MockINotifier,
) {
	ctrl := gomock.NewController(t)

	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockINotifier := mocks.NewMockINotifier(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	engine := &Engine{Db: *dbInstance}

	alertService := engine.GetIAlert()
	if useMockIAlert {
		alertService = mockIAlert
	}

	var notifierService INotifier
	if useMockINotifier {
		notifierService = mockINotifier
	}

	engine.WithServices(ServiceOpts{
		Reading:    engine.GetIReading(),
		Threshold:  engine.GetIThreshold(),
		Alert:      alertService,
		Analysis:   engine.GetIAnalysis(),
		Insight:    engine.GetIInsight(),
		Assignment: engine.GetIAssignment(),
		Notifier:   notifierService,
	})

	return ctrl, engine, mockIAlert, mockINotifier
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
