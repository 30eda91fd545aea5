package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxPatients int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	patientIDs := make([]string, maxPatients)
	for i := range maxPatients {
		patientIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v patient IDs\n", maxPatients)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxPatients {
		wg.Add(1)
		go func() {
			insertThreshold(patientIDs[i])
			fmt.Printf("\rinserted threshold for patient %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted thresholds for %v patients: used time=%v seconds, throughput=%v action/second\n",
		maxPatients, usedTime.Seconds(), float64(maxPatients)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxPatients {
		wg.Add(1)
		go func() {
			doAction(patientIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v patients: used time=%v seconds, throughput=%v action/second\n",
		maxPatients, usedTime.Seconds(), float64(maxPatients*4)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func postJSON(path string, payload any) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
}

func insertThreshold(patientID string) {
	categories := []string{"normal", "borderline", "abnormal-high"}
	category := categories[rnd.Intn(len(categories))]
	min := rndFloat64(60.0, 120.0, 1)
	max := min + rndFloat64(10.0, 200.0, 1)

	postJSON(fmt.Sprintf("/patients/%s/thresholds", patientID), map[string]any{
		"category":  category,
		"min_value": min,
		"max_value": max,
	})
}

func doAction(patientID string) {
	actions := []func(){
		genPostReadingAction(patientID),
		genGetAlertsAction(patientID),
		genGetPatternsAction(patientID),
		genComposeInsightAction(patientID),
	}
	actionNames := []string{
		"PostReading",
		"GetAlerts",
		"GetPatterns",
		"ComposeInsight",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for patient %v", actionNames[index], patientID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(patientID string) func() {
	return func() {
		foods := []string{"", "rice", "pasta", "salad", "dessert"}
		payload := map[string]any{
			"timestamp":   time.Now().Format(time.RFC3339),
			"value":       rndFloat64(40.0, 320.0, 1),
			"fasting":     flipCoin(),
			"food_intake": foods[rnd.Intn(len(foods))],
		}
		postJSON(fmt.Sprintf("/patients/%s/readings", patientID), payload)
	}
}

func genGetAlertsAction(patientID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/patients/%s/alerts", httpHostPort, patientID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetPatternsAction(patientID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/patients/%s/patterns", httpHostPort, patientID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genComposeInsightAction(patientID string) func() {
	return func() {
		postJSON(fmt.Sprintf("/patients/%s/insights", patientID), map[string]any{})
	}
}
