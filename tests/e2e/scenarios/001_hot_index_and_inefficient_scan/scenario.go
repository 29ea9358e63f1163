package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalRecords = 12000 // Total number of operation records to generate
	mixSize      = 20    // Records are generated in repeating groups of this size
)

var (
	baseTime = time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC)
	table    = "orders"
	hotIndex = "GSI1"
)

// ### End - fixed configs

type operationRecord struct {
	Operation               string   `json:"operation"`
	ResourceName            string   `json:"resourceName"`
	IndexName               string   `json:"indexName,omitempty"`
	AccessPattern           string   `json:"accessPattern,omitempty"`
	Timestamp               int64    `json:"timestamp"`
	LatencyMs               float64  `json:"latencyMs"`
	ConsumedReadUnits       *float64 `json:"consumedReadUnits,omitempty"`
	ConsumedWriteUnits      *float64 `json:"consumedWriteUnits,omitempty"`
	ItemCount               int      `json:"itemCount"`
	ScannedCount            *int     `json:"scannedCount,omitempty"`
	UsedProjection          *bool    `json:"usedProjection,omitempty"`
	ProjectedAttributeCount *int     `json:"projectedAttributeCount,omitempty"`
	PartitionKeyValue       string   `json:"partitionKeyValue,omitempty"`
}

type recommendation struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// main runs the e2e scenario: 001_hot_index_and_inefficient_scan
//
// This scenario sends a deterministic mix of operation records to the API and checks the
// analysis built from them.
//
// What it tests:
//   - Operation ingestion via POST /operations, in parallel batches
//   - Asynchronous delivery of queued records into the collector
//   - Stats aggregation via GET /stats
//   - Recommendations via GET /recommendations
//   - Buffer reset via DELETE /operations
//
// Expected results:
//   - Every batch is accepted (202) and every record reaches the collector
//   - Stats report 7200 query, 2400 get, 1800 put and 600 scan operations
//   - An error-severity hot partition recommendation for orders:GSI1 (60% of traffic)
//   - A warning-severity scan efficiency recommendation for orders (5% efficiency)
//   - The buffer is empty after reset
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the dynamo-insights API server
	itemsPerBatch := 200               // Number of records per batch
	parallel := 4                      // Number of concurrent batch requests to send
	deliveryTimeout := 30 * time.Second

	if totalRecords%itemsPerBatch != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: TOTAL_RECORDS (%d) must be divisible by ITEMS_PER_BATCH (%d)\n", totalRecords, itemsPerBatch)
		os.Exit(1)
	}
	batchCount := totalRecords / itemsPerBatch

	fmt.Println("Starting e2e scenario: 001_hot_index_and_inefficient_scan")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_RECORDS: %d\n", totalRecords)
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	// Start from an empty buffer
	if _, err := doRequest(client, http.MethodDelete, baseURL+"/operations", nil); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to reset buffer: %v\n", err)
		os.Exit(1)
	}

	// Generate all records
	records := generateAllRecords()
	fmt.Printf("Generated %d records\n", len(records))

	// Create worker pool for parallel batch sending
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64

	for batchIndex := 0; batchIndex < batchCount; batchIndex++ {
		batch := records[batchIndex*itemsPerBatch : (batchIndex+1)*itemsPerBatch]
		jsonData, err := json.Marshal(batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for batch %d: %v\n", batchIndex, err)
			os.Exit(1)
		}

		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(index int, body []byte) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			status, err := doRequest(client, http.MethodPost, baseURL+"/operations", body)
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("batch %d: %w", index, err))
				mu.Unlock()
				return
			}
			if status == http.StatusAccepted {
				atomic.AddInt64(&acceptedRequest, 1)
			}
		}(batchIndex, jsonData)
	}
	wg.Wait()

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Accepted batches: %d/%d\n", atomic.LoadInt64(&acceptedRequest), batchCount)

	// Wait for the consumers to deliver every record
	if err := waitForDelivery(client, baseURL, totalRecords, deliveryTimeout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("All %d records delivered to the collector\n", totalRecords)

	failures := 0
	failures += checkStats(client, baseURL)
	failures += checkRecommendations(client, baseURL)

	// Reset and verify the buffer is empty
	if _, err := doRequest(client, http.MethodDelete, baseURL+"/operations", nil); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to reset buffer: %v\n", err)
		os.Exit(1)
	}
	if count, err := bufferedCount(client, baseURL); err != nil || count != 0 {
		fmt.Fprintf(os.Stderr, "FAIL: buffer not empty after reset (count=%d, err=%v)\n", count, err)
		failures++
	}

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "Scenario failed with %d failed checks\n", failures)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// generateAllRecords builds the record mix: per group of 20, 12 index queries, 4 gets,
// 3 puts and 1 scan.
func generateAllRecords() []operationRecord {
	records := make([]operationRecord, 0, totalRecords)
	for i := 0; i < totalRecords; i++ {
		ts := baseTime.Add(time.Duration(i) * 20 * time.Millisecond).UnixMilli()
		slot := i % mixSize

		var r operationRecord
		switch {
		case slot < 12:
			r = operationRecord{
				Operation:               "query",
				IndexName:               hotIndex,
				AccessPattern:           "ordersByCustomer",
				LatencyMs:               12,
				ConsumedReadUnits:       ptr(2.5),
				ItemCount:               10,
				ScannedCount:            ptr(12),
				UsedProjection:          ptr(true),
				ProjectedAttributeCount: ptr(3),
			}
		case slot < 16:
			r = operationRecord{
				Operation:         "get",
				AccessPattern:     "orderById",
				LatencyMs:         4,
				ConsumedReadUnits: ptr(0.5),
				ItemCount:         1,
				UsedProjection:    ptr(false),
				PartitionKeyValue: fmt.Sprintf("order#%d", i),
			}
		case slot < 19:
			r = operationRecord{
				Operation:          "put",
				LatencyMs:          6,
				ConsumedWriteUnits: ptr(1.0),
				ItemCount:          1,
				PartitionKeyValue:  fmt.Sprintf("order#%d", i),
			}
		default:
			r = operationRecord{
				Operation:         "scan",
				LatencyMs:         150,
				ConsumedReadUnits: ptr(25.0),
				ItemCount:         5,
				ScannedCount:      ptr(100),
				UsedProjection:    ptr(false),
			}
		}
		r.ResourceName = table
		r.Timestamp = ts
		records = append(records, r)
	}
	return records
}

func checkStats(client *http.Client, baseURL string) int {
	var stats struct {
		Operations map[string]struct {
			Count int `json:"count"`
		} `json:"operations"`
	}
	if err := getJSON(client, baseURL+"/stats", &stats); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: GET /stats: %v\n", err)
		return 1
	}

	want := map[string]int{"query": 7200, "get": 2400, "put": 1800, "scan": 600}
	failures := 0
	for op, count := range want {
		if got := stats.Operations[op].Count; got != count {
			fmt.Fprintf(os.Stderr, "FAIL: stats.operations.%s.count = %d, want %d\n", op, got, count)
			failures++
		}
	}
	if failures == 0 {
		fmt.Println("PASS: stats")
	}
	return failures
}

func checkRecommendations(client *http.Client, baseURL string) int {
	var body struct {
		Recommendations []recommendation `json:"recommendations"`
	}
	if err := getJSON(client, baseURL+"/recommendations", &body); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: GET /recommendations: %v\n", err)
		return 1
	}

	checks := []struct {
		name     string
		severity string
		category string
		contains string
	}{
		{name: "hot index", severity: "error", category: "hot-partition", contains: "orders:GSI1"},
		{name: "inefficient scan", severity: "warning", category: "performance", contains: "scan on orders"},
	}

	failures := 0
	for _, check := range checks {
		found := false
		for _, rec := range body.Recommendations {
			if rec.Severity == check.severity && rec.Category == check.category && strings.Contains(rec.Message, check.contains) {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "FAIL: no %s %s recommendation mentioning %q\n", check.severity, check.category, check.contains)
			failures++
			continue
		}
		fmt.Printf("PASS: %s\n", check.name)
	}
	return failures
}

func waitForDelivery(client *http.Client, baseURL string, want int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		count, err := bufferedCount(client, baseURL)
		if err != nil {
			return err
		}
		if count == want {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("only %d of %d records delivered after %s", count, want, timeout)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func bufferedCount(client *http.Client, baseURL string) (int, error) {
	var body struct {
		Operations []json.RawMessage `json:"operations"`
	}
	if err := getJSON(client, baseURL+"/operations", &body); err != nil {
		return 0, err
	}
	return len(body.Operations), nil
}

func getJSON(client *http.Client, url string, v any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func doRequest(client *http.Client, method, url string, body []byte) (int, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func ptr[T any](v T) *T {
	return &v
}
