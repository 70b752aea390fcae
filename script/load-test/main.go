package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// transactionRequest is the POST /transactions payload
type transactionRequest struct {
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	WalletID string `json:"walletId"`
	Note     string `json:"note"`
}

type wallet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// scenario is one kind of transaction the workers pick from
type scenario struct {
	Name   string
	Type   string
	Amount string
}

type result struct {
	Scenario     scenario
	WalletID     string
	Success      bool
	ResponseTime time.Duration
	Err          error
}

// stats aggregates results. Applied holds the net balance change each
// wallet should show once every successful request is persisted.
type stats struct {
	mu            sync.Mutex
	total         int
	successful    int
	failed        int
	responseTimes []time.Duration
	errorCounts   map[string]int
	scenarioStats map[string]int
	applied       map[string]decimal.Decimal
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	s.scenarioStats[r.Scenario.Name]++
	if !r.Success {
		s.failed++
		msg := "unknown"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		s.errorCounts[msg]++
		return
	}

	s.successful++
	amount := decimal.RequireFromString(r.Scenario.Amount)
	if r.Scenario.Type == "expense" {
		amount = amount.Neg()
	}
	s.applied[r.WalletID] = s.applied[r.WalletID].Add(amount)
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	before, err := fetchWallets(client, *baseURL)
	if err != nil || len(before) == 0 {
		fmt.Fprintf(os.Stderr, "no wallets to load test against (prime them with POST /user/wallets): %v\n", err)
		os.Exit(1)
	}

	scenarios := []scenario{
		{"Income Small", "income", "10.00"},
		{"Income Large", "income", "250.75"},
		{"Expense Small", "expense", "4.20"},
		{"Expense Medium", "expense", "33.33"},
		{"Expense Large", "expense", "120.00"},
	}

	fmt.Printf("Load testing %s across %d wallet(s)\n", *baseURL, len(before))
	fmt.Printf("Concurrency: %d goroutines, total requests: %d\n", *concurrency, *totalRequests)

	st := &stats{
		total:         *totalRequests,
		responseTimes: make([]time.Duration, 0, *totalRequests),
		errorCounts:   make(map[string]int),
		scenarioStats: make(map[string]int),
		applied:       make(map[string]decimal.Decimal),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, before, scenarios, jobs, st)
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	after, err := fetchWallets(client, *baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch wallets after run: %v\n", err)
		os.Exit(1)
	}

	printResults(st, elapsed)
	if !reconcile(before, after, st.applied) {
		os.Exit(2)
	}
}

func worker(client *http.Client, baseURL string, delayMs int, wallets []wallet,
	scenarios []scenario, jobs <-chan int, st *stats) {
	for job := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		sc := scenarios[rand.Intn(len(scenarios))]
		w := wallets[rand.Intn(len(wallets))]

		body, err := json.Marshal(transactionRequest{
			Amount:   sc.Amount,
			Type:     sc.Type,
			WalletID: w.ID,
			Note:     fmt.Sprintf("load test %d", job),
		})
		if err != nil {
			st.record(result{Scenario: sc, WalletID: w.ID, Err: err})
			continue
		}

		began := time.Now()
		resp, err := client.Post(baseURL+"/transactions", "application/json", bytes.NewReader(body))
		r := result{Scenario: sc, WalletID: w.ID, ResponseTime: time.Since(began), Err: err}
		if err == nil {
			r.Success = resp.StatusCode == http.StatusCreated
			if !r.Success {
				r.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			_ = resp.Body.Close()
		}
		st.record(r)
	}
}

func fetchWallets(client *http.Client, baseURL string) ([]wallet, error) {
	resp, err := client.Get(baseURL + "/wallets")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var wallets []wallet
	if err := json.NewDecoder(resp.Body).Decode(&wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// reconcile checks that every wallet moved by exactly the sum of the
// transactions that were acknowledged
func reconcile(before, after []wallet, applied map[string]decimal.Decimal) bool {
	final := make(map[string]decimal.Decimal, len(after))
	for _, w := range after {
		final[w.ID] = decimal.RequireFromString(w.Balance)
	}

	fmt.Println("\n----------------- BALANCES -----------------")
	ok := true
	for _, w := range before {
		expected := decimal.RequireFromString(w.Balance).Add(applied[w.ID])
		got := final[w.ID]
		status := "OK"
		if !expected.Equal(got) {
			status = "MISMATCH"
			ok = false
		}
		fmt.Printf("%-10s expected %12s got %12s  %s\n", w.Name, expected.StringFixed(2), got.StringFixed(2), status)
	}
	return ok
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(st *stats, elapsed time.Duration) {
	sorted := make([]time.Duration, len(st.responseTimes))
	copy(sorted, st.responseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", st.total)
	fmt.Printf("Successful Requests: %d\n", st.successful)
	fmt.Printf("Failed Requests:     %d\n", st.failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(st.successful)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range st.scenarioStats {
		fmt.Printf("%-15s: %d requests\n", name, count)
	}

	if st.failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range st.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
