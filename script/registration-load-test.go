package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Roster mirrors the roster response fields the check needs
type Roster struct {
	MaxPlayers int               `json:"maxPlayers"`
	Registered []json.RawMessage `json:"registered"`
	Waitlist   []json.RawMessage `json:"waitlist"`
}

// Result is the outcome of one request
type Result struct {
	Action       string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// Stats aggregates results per action and status
type Stats struct {
	mu            sync.Mutex
	responseTimes []time.Duration
	byStatus      map[string]int
	errors        map[string]int
}

func (s *Stats) add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	if r.Err != nil {
		s.errors[r.Err.Error()]++
		return
	}
	s.byStatus[fmt.Sprintf("%s %d", r.Action, r.StatusCode)]++
}

// Hammers one event with concurrent sign-ups and cancellations from many
// members, then checks the roster never exceeds max players.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	eventID := flag.Uint64("event", 1, "Event to register for")
	userIDsStr := flag.String("u", "2,3,4,5,6,7,8,9", "Comma-separated member IDs")
	concurrency := flag.Int("c", 8, "Number of concurrent workers")
	totalRequests := flag.Int("n", 200, "Total number of requests")
	cancelRatio := flag.Float64("cancel", 0.3, "Share of requests that cancel instead of register")
	flag.Parse()

	var userIDs []uint64
	for _, s := range strings.Split(*userIDsStr, ",") {
		if id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		fmt.Println("no valid member IDs")
		os.Exit(2)
	}

	fmt.Printf("Event %d, %d members, %d workers, %d requests\n", *eventID, len(userIDs), *concurrency, *totalRequests)

	stats := &Stats{byStatus: make(map[string]int), errors: make(map[string]int)}
	client := &http.Client{Timeout: 10 * time.Second}
	jobs := make(chan struct{}, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				userID := userIDs[rand.Intn(len(userIDs))]
				if rand.Float64() < *cancelRatio {
					stats.add(send(client, "cancel", http.MethodDelete,
						fmt.Sprintf("%s/api/v1/events/%d/registrations/%d", *baseURL, *eventID, userID), userID))
				} else {
					stats.add(send(client, "register", http.MethodPost,
						fmt.Sprintf("%s/api/v1/events/%d/registrations", *baseURL, *eventID), userID))
				}
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	printStats(stats, *totalRequests, elapsed)

	roster, err := fetchRoster(client, *baseURL, *eventID, userIDs[0])
	if err != nil {
		fmt.Printf("Failed to fetch roster: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nRoster: %d registered, %d waitlisted, max %d\n", len(roster.Registered), len(roster.Waitlist), roster.MaxPlayers)
	if len(roster.Registered) > roster.MaxPlayers {
		fmt.Println("FAIL: registered count exceeds max players")
		os.Exit(1)
	}
	if len(roster.Registered) < roster.MaxPlayers && len(roster.Waitlist) > 0 {
		fmt.Println("FAIL: free seats while members wait")
		os.Exit(1)
	}
	fmt.Println("OK: roster is consistent")
}

func send(client *http.Client, action, method, url string, actorID uint64) Result {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return Result{Action: action, Err: err}
	}
	req.Header.Set("X-Actor-ID", strconv.FormatUint(actorID, 10))
	req.Header.Set("X-Actor-Role", "user")

	start := time.Now()
	resp, err := client.Do(req)
	result := Result{Action: action, ResponseTime: time.Since(start), Err: err}
	if err == nil {
		result.StatusCode = resp.StatusCode
		resp.Body.Close()
	}
	return result
}

func fetchRoster(client *http.Client, baseURL string, eventID, actorID uint64) (*Roster, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/v1/events/%d/roster", baseURL, eventID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Actor-ID", strconv.FormatUint(actorID, 10))

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var roster Roster
	if err := json.NewDecoder(resp.Body).Decode(&roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

func printStats(stats *Stats, total int, elapsed time.Duration) {
	times := append([]time.Duration(nil), stats.responseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:  %d in %.2fs (%.1f req/s)\n", total, elapsed.Seconds(), float64(total)/elapsed.Seconds())
	fmt.Printf("P50: %v  P90: %v  P99: %v\n", percentile(50), percentile(90), percentile(99))

	keys := make([]string, 0, len(stats.byStatus))
	for k := range stats.byStatus {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-16s %d\n", k, stats.byStatus[k])
	}
	for msg, n := range stats.errors {
		fmt.Printf("error %-40s %d\n", msg, n)
	}
}
