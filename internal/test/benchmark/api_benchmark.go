package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/app/middleware"
)

// APIBenchmark drives one endpoint with a fixed pool of workers.
type APIBenchmark struct {
	BaseURL string
	Workers int
	Total   int
	Session *http.Cookie
	Client  *http.Client
}

// Sample is the outcome of a single request.
type Sample struct {
	Latency  time.Duration
	Status   int
	CacheHit bool
	Err      error
}

// Report aggregates the samples of one run.
type Report struct {
	Target     string
	Workers    int
	Sent       int
	OK         int
	Failed     int
	CacheHits  int
	Elapsed    time.Duration
	P50        time.Duration
	P95        time.Duration
	Slowest    time.Duration
	Throughput float64
	ByStatus   map[int]int
	Errors     []string
}

// NewAPIBenchmark creates a runner. session may be nil for public endpoints.
func NewAPIBenchmark(baseURL string, workers, total int, session *http.Cookie) *APIBenchmark {
	if workers < 1 {
		workers = 1
	}
	return &APIBenchmark{
		BaseURL: baseURL,
		Workers: workers,
		Total:   total,
		Session: session,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Get runs the benchmark against a GET path.
func (b *APIBenchmark) Get(ctx context.Context, path string) *Report {
	return b.run(ctx, http.MethodGet, path, "")
}

// PostJSON runs the benchmark against a POST path with a raw JSON body.
func (b *APIBenchmark) PostJSON(ctx context.Context, path, body string) *Report {
	return b.run(ctx, http.MethodPost, path, body)
}

func (b *APIBenchmark) run(ctx context.Context, method, path, body string) *Report {
	jobs := make(chan struct{})
	samples := make([]Sample, 0, b.Total)
	var mu sync.Mutex
	var wg sync.WaitGroup

	began := time.Now()
	for w := 0; w < b.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				s := b.do(ctx, method, b.BaseURL+path, body)
				mu.Lock()
				samples = append(samples, s)
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < b.Total; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()

	return summarize(method+" "+path, b.Workers, samples, time.Since(began))
}

func (b *APIBenchmark) do(ctx context.Context, method, url, body string) Sample {
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(body))
	if err != nil {
		return Sample{Err: err}
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.Session != nil {
		req.AddCookie(b.Session)
	}

	start := time.Now()
	resp, err := b.Client.Do(req)
	if err != nil {
		return Sample{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return Sample{
		Latency:  time.Since(start),
		Status:   resp.StatusCode,
		CacheHit: resp.Header.Get(middleware.CacheStatusHeader) == "HIT",
	}
}

func summarize(target string, workers int, samples []Sample, elapsed time.Duration) *Report {
	r := &Report{
		Target:   target,
		Workers:  workers,
		Sent:     len(samples),
		Elapsed:  elapsed,
		ByStatus: make(map[int]int),
	}

	latencies := make([]time.Duration, 0, len(samples))
	for _, s := range samples {
		if s.Err != nil {
			r.Failed++
			r.Errors = append(r.Errors, s.Err.Error())
			continue
		}
		latencies = append(latencies, s.Latency)
		r.ByStatus[s.Status]++
		if s.CacheHit {
			r.CacheHits++
		}
		if s.Status >= 200 && s.Status < 300 {
			r.OK++
		} else {
			r.Failed++
		}
	}

	if len(latencies) > 0 {
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		r.P50 = percentile(latencies, 50)
		r.P95 = percentile(latencies, 95)
		r.Slowest = latencies[len(latencies)-1]
	}
	if elapsed > 0 {
		r.Throughput = float64(r.Sent) / elapsed.Seconds()
	}
	return r
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p int) time.Duration {
	idx := (len(sorted)*p+99)/100 - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// String formats the report for test logs.
func (r *Report) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s workers=%d sent=%d ok=%d failed=%d hits=%d\n",
		r.Target, r.Workers, r.Sent, r.OK, r.Failed, r.CacheHits)
	fmt.Fprintf(&buf, "  elapsed=%s p50=%s p95=%s slowest=%s rps=%.1f\n",
		r.Elapsed, r.P50, r.P95, r.Slowest, r.Throughput)

	codes := make([]int, 0, len(r.ByStatus))
	for code := range r.ByStatus {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(&buf, "  %d x%d\n", code, r.ByStatus[code])
	}
	if n := len(r.Errors); n > 0 {
		fmt.Fprintf(&buf, "  first error (of %d): %s\n", n, r.Errors[0])
	}
	return buf.String()
}
