package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	grpcsvc "github.com/vladislavdragonenkov/cart/internal/service/grpc"
	cartv1 "github.com/vladislavdragonenkov/cart/proto/cart/v1"
)

const scenarioMethod = "scenario"

// cartClient покрывает ту часть CartServiceClient, которую нагружает сценарий.
type cartClient interface {
	AddItem(ctx context.Context, in *cartv1.AddItemRequest, opts ...grpc.CallOption) (*cartv1.AddItemResponse, error)
	RemoveItem(ctx context.Context, in *cartv1.RemoveItemRequest, opts ...grpc.CallOption) (*cartv1.RemoveItemResponse, error)
	GetTotal(ctx context.Context, in *cartv1.GetTotalRequest, opts ...grpc.CallOption) (*cartv1.GetTotalResponse, error)
}

type config struct {
	addr        string
	total       int
	concurrency int
	timeout     time.Duration
	// sharedSession направляет все сценарии в одну сессию, чтобы нагрузить optimistic locking.
	sharedSession bool
	price         float64
	outputPath    string
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Failed    int64            `json:"failed"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	DurationSeconds float64                 `json:"duration_seconds"`
	Scenarios       int64                   `json:"scenarios"`
	Failed          int64                   `json:"failed"`
	RPS             float64                 `json:"rps"`
	Methods         map[string]methodReport `json:"methods"`
}

type methodStats struct {
	calls     int64
	failed    int64
	codes     map[string]int64
	latencies []float64
}

type collector struct {
	mu      sync.Mutex
	methods map[string]*methodStats
}

func newCollector() *collector {
	return &collector{methods: make(map[string]*methodStats)}
}

func (c *collector) record(method string, latency time.Duration, err error) {
	code := status.Code(err)

	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[method]
	if !ok {
		stats = &methodStats{codes: make(map[string]int64)}
		c.methods[method] = stats
	}
	stats.calls++
	if code != codes.OK {
		stats.failed++
	}
	stats.codes[code.String()]++
	stats.latencies = append(stats.latencies, float64(latency.Microseconds())/1000.0)
}

func (c *collector) buildReport(duration time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := report{
		DurationSeconds: duration.Seconds(),
		Methods:         make(map[string]methodReport, len(c.methods)),
	}
	for name, stats := range c.methods {
		codesCopy := make(map[string]int64, len(stats.codes))
		for code, count := range stats.codes {
			codesCopy[code] = count
		}
		result.Methods[name] = methodReport{
			Calls:     stats.calls,
			Failed:    stats.failed,
			Codes:     codesCopy,
			LatencyMs: buildLatencySummary(stats.latencies),
		}
	}
	if scenario, ok := c.methods[scenarioMethod]; ok {
		result.Scenarios = scenario.calls
		result.Failed = scenario.failed
	}
	if duration > 0 {
		result.RPS = float64(result.Scenarios) / duration.Seconds()
	}
	return result
}

func parseConfig(args []string) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	flags.IntVar(&cfg.total, "total", 400, "total scenarios to execute")
	flags.IntVar(&cfg.concurrency, "concurrency", 20, "number of concurrent workers")
	flags.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	flags.BoolVar(&cfg.sharedSession, "shared-session", false, "run every scenario against one session")
	flags.Float64Var(&cfg.price, "price", 9.99, "unit price of the added item")
	flags.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.total <= 0:
		return cfg, errors.New("total must be > 0")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.price <= 0:
		return cfg, errors.New("price must be > 0")
	case strings.TrimSpace(cfg.addr) == "":
		return cfg, errors.New("addr is required")
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	conn, err := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.WithError(err).Fatal("failed to create grpc client connection")
	}
	defer conn.Close()

	startedAt := time.Now()
	col := newCollector()
	runLoad(cartv1.NewCartServiceClient(conn), cfg, fmt.Sprintf("lt-%d", startedAt.UnixNano()), col)
	result := col.buildReport(time.Since(startedAt))

	log.WithFields(log.Fields{
		"scenarios": result.Scenarios,
		"failed":    result.Failed,
		"rps":       fmt.Sprintf("%.1f", result.RPS),
	}).Info("load test finished")
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			log.WithError(err).Fatal("failed to write report")
		}
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}

func runLoad(client cartClient, cfg config, runID string, col *collector) {
	jobs := make(chan int, cfg.concurrency)
	var wg sync.WaitGroup
	for w := 0; w < cfg.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				session := fmt.Sprintf("%s-%d", runID, index)
				if cfg.sharedSession {
					session = runID
				}
				_ = runScenario(client, cfg, session, index, col)
			}
		}()
	}
	for i := 0; i < cfg.total; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// runScenario кладёт две единицы товара, снимает одну и запрашивает итог.
func runScenario(client cartClient, cfg config, session string, index int, col *collector) (err error) {
	start := time.Now()
	defer func() { col.record(scenarioMethod, time.Since(start), err) }()

	itemID := fmt.Sprintf("sku-%d", index%10)
	item := &cartv1.LineItem{Id: itemID, Name: "Load item", Price: proto.Float64(cfg.price), Quantity: proto.Int32(2)}

	if err = call(col, "AddItem", cfg.timeout, session, func(ctx context.Context) error {
		_, callErr := client.AddItem(ctx, &cartv1.AddItemRequest{Item: item})
		return callErr
	}); err != nil {
		return err
	}

	if err = call(col, "RemoveItem", cfg.timeout, session, func(ctx context.Context) error {
		_, callErr := client.RemoveItem(ctx, &cartv1.RemoveItemRequest{Id: itemID, Quantity: proto.Int32(1)})
		return callErr
	}); err != nil {
		return err
	}

	return call(col, "GetTotal", cfg.timeout, session, func(ctx context.Context) error {
		resp, callErr := client.GetTotal(ctx, &cartv1.GetTotalRequest{})
		if callErr == nil && resp.GetTotalDue() < cfg.price {
			return status.Errorf(codes.DataLoss, "total due %.2f is below one item", resp.GetTotalDue())
		}
		return callErr
	})
}

func call(col *collector, method string, timeout time.Duration, session string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, grpcsvc.SessionHeader, session)

	start := time.Now()
	err := fn(ctx)
	col.record(method, time.Since(start), err)
	return err
}

func writeJSONReport(path string, result report) error {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, payload, 0o644)
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}
	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P50: percentile(sorted, 50),
		P95: percentile(sorted, 95),
		P99: percentile(sorted, 99),
	}
}

// percentile интерполирует между соседними значениями отсортированной выборки.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p / 100.0) * float64(len(sorted)-1)
	lower, upper := int(math.Floor(rank)), int(math.Ceil(rank))
	return sorted[lower] + (sorted[upper]-sorted[lower])*(rank-float64(lower))
}
