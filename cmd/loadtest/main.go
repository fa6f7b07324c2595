package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/kitchen/internal/version"
	kitchenv1 "github.com/vladislavdragonenkov/kitchen/proto/kitchen/v1"
)

const (
	statusReady         = "READY"
	statusNoneAvailable = "NONE_AVAILABLE"
)

type loadMode string

const (
	modeSubmit      loadMode = "submit"
	modeSubmitDrain loadMode = "submit-drain"
)

type config struct {
	addr         string
	total        int
	totalSet     bool
	duration     time.Duration
	concurrency  int
	connections  int
	timeout      time.Duration
	drainTimeout time.Duration
	mode         loadMode
	items        []string
	customerTag  string
	verifyIDs    bool
	outputPath   string
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
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

// idCheck — результат проверки выданных идентификаторов:
// под конкурентной нагрузкой они должны быть уникальны и идти без пропусков.
type idCheck struct {
	Submitted   int    `json:"submitted"`
	Unique      int    `json:"unique"`
	Duplicates  int    `json:"duplicates"`
	MinID       uint64 `json:"min_id"`
	MaxID       uint64 `json:"max_id"`
	Contiguous  bool   `json:"contiguous"`
	StartsAtOne bool   `json:"starts_at_one"`
}

func (c idCheck) ok() bool {
	return c.Duplicates == 0 && c.Contiguous
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	SuccessScenarios  int64                   `json:"success_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
	IDs               *idCheck                `json:"ids,omitempty"`
	Drained           int                     `json:"drained"`
	DrainError        string                  `json:"drain_error,omitempty"`
}

type methodStats struct {
	calls     int64
	success   int64
	failed    int64
	codes     map[string]int64
	latencies []float64
}

type collector struct {
	mu      sync.Mutex
	methods map[string]*methodStats
}

func newCollector() *collector {
	return &collector{
		methods: make(map[string]*methodStats),
	}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[method]
	if !ok {
		stats = &methodStats{
			codes: make(map[string]int64),
		}
		c.methods[method] = stats
	}

	stats.calls++
	if code == codes.OK {
		stats.success++
	} else {
		stats.failed++
	}
	stats.codes[code.String()]++
	stats.latencies = append(stats.latencies, float64(latency.Microseconds())/1000.0)
}

func (c *collector) snapshot(name string) (methodReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[name]
	if !ok {
		return methodReport{}, false
	}

	codesCopy := make(map[string]int64, len(stats.codes))
	for code, count := range stats.codes {
		codesCopy[code] = count
	}

	return methodReport{
		Calls:     stats.calls,
		Success:   stats.success,
		Failed:    stats.failed,
		ErrorRate: ratio(stats.failed, stats.calls),
		Codes:     codesCopy,
		LatencyMs: buildLatencySummary(stats.latencies),
	}, true
}

func (c *collector) buildReport(startedAt time.Time, duration time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: duration.Seconds(),
		Methods:         make(map[string]methodReport, len(c.methods)),
	}

	scenarioStats := c.methods["scenario"]
	if scenarioStats != nil {
		result.TotalScenarios = scenarioStats.calls
		result.SuccessScenarios = scenarioStats.success
		result.FailedScenarios = scenarioStats.failed
		result.ErrorRate = ratio(scenarioStats.failed, scenarioStats.calls)
		result.ScenarioLatencyMs = buildLatencySummary(scenarioStats.latencies)
	}
	if duration > 0 {
		result.RPS = float64(result.TotalScenarios) / duration.Seconds()
	}

	for name, stats := range c.methods {
		codesCopy := make(map[string]int64, len(stats.codes))
		for code, count := range stats.codes {
			codesCopy[code] = count
		}
		result.Methods[name] = methodReport{
			Calls:     stats.calls,
			Success:   stats.success,
			Failed:    stats.failed,
			ErrorRate: ratio(stats.failed, stats.calls),
			Codes:     codesCopy,
			LatencyMs: buildLatencySummary(stats.latencies),
		}
	}

	return result
}

func parseConfig() (config, error) {
	var cfg config
	var modeValue string
	var timeoutValue string
	var drainTimeoutValue string
	var durationValue string
	var itemsValue string

	flag.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	flag.IntVar(&cfg.total, "total", 400, "total orders to submit in count mode; in duration mode only used when explicitly set")
	flag.StringVar(&durationValue, "duration", "0s", "optional time-based run duration (e.g. 10m, 15m)")
	flag.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent producers")
	flag.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	flag.StringVar(&timeoutValue, "timeout", "5s", "per-RPC timeout")
	flag.StringVar(&drainTimeoutValue, "drain-timeout", "1m", "overall timeout of the claim/ready drain phase")
	flag.StringVar(&modeValue, "mode", string(modeSubmitDrain), "load mode: submit | submit-drain")
	flag.StringVar(&itemsValue, "items", "Pizza,Soda", "comma separated items of every order")
	flag.StringVar(&cfg.customerTag, "customer-tag", "load", "customer name prefix")
	flag.BoolVar(&cfg.verifyIDs, "verify-ids", true, "fail when assigned order ids are duplicated or have gaps")
	flag.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	flag.Parse()

	timeout, err := time.ParseDuration(strings.TrimSpace(timeoutValue))
	if err != nil {
		return cfg, fmt.Errorf("parse timeout: %w", err)
	}
	cfg.timeout = timeout

	drainTimeout, err := time.ParseDuration(strings.TrimSpace(drainTimeoutValue))
	if err != nil {
		return cfg, fmt.Errorf("parse drain timeout: %w", err)
	}
	cfg.drainTimeout = drainTimeout

	duration, err := time.ParseDuration(strings.TrimSpace(durationValue))
	if err != nil {
		return cfg, fmt.Errorf("parse duration: %w", err)
	}
	cfg.duration = duration

	flag.CommandLine.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode
	cfg.items = parseItems(itemsValue)

	if cfg.duration < 0 {
		return cfg, errors.New("duration must be >= 0")
	}
	if cfg.duration == 0 && cfg.total <= 0 {
		return cfg, errors.New("total must be > 0 when duration is not set")
	}
	if cfg.duration > 0 && cfg.totalSet && cfg.total <= 0 {
		return cfg, errors.New("total must be > 0 when explicitly set with duration")
	}
	if cfg.concurrency <= 0 {
		return cfg, errors.New("concurrency must be > 0")
	}
	if cfg.connections <= 0 {
		return cfg, errors.New("connections must be > 0")
	}
	if cfg.timeout <= 0 {
		return cfg, errors.New("timeout must be > 0")
	}
	if cfg.drainTimeout <= 0 {
		return cfg, errors.New("drain-timeout must be > 0")
	}
	if len(cfg.items) == 0 {
		return cfg, errors.New("items are required")
	}
	if strings.TrimSpace(cfg.customerTag) == "" {
		return cfg, errors.New("customer-tag is required")
	}

	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch loadMode(strings.TrimSpace(value)) {
	case modeSubmit:
		return modeSubmit, nil
	case modeSubmitDrain:
		return modeSubmitDrain, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func parseItems(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]kitchenv1.KitchenServiceClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithUserAgent(version.UserAgent("loadtest")),
		)
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		conns = append(conns, conn)
		clients = append(clients, kitchenv1.NewKitchenServiceClient(conn))
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())
	col := newCollector()
	ids := &idRecorder{}

	jobs := make(chan int, cfg.concurrency*2)
	var failures int64
	var wg sync.WaitGroup

	for workerID := 0; workerID < cfg.concurrency; workerID++ {
		wg.Add(1)
		client := clients[workerID%len(clients)]
		go func(cli kitchenv1.KitchenServiceClient) {
			defer wg.Done()
			for id := range jobs {
				if runErr := runScenario(cli, cfg, id, runID, col, ids); runErr != nil {
					atomic.AddInt64(&failures, 1)
				}
			}
		}(client)
	}

	dispatchJobs(jobs, cfg)
	wg.Wait()

	var drained int
	var drainErr error
	if cfg.mode == modeSubmitDrain {
		drained, drainErr = drainQueue(clients[0], cfg, col)
	}

	duration := time.Since(startedAt)
	result := col.buildReport(startedAt, duration)
	if result.FailedScenarios == 0 && failures > 0 {
		result.FailedScenarios = failures
		result.ErrorRate = ratio(result.FailedScenarios, result.TotalScenarios)
	}
	if cfg.verifyIDs {
		check := checkIDs(ids.snapshot())
		result.IDs = &check
	}
	result.Drained = drained
	if drainErr != nil {
		result.DrainError = drainErr.Error()
	}

	printReport(result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.FailedScenarios > 0 || drainErr != nil || (result.IDs != nil && !result.IDs.ok()) {
		os.Exit(1)
	}
}

func dispatchJobs(jobs chan<- int, cfg config) {
	defer close(jobs)

	if cfg.duration <= 0 {
		for i := 0; i < cfg.total; i++ {
			jobs <- i
		}
		return
	}

	timer := time.NewTimer(cfg.duration)
	defer timer.Stop()

	for i := 0; ; i++ {
		if cfg.totalSet && i >= cfg.total {
			return
		}

		select {
		case <-timer.C:
			return
		case jobs <- i:
		}
	}
}

// idRecorder собирает идентификаторы, выданные сервером.
type idRecorder struct {
	mu  sync.Mutex
	ids []uint64
}

func (r *idRecorder) add(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *idRecorder) snapshot() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.ids)
}

func checkIDs(ids []uint64) idCheck {
	result := idCheck{Submitted: len(ids)}
	if len(ids) == 0 {
		result.Contiguous = true
		return result
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	unique := slices.Compact(slices.Clone(sorted))

	result.Unique = len(unique)
	result.Duplicates = len(sorted) - len(unique)
	result.MinID = unique[0]
	result.MaxID = unique[len(unique)-1]
	result.Contiguous = result.MaxID-result.MinID+1 == uint64(len(unique))
	result.StartsAtOne = result.MinID == 1
	return result
}

func runScenario(
	client kitchenv1.KitchenServiceClient,
	cfg config,
	index int,
	runID string,
	col *collector,
	ids *idRecorder,
) error {
	scenarioStart := time.Now()
	scenarioCode := codes.OK
	defer func() {
		col.record("scenario", time.Since(scenarioStart), scenarioCode)
	}()

	req := &kitchenv1.SubmitOrderRequest{
		Customer: fmt.Sprintf("%s-%s-%d", cfg.customerTag, runID, index),
		Items:    cfg.items,
	}

	resp, err := callSubmitOrder(client, cfg.timeout, req, col)
	if err != nil {
		scenarioCode = grpcCode(err)
		return err
	}
	if resp.GetOrderId() == 0 {
		scenarioCode = codes.Internal
		return errors.New("submit response returned zero order id")
	}
	ids.add(resp.GetOrderId())
	return nil
}

// drainQueue играет роль кухни: забирает заказы по одному и отмечает их READY,
// пока сервер не ответит NONE_AVAILABLE.
func drainQueue(client kitchenv1.KitchenServiceClient, cfg config, col *collector) (int, error) {
	deadline := time.Now().Add(cfg.drainTimeout)
	drained := 0

	for time.Now().Before(deadline) {
		order, err := callClaimNextOrder(client, cfg.timeout, col)
		if err != nil {
			return drained, fmt.Errorf("claim next order: %w", err)
		}
		if order.GetId() == 0 || order.GetStatus() == statusNoneAvailable {
			return drained, nil
		}
		if err := callUpdateStatus(client, cfg.timeout, order.GetId(), statusReady, col); err != nil {
			return drained, fmt.Errorf("mark order #%d ready: %w", order.GetId(), err)
		}
		drained++
	}
	return drained, errors.New("drain timeout exceeded")
}

func callSubmitOrder(
	client kitchenv1.KitchenServiceClient,
	timeout time.Duration,
	req *kitchenv1.SubmitOrderRequest,
	col *collector,
) (*kitchenv1.SubmitOrderResponse, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SubmitOrder(ctx, req)
	col.record("SubmitOrder", time.Since(start), grpcCode(err))
	return resp, err
}

func callClaimNextOrder(
	client kitchenv1.KitchenServiceClient,
	timeout time.Duration,
	col *collector,
) (*kitchenv1.Order, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClaimNextOrder(ctx, &kitchenv1.ClaimNextOrderRequest{})
	col.record("ClaimNextOrder", time.Since(start), grpcCode(err))
	return resp.GetOrder(), err
}

func callUpdateStatus(
	client kitchenv1.KitchenServiceClient,
	timeout time.Duration,
	orderID uint64,
	newStatus string,
	col *collector,
) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := client.UpdateStatus(ctx, &kitchenv1.UpdateStatusRequest{OrderId: orderID, Status: newStatus})
	col.record("UpdateStatus", time.Since(start), grpcCode(err))
	return err
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- path is an explicit CLI output parameter for local load-test reports.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(result report, cfg config) {
	fmt.Println("Load test summary")
	fmt.Printf("mode=%s run=%s total=%d success=%d failed=%d error_rate=%.4f\n",
		cfg.mode,
		runTarget(cfg),
		result.TotalScenarios,
		result.SuccessScenarios,
		result.FailedScenarios,
		result.ErrorRate,
	)
	fmt.Printf("duration=%.2fs rps=%.2f drained=%d\n", result.DurationSeconds, result.RPS, result.Drained)
	if result.IDs != nil {
		fmt.Printf("ids: submitted=%d unique=%d duplicates=%d range=%d..%d contiguous=%t\n",
			result.IDs.Submitted,
			result.IDs.Unique,
			result.IDs.Duplicates,
			result.IDs.MinID,
			result.IDs.MaxID,
			result.IDs.Contiguous,
		)
	}
	if result.DrainError != "" {
		fmt.Printf("drain error: %s\n", result.DrainError)
	}
	fmt.Printf("scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		result.ScenarioLatencyMs.Min,
		result.ScenarioLatencyMs.Avg,
		result.ScenarioLatencyMs.P50,
		result.ScenarioLatencyMs.P95,
		result.ScenarioLatencyMs.P99,
		result.ScenarioLatencyMs.Max,
	)

	methodNames := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		if name == "scenario" {
			continue
		}
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)
	for _, name := range methodNames {
		stats := result.Methods[name]
		fmt.Printf(
			"%s: calls=%d success=%d failed=%d error_rate=%.4f p95=%.2fms\n",
			name,
			stats.Calls,
			stats.Success,
			stats.Failed,
			stats.ErrorRate,
			stats.LatencyMs.P95,
		)
	}
}

func runTarget(cfg config) string {
	if cfg.duration <= 0 {
		return fmt.Sprintf("count:%d", cfg.total)
	}
	if cfg.totalSet {
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	}
	return fmt.Sprintf("duration:%s", cfg.duration)
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
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

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}

func ratio(failed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(failed) / float64(total)
}
