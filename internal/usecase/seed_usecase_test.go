package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/dataset"
	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/infra/apiclient"
	"github.com/sirupsen/logrus"
)

type call struct {
	method string
	path   string
	body   string
}

// fakeAPI records every request and answers from per-route overrides, falling
// back to a well-behaved implementation of the endpoint contract.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []call
	nextID    int64
	overrides map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{overrides: map[string]int{}}
}

// fail makes "METHOD path" (or "POST /init/dictator:<username>") answer with status.
func (f *fakeAPI) fail(route string, status int) {
	f.overrides[route] = status
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: r.Method, path: path, body: string(raw)})

	route := r.Method + " " + path
	if status, ok := f.overrides[route]; ok {
		http.Error(w, "forced failure", status)
		return
	}

	switch {
	case route == "GET /dictators":
		_, _ = w.Write([]byte(`[{"id":1,"name":"Napoleon Bonaparte"}]`))
	case route == "GET /achievements":
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/dictators/"):
		_, _ = w.Write([]byte(`{"id":1,"name":"Napoleon Bonaparte"}`))
	case route == "POST /init/sample-data":
		_, _ = w.Write([]byte(`{"dictatorsCreated":3,"achievementsCreated":6,"totalDictators":3,"totalAchievements":6}`))
	case route == "POST /init/dictator":
		var rec entity.DictatorRecord
		_ = json.Unmarshal(raw, &rec)
		if status, ok := f.overrides["POST /init/dictator:"+rec.Username]; ok {
			http.Error(w, "Dictator with username '"+rec.Username+"' already exists", status)
			return
		}
		f.nextID++
		_ = json.NewEncoder(w).Encode(entity.Dictator{ID: f.nextID, Username: rec.Username, Name: rec.Name})
	case r.Method == http.MethodPost && strings.HasPrefix(path, "/init/dictator/"):
		_, _ = w.Write([]byte(`{"id":1}`))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeAPI) posts() []call {
	var out []call
	for _, c := range f.recorded() {
		if c.method == http.MethodPost {
			out = append(out, c)
		}
	}
	return out
}

func newTestSeeder(t *testing.T, handler http.Handler, data dataset.Dataset) *Seeder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api"})
	return NewSeeder(client, data, log, Options{
		BaseURL:       srv.URL + "/api",
		HealthTimeout: time.Second,
		Verify:        true,
	})
}

func TestRunBulkSuccessSkipsPerRecord(t *testing.T) {
	api := newFakeAPI()
	report, err := newTestSeeder(t, api, dataset.Default()).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Path != entity.PathBulk {
		t.Fatalf("expected bulk path, got %s", report.Path)
	}
	want := entity.SampleDataResult{DictatorsCreated: 3, AchievementsCreated: 6, TotalDictators: 3, TotalAchievements: 6}
	if report.BulkResult == nil || *report.BulkResult != want {
		t.Fatalf("unexpected bulk result %+v", report.BulkResult)
	}
	posts := api.posts()
	if len(posts) != 1 || posts[0].path != "/init/sample-data" {
		t.Fatalf("expected only the bulk POST, got %+v", posts)
	}
	if len(report.Verification) != 3 {
		t.Fatalf("expected verification to run, got %d outcomes", len(report.Verification))
	}
}

func TestRunFallbackCreatesInTableOrder(t *testing.T) {
	api := newFakeAPI()
	api.fail("POST /init/sample-data", http.StatusInternalServerError)

	report, err := newTestSeeder(t, api, dataset.Default()).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Path != entity.PathFallback || report.Bulk.Kind != entity.OutcomeStatusError {
		t.Fatalf("expected fallback after status error, got path=%s bulk=%+v", report.Path, report.Bulk)
	}

	var order []string
	for _, c := range api.posts() {
		if c.path != "/init/dictator" {
			continue
		}
		var rec entity.DictatorRecord
		if err := json.Unmarshal([]byte(c.body), &rec); err != nil {
			t.Fatalf("decode posted dictator: %v", err)
		}
		order = append(order, rec.Username)
	}
	if strings.Join(order, ",") != "napoleon,caesar,genghis" {
		t.Fatalf("unexpected creation order %v", order)
	}
	if report.SeedFailures() != 0 {
		t.Fatalf("expected no seed failures, got %d", report.SeedFailures())
	}
	d, a := report.Created()
	if d != 3 || a != 6 {
		t.Fatalf("expected 3/6 created, got %d/%d", d, a)
	}
}

func TestFallbackAchievementsFollowTheirDictator(t *testing.T) {
	api := newFakeAPI()
	api.fail("POST /init/sample-data", http.StatusInternalServerError)

	if _, err := newTestSeeder(t, api, dataset.Default()).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	created := map[int64]bool{}
	id := int64(0)
	for _, c := range api.posts() {
		switch {
		case c.path == "/init/dictator":
			id++
			created[id] = true
		case strings.HasPrefix(c.path, "/init/dictator/"):
			raw := strings.TrimSuffix(strings.TrimPrefix(c.path, "/init/dictator/"), "/achievement")
			owner, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				t.Fatalf("bad achievement path %q", c.path)
			}
			if !created[owner] {
				t.Fatalf("achievement for dictator %d posted before its dictator was created", owner)
			}
		}
	}
}

func TestFallbackContinuesAfterDictatorFailure(t *testing.T) {
	api := newFakeAPI()
	api.fail("POST /init/sample-data", http.StatusInternalServerError)
	api.fail("POST /init/dictator:napoleon", http.StatusBadRequest)

	report, err := newTestSeeder(t, api, dataset.Default()).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Dictators) != 3 {
		t.Fatalf("expected 3 dictator attempts, got %d", len(report.Dictators))
	}
	first := report.Dictators[0]
	if first.Kind != entity.OutcomeStatusError || first.StatusCode != http.StatusBadRequest || first.Target != "napoleon" {
		t.Fatalf("unexpected napoleon outcome %+v", first)
	}
	if !report.Dictators[1].OK() || !report.Dictators[2].OK() {
		t.Fatalf("expected caesar and genghis to succeed: %+v", report.Dictators)
	}
	if len(report.Achievements) != 4 {
		t.Fatalf("expected 4 achievement attempts, got %d", len(report.Achievements))
	}
	for _, o := range report.Achievements {
		if strings.HasPrefix(o.Target, "napoleon/") {
			t.Fatalf("napoleon achievement must not be attempted: %+v", o)
		}
	}
	if report.SeedFailures() != 1 {
		t.Fatalf("expected 1 seed failure, got %d", report.SeedFailures())
	}
}

func TestFallbackContinuesAfterAchievementFailure(t *testing.T) {
	api := newFakeAPI()
	api.fail("POST /init/sample-data", http.StatusInternalServerError)
	api.fail("POST /init/dictator/1/achievement", http.StatusInternalServerError)

	report, err := newTestSeeder(t, api, dataset.Default()).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Achievements) != 6 {
		t.Fatalf("expected every achievement to be attempted, got %d", len(report.Achievements))
	}
	if report.SeedFailures() != 2 {
		t.Fatalf("expected both napoleon achievements to fail, got %d failures", report.SeedFailures())
	}
}

func TestRunHealthFailureWritesNothing(t *testing.T) {
	cases := map[string]func(*testing.T) http.Handler{
		"status": func(t *testing.T) http.Handler {
			api := newFakeAPI()
			api.fail("GET /dictators", http.StatusServiceUnavailable)
			return api
		},
		"transport": func(t *testing.T) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hj, ok := w.(http.Hijacker)
				if !ok {
					t.Error("hijack unsupported")
					return
				}
				conn, _, err := hj.Hijack()
				if err != nil {
					t.Errorf("hijack: %v", err)
					return
				}
				_ = conn.Close()
			})
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			var posts atomic.Int32
			inner := build(t)
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					posts.Add(1)
				}
				inner.ServeHTTP(w, r)
			})

			report, err := newTestSeeder(t, handler, dataset.Default()).Run(context.Background())
			if !errors.Is(err, ErrServiceUnavailable) {
				t.Fatalf("expected ErrServiceUnavailable, got %v", err)
			}
			if report.Health.OK() || report.Path != entity.PathNone {
				t.Fatalf("unexpected report %+v", report)
			}
			if n := posts.Load(); n != 0 {
				t.Fatalf("expected no POST, got %d", n)
			}
		})
	}
}

func TestProbeHonoursTimeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	seeder := newTestSeeder(t, handler, dataset.Default())
	seeder.opts.HealthTimeout = 50 * time.Millisecond

	out := seeder.Probe(context.Background())
	if out.Kind != entity.OutcomeTransportError {
		t.Fatalf("expected transport error, got %+v", out)
	}
}

func TestProbeIgnoresHealthBody(t *testing.T) {
	api := newFakeAPI()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/api/dictators" {
			_, _ = w.Write([]byte(`{"content":[],"totalElements":0}`))
			return
		}
		api.ServeHTTP(w, r)
	})

	report, err := newTestSeeder(t, handler, dataset.Default()).Run(context.Background())
	if err != nil {
		t.Fatalf("a 200 health response must count as ready: %v", err)
	}
	if !report.Health.OK() || report.Path != entity.PathBulk {
		t.Fatalf("unexpected report health=%+v path=%s", report.Health, report.Path)
	}
}

func TestVerifyFailuresAreReportedOnly(t *testing.T) {
	api := newFakeAPI()
	seeder := newTestSeeder(t, api, dataset.Default())
	api.fail("GET /achievements", http.StatusServiceUnavailable)
	api.fail("GET /dictators/1", http.StatusNotFound)

	results := seeder.Verify(context.Background())
	if len(results) != 3 {
		t.Fatalf("expected 3 verify outcomes, got %d", len(results))
	}
	if !results[0].OK() || results[0].Detail != "found 1 dictators" {
		t.Fatalf("unexpected dictators outcome %+v", results[0])
	}
	if results[1].StatusCode != http.StatusServiceUnavailable || results[2].StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected failures %+v", results[1:])
	}
}

func TestRunVerifyFailureDoesNotFailRun(t *testing.T) {
	api := newFakeAPI()
	var gets int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/api/dictators" {
			gets++
			if gets > 1 {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		api.ServeHTTP(w, r)
	})

	report, err := newTestSeeder(t, handler, dataset.Default()).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.VerifyFailures() != 1 || report.SeedFailures() != 0 {
		t.Fatalf("expected one verify failure only, got verify=%d seed=%d", report.VerifyFailures(), report.SeedFailures())
	}
}

func TestCustomDatasetSkipsBulk(t *testing.T) {
	data, err := dataset.New(dataset.DefaultName, []entity.DictatorRecord{{Username: "qin", Name: "Qin Shi Huang"}}, nil)
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	api := newFakeAPI()

	report, err := newTestSeeder(t, api, data).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Bulk.Kind != entity.OutcomeSkipped || report.Path != entity.PathFallback {
		t.Fatalf("expected skipped bulk, got %+v path=%s", report.Bulk, report.Path)
	}
	for _, c := range api.posts() {
		if c.path == "/init/sample-data" {
			t.Fatal("bulk endpoint must not be called for a custom dataset")
		}
	}
	if len(report.Dictators) != 1 || len(report.Achievements) != 0 {
		t.Fatalf("unexpected outcomes %+v / %+v", report.Dictators, report.Achievements)
	}
}

func TestOutcomeClassification(t *testing.T) {
	if o := outcome("op", "t", nil); o.Kind != entity.OutcomeSuccess {
		t.Fatalf("expected success, got %s", o.Kind)
	}
	statusErr := fmt.Errorf("wrapped: %w", &apiclient.StatusError{Method: "POST", Path: "/x", StatusCode: 409})
	if o := outcome("op", "t", statusErr); o.Kind != entity.OutcomeStatusError || o.StatusCode != 409 || o.Detail != "Conflict" {
		t.Fatalf("expected status error, got %+v", o)
	}
	withBody := &apiclient.StatusError{Method: "POST", Path: "/x", StatusCode: 400, Body: "forced failure"}
	if o := outcome("op", "t", withBody); o.Detail != "forced failure" {
		t.Fatalf("expected the body alone as detail, got %q", o.Detail)
	}
	if o := outcome("op", "t", errors.New("connection refused")); o.Kind != entity.OutcomeTransportError {
		t.Fatalf("expected transport error, got %+v", o)
	}
}
