package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/practice-partner/backend/internal/api"
	"github.com/practice-partner/backend/internal/domain/questionbank"
	"github.com/practice-partner/backend/internal/grader"
	"github.com/practice-partner/backend/internal/metrics"
	"github.com/practice-partner/backend/internal/service"
	"github.com/practice-partner/backend/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var goQuestions = []string{
	"What is a goroutine?",
	"What is a channel?",
	"What does defer do?",
}

type testServer struct {
	handler http.Handler
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, placeholder string) *testServer {
	t.Helper()

	bank := questionbank.New("Go Developer")
	for _, q := range goQuestions {
		if err := bank.AddQuestion(q); err != nil {
			t.Fatalf("AddQuestion() error: %v", err)
		}
	}
	catalog := questionbank.NewCatalog(bank, questionbank.New("Empty Role"))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	g, s, err := grader.New(context.Background(), grader.Options{Provider: grader.ProviderNone}, discard, m)
	if err != nil {
		t.Fatalf("grader.New() error: %v", err)
	}

	sampler := questionbank.NewSamplerWithRand(catalog, rand.New(rand.NewSource(1)))
	svc := service.NewInterviewService(store.NewMemorySessionStore(), sampler, g, s, m, discard)
	h := api.NewHandler(svc, catalog, placeholder, discard)

	return &testServer{
		handler: api.NewRouter(h, m, reg, discard),
		metrics: m,
	}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func (ts *testServer) start(t *testing.T, body string) map[string]any {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/start", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /start status = %d, body %s", rec.Code, rec.Body.String())
	}
	return decode(t, rec)
}

func TestStartInterview(t *testing.T) {
	ts := newTestServer(t, "")

	out := ts.start(t, `{"role":"Go Developer","num_questions":2}`)

	if id, _ := out["session_id"].(string); id == "" {
		t.Error("expected a session_id")
	}
	if q, _ := out["question"].(string); !slices.Contains(goQuestions, q) {
		t.Errorf("question %q is not from the bank", q)
	}
	if out["remaining"] != float64(1) {
		t.Errorf("expected remaining 1, got %v", out["remaining"])
	}
}

func TestStartInterview_QuestionCount(t *testing.T) {
	tests := []struct {
		name          string
		numQuestions  string
		wantRemaining float64
	}{
		{"absent", ``, 4},
		{"null", `,"num_questions":null`, 4},
		{"too large", `,"num_questions":50`, 4},
		{"zero", `,"num_questions":0`, 4},
		{"negative", `,"num_questions":-3`, 4},
		{"not a number", `,"num_questions":"abc"`, 4},
		{"fraction", `,"num_questions":2.5`, 4},
		{"numeric string", `,"num_questions":"3"`, 2},
		{"minimum", `,"num_questions":1`, 0},
		{"maximum", `,"num_questions":10`, 9},
	}

	ts := newTestServer(t, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ts.start(t, `{"role":"Go Developer"`+tt.numQuestions+`}`)
			if out["remaining"] != tt.wantRemaining {
				t.Errorf("expected remaining %v, got %v", tt.wantRemaining, out["remaining"])
			}
		})
	}
}

func TestStartInterview_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing role", `{"num_questions":3}`, "role is required"},
		{"blank role", `{"role":"   "}`, "role is required"},
		{"unknown role", `{"role":"Astronaut"}`, `no questions available for role "Astronaut"`},
		{"empty bank", `{"role":"Empty Role"}`, `no questions available for role "Empty Role"`},
		{"malformed JSON", `{"role":`, "invalid JSON body"},
		{"empty body", ``, "invalid JSON body"},
	}

	ts := newTestServer(t, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/start", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if got := decode(t, rec)["error"]; got != tt.wantErr {
				t.Errorf("expected error %q, got %q", tt.wantErr, got)
			}
		})
	}
}

func TestSubmitAnswer_UnknownSession(t *testing.T) {
	ts := newTestServer(t, "")

	rec := ts.do(t, http.MethodPost, "/answer", `{"session_id":"nope","user_answer":"hi"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decode(t, rec)["error"]; got != "Invalid session_id" {
		t.Errorf("expected Invalid session_id, got %q", got)
	}
}

func TestSubmitAnswer_MissingSessionID(t *testing.T) {
	ts := newTestServer(t, "")

	rec := ts.do(t, http.MethodPost, "/answer", `{"user_answer":"hi"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decode(t, rec)["error"]; got != "session_id is required" {
		t.Errorf("expected session_id is required, got %q", got)
	}
}

func TestInterview_EndToEnd(t *testing.T) {
	ts := newTestServer(t, "")

	started := ts.start(t, `{"role":"Go Developer","num_questions":2}`)
	id := started["session_id"].(string)

	// First answer: short, graded by the heuristic.
	rec := ts.do(t, http.MethodPost, "/answer", `{"session_id":"`+id+`","user_answer":"idk"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first answer status = %d, body %s", rec.Code, rec.Body.String())
	}
	first := decode(t, rec)
	if first["verdict"] != "Incorrect" {
		t.Errorf("expected Incorrect, got %v", first["verdict"])
	}
	if first["done"] != false {
		t.Errorf("expected done false, got %v", first["done"])
	}
	if first["remaining"] != float64(0) {
		t.Errorf("expected remaining 0, got %v", first["remaining"])
	}
	if q, _ := first["next_question"].(string); !slices.Contains(goQuestions, q) || q == started["question"] {
		t.Errorf("unexpected next_question %q", q)
	}
	if _, ok := first["summary"]; ok {
		t.Error("non-final response should not carry a summary")
	}

	// Second answer: long enough for PartiallyCorrect, and final.
	body := `{"session_id":"` + id + `","user_answer":"It is a lightweight thread managed by the Go runtime."}`
	rec = ts.do(t, http.MethodPost, "/answer", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("final answer status = %d, body %s", rec.Code, rec.Body.String())
	}
	final := decode(t, rec)
	if final["verdict"] != "Partially correct" {
		t.Errorf("expected Partially correct, got %v", final["verdict"])
	}
	if final["done"] != true {
		t.Errorf("expected done true, got %v", final["done"])
	}
	if final["summary"] != grader.DefaultSummary {
		t.Errorf("expected default summary, got %v", final["summary"])
	}
	if _, ok := final["next_question"]; ok {
		t.Error("final response should not carry next_question")
	}

	log, _ := final["log"].([]any)
	if len(log) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(log))
	}
	entry := log[0].(map[string]any)
	if entry["question"] != started["question"] || entry["user_answer"] != "idk" || entry["verdict"] != "Incorrect" {
		t.Errorf("unexpected first log entry: %v", entry)
	}
	for _, key := range []string{"feedback", "correction"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("log entry missing %q", key)
		}
	}

	// The session is gone once the interview completes.
	rec = ts.do(t, http.MethodPost, "/answer", `{"session_id":"`+id+`","user_answer":"again"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 after completion, got %d", rec.Code)
	}
}

func TestListRoles(t *testing.T) {
	ts := newTestServer(t, "")

	rec := ts.do(t, http.MethodGet, "/roles", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out api.RolesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if want := []string{"Go Developer", "Empty Role"}; !slices.Equal(out.Roles, want) {
		t.Errorf("expected %v, got %v", want, out.Roles)
	}
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t, "")

	rec := ts.do(t, http.MethodGet, "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Interview Practice Partner") {
		t.Error("expected the UI page")
	}

	if rec := ts.do(t, http.MethodGet, "/does-not-exist", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown path, got %d", rec.Code)
	}
}

func TestPlaceholder_Default(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "missing.jpg"))

	rec := ts.do(t, http.MethodGet, "/static/placeholder.png", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("expected a PNG body")
	}
}

func TestPlaceholder_ConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	content := []byte("\xff\xd8\xff\xe0 not really a jpeg")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	ts := newTestServer(t, path)

	rec := ts.do(t, http.MethodGet, "/static/placeholder.png", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", ct)
	}
	if !bytes.Equal(rec.Body.Bytes(), content) {
		t.Error("expected the configured file's bytes")
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, "")

	rec := ts.do(t, http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode(t, rec)["status"]; got != "ok" {
		t.Errorf("expected ok, got %v", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, "")

	rec := ts.do(t, http.MethodOptions, "/start", "")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin *, got %q", got)
	}
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t, "")

	ts.start(t, `{"role":"Go Developer","num_questions":1}`)
	ts.do(t, http.MethodPost, "/start", `{"role":"Astronaut"}`)

	if got := testutil.ToFloat64(ts.metrics.RequestsTotal.WithLabelValues("POST /start", "200")); got != 1 {
		t.Errorf("expected 1 successful start, got %v", got)
	}
	if got := testutil.ToFloat64(ts.metrics.RequestsTotal.WithLabelValues("POST /start", "400")); got != 1 {
		t.Errorf("expected 1 rejected start, got %v", got)
	}
	if got := testutil.ToFloat64(ts.metrics.ActiveSessions); got != 1 {
		t.Errorf("expected 1 active session, got %v", got)
	}

	rec := ts.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "interview_started_total 1") {
		t.Error("expected interview_started_total in scrape output")
	}
}
