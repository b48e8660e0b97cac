package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/videoclk/wrpll/pkg/config"
	"github.com/videoclk/wrpll/pkg/types"
	"github.com/videoclk/wrpll/pkg/wrpll"
)

func setupTestDaemon(t *testing.T, configJSON string) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	var err error
	conf, err = config.NewFile(path)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}

	return setupRoutes()
}

func doGet(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGetDividers(t *testing.T) {
	h := setupTestDaemon(t, "")

	w := doGet(t, h, "/dividers?clock=148500000")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	var res types.ComputeResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	want := wrpll.Dividers{P: 6, N2: 33, R2: 20}
	if res.Dividers != want {
		t.Errorf("dividers = %+v, want %+v", res.Dividers, want)
	}
	if res.BudgetPPM != 0 || res.BudgetOverridden {
		t.Errorf("budget = %d (overridden=%v), want stock 0", res.BudgetPPM, res.BudgetOverridden)
	}
	if res.RefMHz != 270 || res.VCOMHz != 4455 {
		t.Errorf("ref/vco = %d/%d, want 270/4455", res.RefMHz, res.VCOMHz)
	}
}

func TestGetDividersBadClock(t *testing.T) {
	h := setupTestDaemon(t, "")

	for _, url := range []string{"/dividers", "/dividers?clock=abc", "/dividers?clock=-5", "/dividers?clock=0"} {
		if w := doGet(t, h, url); w.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", url, w.Code)
		}
	}
}

func TestGetDividersBudgetOverride(t *testing.T) {
	h := setupTestDaemon(t, `{"budgetOverrides":[{"clock":148500000,"ppm":3000}]}`)

	w := doGet(t, h, "/dividers?clock=148500000")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	var res types.ComputeResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.BudgetPPM != 3000 || !res.BudgetOverridden {
		t.Errorf("budget = %d (overridden=%v), want 3000 (overridden)", res.BudgetPPM, res.BudgetOverridden)
	}
	if !res.Dividers.Valid() {
		t.Error("override produced invalid dividers")
	}
}

func TestGetBudget(t *testing.T) {
	h := setupTestDaemon(t, "")

	w := doGet(t, h, "/budget?clock=267250000")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	var ppm uint64
	if err := json.Unmarshal(w.Body.Bytes(), &ppm); err != nil {
		t.Fatal(err)
	}
	if ppm != 5000 {
		t.Errorf("budget = %d, want 5000", ppm)
	}
}

func TestGetVerify(t *testing.T) {
	h := setupTestDaemon(t, "")

	w := doGet(t, h, "/verify")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	var report types.VerifyReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Errorf("verification reported %d mismatches", len(report.Mismatches))
	}
	if report.Total == 0 {
		t.Error("verification reported an empty table")
	}
}
