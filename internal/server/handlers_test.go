package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/liftkit/internal/plates"
	"github.com/claude/liftkit/internal/settings"
	"github.com/claude/liftkit/internal/storage"
	"github.com/claude/liftkit/internal/units"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	inv := plates.NewInventory(units.Kilograms)
	saver := storage.NewSaver(db, log)
	t.Cleanup(saver.Wait)
	mgr := settings.NewManager(settings.Defaults(), inv, saver, log)
	return New(inv, mgr, db, log)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

// TestResolveEndpoint exercises a forward resolve through the API: 100 kg
// on the default 20 kg bar loads 25+15 per side.
func TestResolveEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/plates/resolve", `{"target":100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp resolveResponse
	decodeBody(t, rec, &resp)
	if resp.Infeasible {
		t.Fatalf("unexpected infeasible: %q", resp.Reason)
	}
	if resp.Loadout == nil || resp.Loadout.Achieved != 100 {
		t.Fatalf("loadout = %+v, want achieved 100", resp.Loadout)
	}
	if len(resp.Loadout.Plates) != 2 || resp.Loadout.Plates[0].Weight != 25 {
		t.Errorf("plates = %v, want [25x1 15x1]", resp.Loadout.Plates)
	}
}

// TestResolveEndpointInfeasible verifies a target at the bar weight returns
// the infeasible variant, not an HTTP error.
func TestResolveEndpointInfeasible(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/plates/resolve", `{"target":20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp resolveResponse
	decodeBody(t, rec, &resp)
	if !resp.Infeasible || resp.Loadout != nil {
		t.Errorf("resp = %+v, want infeasible with no loadout", resp)
	}
	if resp.Reason == "" {
		t.Error("missing human-readable reason")
	}
}

// TestResolveEndpointBadInput covers malformed and non-positive requests.
func TestResolveEndpointBadInput(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{`{`, `{"target":-5}`, `{"target":0}`, `{"bogus":1}`} {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/plates/resolve", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

// TestReverseEndpoint verifies reverse mode: three 20s and a 5 per side on
// the default 20 kg bar totals 150.
func TestReverseEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/plates/reverse",
		`{"plates":[{"weight":20,"count":3},{"weight":5,"count":1}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]float64
	decodeBody(t, rec, &resp)
	if resp["total"] != 150 {
		t.Errorf("total = %v, want 150", resp["total"])
	}
}

// TestInventoryEndpoints walks add, count update, remove, and reset.
func TestInventoryEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/plates/inventory", `{"weight":7.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: status = %d, want 201", rec.Code)
	}
	// duplicate
	rec = doJSON(t, s, http.MethodPost, "/api/v1/plates/inventory", `{"weight":7.5}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate add: status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/v1/plates/inventory/7.5", `{"available":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set count: status = %d, want 200", rec.Code)
	}
	var st plates.State
	decodeBody(t, rec, &st)
	found := false
	for _, d := range st.Denominations {
		if d.Weight == 7.5 && d.Available == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("denominations = %v, want 7.5 with 3 available", st.Denominations)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/v1/plates/inventory/99", `{"available":3}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("set count on absent: status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/plates/inventory/7.5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/plates/inventory/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: status = %d, want 200", rec.Code)
	}
	decodeBody(t, rec, &st)
	if len(st.Denominations) != 7 || st.BarWeight != 20 {
		t.Errorf("reset state = %+v, want stock kg set", st)
	}
}

// TestBarEndpoints covers the active bar weight and custom bars.
func TestBarEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/v1/plates/bar", `{"weight":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad bar: status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, s, http.MethodPut, "/api/v1/plates/bar", `{"weight":15}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set bar: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/plates/bars", `{"weight":25}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add bar: status = %d, want 201", rec.Code)
	}
	var st plates.State
	decodeBody(t, rec, &st)
	if st.BarWeight != 15 {
		t.Errorf("bar = %v, want 15", st.BarWeight)
	}
	if len(st.Bars) != 2 || st.Bars[1] != 25 {
		t.Errorf("bars = %v, want [20 25]", st.Bars)
	}
}

// TestSettingsEndpoints verifies the patch surface and its unit-flip side
// effect on the inventory.
func TestSettingsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/settings", "")
	var got settings.Settings
	decodeBody(t, rec, &got)
	if !got.UseKilograms {
		t.Fatal("default should be kilograms")
	}

	rec = doJSON(t, s, http.MethodPatch, "/api/v1/settings", `{"use_kilograms":false,"dark_mode":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: status = %d, want 200", rec.Code)
	}
	decodeBody(t, rec, &got)
	if got.UseKilograms || !got.DarkMode {
		t.Errorf("settings = %+v", got)
	}

	// The unit flip must have reset the inventory to the lbs defaults.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/plates/inventory", "")
	var st plates.State
	decodeBody(t, rec, &st)
	if st.BarWeight != 45 || st.Denominations[0].Weight != 55 {
		t.Errorf("inventory after flip = %+v, want stock lbs set", st)
	}
}

// TestCalcEndpoints covers the 1RM, RPE, percentage, exercises, and
// converter surfaces.
func TestCalcEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/calc/onerm", `{"weight":100,"reps":5,"rpe":9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("onerm: status = %d, want 200", rec.Code)
	}
	var oneRM struct {
		OneRM       float64           `json:"one_rm"`
		Percentages []json.RawMessage `json:"percentages"`
	}
	decodeBody(t, rec, &oneRM)
	if oneRM.OneRM != 105 {
		t.Errorf("one_rm = %v, want 105", oneRM.OneRM)
	}
	if len(oneRM.Percentages) != 8 {
		t.Errorf("percentages rows = %d, want 8", len(oneRM.Percentages))
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/calc/onerm", `{"weight":0,"reps":5,"rpe":9}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid onerm: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/calc/rpe", `{"one_rm":100,"reps":5,"rpe":8}`)
	var rpe map[string]float64
	decodeBody(t, rec, &rpe)
	if rpe["weight"] != 82 {
		t.Errorf("rpe weight = %v, want 82", rpe["weight"])
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/calc/percentages?one_rm=200", "")
	if rec.Code != http.StatusOK {
		t.Errorf("percentages: status = %d, want 200", rec.Code)
	}
	rec = doJSON(t, s, http.MethodGet, "/api/v1/calc/percentages", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing one_rm: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/calc/exercises", "")
	var exercises []string
	decodeBody(t, rec, &exercises)
	if len(exercises) != 50 {
		t.Errorf("exercises = %d, want 50", len(exercises))
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/convert?value=100&from=kg&to=lbs", "")
	var conv struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
	decodeBody(t, rec, &conv)
	if conv.Value != 220.46 || conv.Unit != "lbs" {
		t.Errorf("convert = %+v, want 220.46 lbs", conv)
	}
	rec = doJSON(t, s, http.MethodGet, "/api/v1/convert?value=x&from=kg&to=lbs", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad value: status = %d, want 400", rec.Code)
	}
}

// TestSupplementEndpoints walks create, list, next-dose, and delete.
func TestSupplementEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/supplements/",
		`{"name":"Creatine","pills_per_dose":2,"schedule_times":["08:00","20:00"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body)
	}
	var created supplementView
	decodeBody(t, rec, &created)
	if created.ID == "" || created.NextDose == "" {
		t.Errorf("created = %+v, want ID and next dose", created)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/supplements/", `{"name":"","pills_per_dose":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid create: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/supplements/", "")
	var list []supplementView
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0].Name != "Creatine" {
		t.Fatalf("list = %+v", list)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/supplements/"+created.ID+"/next-dose", "")
	if rec.Code != http.StatusOK {
		t.Errorf("next-dose: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/supplements/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, s, http.MethodDelete, "/api/v1/supplements/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("double delete: status = %d, want 404", rec.Code)
	}
}

// TestTimerEndpoints arms and drives the rest timer through the API.
func TestTimerEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/timer/", `{"clock":"03:00"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set: status = %d, want 200", rec.Code)
	}
	var st timerStatus
	decodeBody(t, rec, &st)
	if st.RemainingSeconds != 180 || st.Running {
		t.Errorf("status = %+v, want 180s paused", st)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/timer/start", "")
	decodeBody(t, rec, &st)
	if !st.Running {
		t.Error("timer not running after start")
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/timer/stop", "")
	decodeBody(t, rec, &st)
	if st.Running || st.RemainingSeconds != 0 {
		t.Errorf("status after stop = %+v", st)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/timer/", `{"clock":"99:60"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad clock: status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, s, http.MethodPost, "/api/v1/timer/", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty set: status = %d, want 400", rec.Code)
	}
}
