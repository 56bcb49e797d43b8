package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/millworks/millwright/pkg/catalog"
	"github.com/millworks/millwright/pkg/machine"
	"github.com/millworks/millwright/pkg/speeds"
	"github.com/millworks/millwright/pkg/tables"
	"github.com/millworks/millwright/pkg/tapdrill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() *tables.Bundle {
	inventory := catalog.Inventory{
		{Type: "End Mill", Tools: []catalog.Tool{
			{Description: `1/4" 2-Flute`, Diameter: 6.35, Material: "HSS", Flutes: 2},
		}},
	}

	return &tables.Bundle{
		Machine: &machine.Config{
			Name:          "benchtop-mill",
			MaxSpindleRPM: 10000,
			ToolTable:     "tables/tools.yaml",
		},
		Catalog: catalog.New(inventory),
		Speeds: speeds.Table{
			"Aluminum": {
				"End Mill": {
					SurfaceSpeed: 600,
					RPMByDiameter: map[string]float64{
						"0.125": 8000,
						"0.25":  6000,
						"0.5":   4000,
					},
				},
			},
		},
		FeedsAndSpeeds: &machine.FeedsAndSpeeds{
			SFM: map[string]map[string]catalog.Range{
				"HSS": {"Aluminum": {250, 600}},
			},
			Chipload: map[string]map[string]catalog.Range{
				"Aluminum": {"0.250": {0.002, 0.004}},
			},
		},
		TapDrill: tapdrill.Chart{
			"1/4-20": {
				TPI:      20,
				Thread75: tapdrill.DrillSize{Drill: "#7", DecimalEquivalent: 0.201},
				Thread50: tapdrill.DrillSize{Drill: "7/32", DecimalEquivalent: 0.2188},
				Clearance: map[string]tapdrill.DrillSize{
					"close_fit": {Drill: "F", DecimalEquivalent: 0.257},
					"free_fit":  {Drill: "H", DecimalEquivalent: 0.266},
				},
			},
		},
	}
}

func testServer() *Server {
	return NewServer(NewConfig(), testBundle())
}

func do(s *Server, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestReadyEndpoint(t *testing.T) {
	s := testServer()

	rec := do(s, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetReady(true)
	rec = do(s, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSpeedsEndpoint(t *testing.T) {
	rec := do(testServer(), http.MethodGet,
		"/v1/speeds?material=Aluminum&tool=End+Mill&diameter=0.1875", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SpeedsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 7000, resp.RPM, 1e-9)
	assert.True(t, resp.Interpolated)
}

func TestSpeedsEndpointMissingParams(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/v1/speeds?material=Aluminum", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}

func TestSpeedsEndpointUnknownMaterial(t *testing.T) {
	rec := do(testServer(), http.MethodGet,
		"/v1/speeds?material=Unobtanium&tool=End+Mill&diameter=0.25", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestSpeedsEndpointOutOfRange(t *testing.T) {
	rec := do(testServer(), http.MethodGet,
		"/v1/speeds?material=Aluminum&tool=End+Mill&diameter=2.0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "OUT_OF_RANGE")
}

func TestFeedEndpoint(t *testing.T) {
	rec := do(testServer(), http.MethodPost, "/v1/feed",
		`{"tool_id": 0, "material": "Aluminum"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "benchtop-mill", resp.Machine)
	assert.Greater(t, resp.RPM, 0.0)
	assert.Greater(t, resp.FeedRate, 0.0)
	assert.NotEmpty(t, resp.Log)
}

func TestFeedEndpointUnknownTool(t *testing.T) {
	rec := do(testServer(), http.MethodPost, "/v1/feed",
		`{"tool_id": 99, "material": "Aluminum"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedEndpointBadBody(t *testing.T) {
	rec := do(testServer(), http.MethodPost, "/v1/feed", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToolsEndpoint(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/v1/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []catalog.IndexedTool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 0, resp[0].ID)
}

func TestTapDrillEndpoint(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/v1/tapdrill?screw=1%2F4-20&percent=75", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "#7")
}

func TestTapDrillEndpointListsSizes(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/v1/tapdrill", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1/4-20")
}

func TestRequestIDHeader(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/v1/tools", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(testServer(), http.MethodDelete, "/v1/speeds", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
