package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/gcode"
	"github.com/millworks/millwright/pkg/machine"
	"github.com/millworks/millwright/pkg/serializer"
	"github.com/millworks/millwright/pkg/tapdrill"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// handleReady handles GET /ready
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now(),
			Reason:    "service is initializing",
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
	})
}

// handleSpeeds handles GET /v1/speeds
func (s *Server) handleSpeeds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeInvalidRequest,
			"Method not allowed", false, nil)
		return
	}

	q := r.URL.Query()
	material := q.Get("material")
	tool := q.Get("tool")
	diameterStr := q.Get("diameter")

	if material == "" || tool == "" || diameterStr == "" {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"material, tool, and diameter query parameters are required", false, nil)
		return
	}

	diameter, err := strconv.ParseFloat(diameterStr, 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"diameter must be a number", false, map[string]any{"diameter": diameterStr})
		return
	}

	result, err := s.resolver.Resolve(material, tool, diameter)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, SpeedsResponse{
		Material:     material,
		Tool:         tool,
		Diameter:     diameter,
		SurfaceSpeed: result.SurfaceSpeed,
		RPM:          result.RPM,
		Interpolated: result.Interpolated,
	})
}

// handleFeed handles POST /v1/feed
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeInvalidRequest,
			"Method not allowed", false, nil)
		return
	}

	var req FeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"invalid request body", false, nil)
		return
	}

	if s.bundle.FeedsAndSpeeds == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.ErrCodeConfig,
			"no feeds-and-speeds reference loaded", false, nil)
		return
	}

	tool, err := s.bundle.Catalog.Tool(req.ToolID)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	// Each request gets its own session so logs do not interleave.
	st, err := machine.NewState(*s.bundle.Machine, gcode.NewLog())
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}
	st.SetTool(tool)
	st.SetMaterial(req.Material)

	if err := st.DeriveFeed(s.bundle.FeedsAndSpeeds); err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, FeedResponse{
		Machine:      s.bundle.Machine.Name,
		ToolID:       tool.ID,
		Material:     req.Material,
		RPM:          st.RPM(),
		SurfaceSpeed: st.SurfaceSpeed(),
		FeedRate:     st.FeedRate(),
		Log:          st.Log().Entries(),
	})
}

// handleTools handles GET /v1/tools
func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeInvalidRequest,
			"Method not allowed", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s.bundle.Catalog.Flattened())
}

// handleTapDrill handles GET /v1/tapdrill
func (s *Server) handleTapDrill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeInvalidRequest,
			"Method not allowed", false, nil)
		return
	}

	if s.bundle.TapDrill == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.ErrCodeConfig,
			"no tap drill chart loaded", false, nil)
		return
	}

	screw := r.URL.Query().Get("screw")
	if screw == "" {
		serializer.RespondJSON(w, http.StatusOK, s.bundle.TapDrill.Sizes())
		return
	}

	pct := tapdrill.Thread75
	if pctStr := r.URL.Query().Get("percent"); pctStr != "" {
		n, err := strconv.Atoi(pctStr)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"percent must be a number", false, map[string]any{"percent": pctStr})
			return
		}
		pct = tapdrill.ThreadPercent(n)
	}

	rec, err := s.bundle.TapDrill.Lookup(screw, pct)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rec)
}
