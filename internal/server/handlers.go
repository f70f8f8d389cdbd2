package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cotprompt/internal/prompt"
	"cotprompt/internal/runner"
	"cotprompt/internal/tools"
	"cotprompt/pkg/logger"
)

const maxBodyBytes = 1 << 20

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  int64  `json:"uptime"`
}

// RenderResponse is the body returned by the render endpoint.
type RenderResponse struct {
	RequestID string `json:"request_id"`
	*runner.Result
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	SendJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: s.version,
		Uptime:  int64(time.Since(s.started).Seconds()),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req runner.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		SendError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := runner.Render(r.Context(), s.Agent(), req)
	if err != nil {
		status, code := classify(err)
		logger.Warn().
			Err(err).
			Str("request_id", RequestIDFromContext(r.Context())).
			Str("code", code).
			Msg("render failed")
		SendError(w, status, code, err.Error())
		return
	}

	SendJSON(w, http.StatusOK, RenderResponse{
		RequestID: RequestIDFromContext(r.Context()),
		Result:    res,
	})
}

// classify maps a render error to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, prompt.ErrAgentNotConfigured):
		return http.StatusInternalServerError, ErrCodeAgentNotConfigured
	case errors.Is(err, prompt.ErrPromptNotConfigured):
		return http.StatusInternalServerError, ErrCodePromptNotConfigured
	case errors.Is(err, prompt.ErrToolEncode),
		errors.Is(err, tools.ErrInvalidTool),
		errors.Is(err, tools.ErrToolAlreadyExists),
		errors.Is(err, runner.ErrScratchpadFinalized):
		return http.StatusBadRequest, ErrCodeInvalidRequest
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
