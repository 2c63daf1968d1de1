package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"hermes/internal/agents"
	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

// PromptRequest is the body of POST /prompt.
// Agents optionally selects and orders the chain; empty means the default
// researcher → twitter → linkedin flow.
type PromptRequest struct {
	Q      string   `json:"q"`
	Agents []string `json:"agents,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PromptHandler builds the per-request agent chain and runs the pipeline.
type PromptHandler struct {
	factory *agents.Factory
	log     *logger.Logger
}

// NewPromptHandler creates the /prompt handler.
func NewPromptHandler(factory *agents.Factory, log *logger.Logger) *PromptHandler {
	return &PromptHandler{
		factory: factory,
		log:     log.With("component", "prompt_handler"),
	}
}

// ServeHTTP handles POST /prompt.
func (h *PromptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "/prompt", errors.Wrap(errors.ErrInvalidInput, "method not allowed"), http.StatusMethodNotAllowed)
		return
	}

	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "/prompt", errors.Wrap(errors.ErrInvalidInput, "decode request body"), 0)
		return
	}
	if req.Q == "" {
		h.writeError(w, "/prompt", errors.Wrap(errors.ErrInvalidInput, "q must not be empty"), 0)
		return
	}

	chainTypes, err := h.chainTypes(req.Agents)
	if err != nil {
		h.writeError(w, "/prompt", err, 0)
		return
	}

	chain, err := h.factory.CreateChain(chainTypes)
	if err != nil {
		h.writeError(w, "/prompt", err, 0)
		return
	}

	requestID := uuid.NewString()
	log := h.log.With("request_id", requestID)
	log.Infow("running pipeline", "stages", len(chain))

	pipeline := agents.NewPipeline("content", chain)

	result, err := pipeline.Run(r.Context(), req.Q)
	if err != nil {
		log.ErrorWithContext(r.Context(), err, map[string]string{"request_id": requestID})
		h.writeError(w, "/prompt", err, 0)
		return
	}

	metrics.HTTPRequests.WithLabelValues("/prompt", "200").Inc()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (h *PromptHandler) chainTypes(names []string) ([]agents.AgentType, error) {
	if len(names) == 0 {
		return agents.DefaultChain(), nil
	}

	types := make([]agents.AgentType, 0, len(names))
	for _, name := range names {
		t, err := agents.ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// writeError maps a domain error to an HTTP status and JSON error body.
// statusOverride forces a status when non-zero.
func (h *PromptHandler) writeError(w http.ResponseWriter, path string, err error, statusOverride int) {
	status := StatusFromError(err)
	if statusOverride != 0 {
		status = statusOverride
	}

	metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// StatusFromError maps the error taxonomy to HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errors.ErrInvalidInput), errors.Is(err, errors.ErrUnknownAgent):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrBackend), errors.Is(err, errors.ErrEmptyCompletion), errors.Is(err, errors.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
