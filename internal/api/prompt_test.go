package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/internal/adapters/ai"
	"hermes/internal/agents"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

type fakeChat struct {
	reply func(req ai.ChatRequest) (string, error)
}

func (f *fakeChat) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	text, err := f.reply(req)
	if err != nil {
		return nil, err
	}
	return &ai.ChatResponse{Choices: []ai.Choice{{Content: text}}}, nil
}

type fakeSearch struct{}

func (fakeSearch) Search(ctx context.Context, query string) (string, error) {
	return `{"organic":[]}`, nil
}

func echoHandler(t *testing.T) *PromptHandler {
	t.Helper()
	return newHandler(t, &fakeChat{reply: func(req ai.ChatRequest) (string, error) {
		for _, msg := range req.Messages {
			if msg.Role == ai.RoleUser {
				return msg.Content, nil
			}
		}
		return "", nil
	}})
}

func newHandler(t *testing.T, chat ai.ChatClient) *PromptHandler {
	t.Helper()

	factory, err := agents.NewFactory(agents.FactoryDeps{
		Chat:   chat,
		Search: fakeSearch{},
		Model:  "test-model",
	})
	require.NoError(t, err)

	return NewPromptHandler(factory, logger.Get())
}

func post(handler *PromptHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/prompt", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPromptRunsSelectedChain(t *testing.T) {
	rec := post(echoHandler(t), `{"q":"hello","agents":["writer"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "hello", result)
}

func TestPromptRejectsEmptyQuery(t *testing.T) {
	rec := post(echoHandler(t), `{"q":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestPromptRejectsMalformedBody(t *testing.T) {
	rec := post(echoHandler(t), `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromptRejectsUnknownAgent(t *testing.T) {
	rec := post(echoHandler(t), `{"q":"hello","agents":["sculptor"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromptRejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/prompt", nil)
	rec := httptest.NewRecorder()
	echoHandler(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPromptMapsBackendFailureToBadGateway(t *testing.T) {
	handler := newHandler(t, &fakeChat{reply: func(req ai.ChatRequest) (string, error) {
		return "", errors.Wrap(errors.ErrBackend, "quota exhausted")
	}})

	rec := post(handler, `{"q":"hello","agents":["writer"]}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errors.Wrap(errors.ErrInvalidInput, "x"), http.StatusBadRequest},
		{errors.Wrap(errors.ErrUnknownAgent, "x"), http.StatusBadRequest},
		{errors.Wrap(errors.ErrBackend, "x"), http.StatusBadGateway},
		{errors.Wrap(errors.ErrEmptyCompletion, "x"), http.StatusBadGateway},
		{errors.Wrap(errors.ErrSerialization, "x"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFromError(tc.err), tc.err.Error())
	}
}
