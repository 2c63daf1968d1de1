package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/internal/adapters/ai"
	"hermes/pkg/errors"
)

func TestPipeline_EmptyAgentListIsIdentity(t *testing.T) {
	pipeline := NewPipeline("empty", nil)

	for _, input := range []string{"", "hello", "multi\nline", `{"json":true}`} {
		out, err := pipeline.Run(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, input, out)
	}
}

func TestPipeline_SingleStageEchoBackend(t *testing.T) {
	writer, err := NewWriter(echoChat(), "test-model", "")
	require.NoError(t, err)

	pipeline := NewPipeline("echo", []Agent{writer})

	out, err := pipeline.Run(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestPipeline_TwoStageComposition(t *testing.T) {
	upper := &stubChat{reply: func(req ai.ChatRequest) (string, error) {
		return strings.ToUpper(userContent(req)), nil
	}}
	bang := &stubChat{reply: func(req ai.ChatRequest) (string, error) {
		return userContent(req) + "!", nil
	}}

	first, err := NewWriter(upper, "test-model", "")
	require.NoError(t, err)
	second, err := NewTwitterAgent(bang, "test-model", "")
	require.NoError(t, err)

	pipeline := NewPipeline("compose", []Agent{first, second})

	out, err := pipeline.Run(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "HI!", out)
}

func TestPipeline_StrictOrdering(t *testing.T) {
	a := &stubChat{reply: func(req ai.ChatRequest) (string, error) {
		return "output-of-a", nil
	}}
	b := echoChat()

	first, err := NewWriter(a, "test-model", "")
	require.NoError(t, err)
	second, err := NewLinkedInAgent(b, "test-model", "")
	require.NoError(t, err)

	pipeline := NewPipeline("order", []Agent{first, second})

	_, err = pipeline.Run(context.Background(), "initial")
	require.NoError(t, err)

	bReqs := b.recorded()
	require.Len(t, bReqs, 1)
	assert.Equal(t, "output-of-a", userContent(bReqs[0]),
		"second agent must receive exactly the first agent's output")
}

func TestPipeline_FailFastSkipsRemainingStages(t *testing.T) {
	boom := errors.Wrap(errors.ErrBackend, "quota exhausted")
	failing := &stubChat{reply: func(req ai.ChatRequest) (string, error) {
		return "", boom
	}}
	next := echoChat()

	first, err := NewWriter(failing, "test-model", "")
	require.NoError(t, err)
	second, err := NewTwitterAgent(next, "test-model", "")
	require.NoError(t, err)

	pipeline := NewPipeline("failfast", []Agent{first, second})

	_, err = pipeline.Run(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBackend))

	var stageErr *errors.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "Writer", stageErr.Agent)

	assert.Empty(t, next.recorded(), "agents after a failed stage must not run")
}

func TestPipeline_EmptyCompletionPropagates(t *testing.T) {
	empty := &stubChat{empty: true}

	agent, err := NewWriter(empty, "test-model", "")
	require.NoError(t, err)

	pipeline := NewPipeline("empty-completion", []Agent{agent})

	_, err = pipeline.Run(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyCompletion))
}

func TestPipeline_AuxiliaryContextStaysWithResearcher(t *testing.T) {
	const marker = `{"organic":[{"title":"result-marker"}]}`

	researcherChat := &stubChat{reply: func(req ai.ChatRequest) (string, error) {
		return "research summary", nil
	}}
	downstreamChat := echoChat()

	researcher, err := NewResearcher(researcherChat, &stubSearch{result: marker}, "test-model", "")
	require.NoError(t, err)
	downstream, err := NewTwitterAgent(downstreamChat, "test-model", "")
	require.NoError(t, err)

	pipeline := NewPipeline("isolation", []Agent{researcher, downstream})

	_, err = pipeline.Run(context.Background(), "what is hermes?")
	require.NoError(t, err)

	rReqs := researcherChat.recorded()
	require.Len(t, rReqs, 1)
	assert.Contains(t, userContent(rReqs[0]), "Provided context:")
	assert.Contains(t, userContent(rReqs[0]), marker)

	dReqs := downstreamChat.recorded()
	require.Len(t, dReqs, 1)
	assert.Equal(t, "research summary", userContent(dReqs[0]))
	assert.NotContains(t, userContent(dReqs[0]), marker,
		"gathered context must never reach downstream agents")
}

func TestPipeline_CancelledContextAborts(t *testing.T) {
	agent, err := NewWriter(echoChat(), "test-model", "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pipeline := NewPipeline("cancelled", []Agent{agent})

	_, err = pipeline.Run(ctx, "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
