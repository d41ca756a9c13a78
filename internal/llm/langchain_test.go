package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/mockprep/backend/internal/llm"
)

type fakeModel struct {
	out     string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range msgs {
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				f.prompts = append(f.prompts, tc.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.out}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, opts...)
}

func TestLangChainClient_Complete(t *testing.T) {
	m := &fakeModel{out: `[{"question":"Q","answer":"A"}]`}
	c := llm.NewLangChainClientFromModel(m, 0.5)

	out, err := c.Complete(context.Background(), "generate please")

	require.NoError(t, err)
	assert.Equal(t, m.out, out)
	assert.Equal(t, []string{"generate please"}, m.prompts)
}

func TestLangChainClient_OverloadSurvivesWrapping(t *testing.T) {
	m := &fakeModel{err: errors.New("API returned unexpected status code: 503: model overloaded")}
	c := llm.NewLangChainClientFromModel(m, 0)

	_, err := c.Complete(context.Background(), "p")

	require.Error(t, err)
	assert.True(t, llm.IsOverloaded(err))
}

func TestLangChainClient_EmptyOutput(t *testing.T) {
	c := llm.NewLangChainClientFromModel(&fakeModel{out: ""}, 0)

	_, err := c.Complete(context.Background(), "p")
	assert.Error(t, err)
}
