package llm_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/mockprep/backend/internal/llm"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGenerationPrompt_Golden(t *testing.T) {
	g := newGolden(t)
	g.Assert(t, "generation_prompt", []byte(llm.GenerationPrompt("Go")))
}

func TestFeedbackPrompt_Golden(t *testing.T) {
	g := newGolden(t)
	prompt := llm.FeedbackPrompt(
		"What is a goroutine?",
		"A lightweight thread managed by the Go runtime.",
		"A thread.",
	)
	g.Assert(t, "feedback_prompt", []byte(prompt))
}
