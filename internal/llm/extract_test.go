package llm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockprep/backend/internal/llm"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"inline fence", "```[1]```", `[1]`},
		{"inline json fence", "```json[1]```", `[1]`},
		{"surrounding whitespace", "\n  ```json\n[]\n```  \n", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, llm.StripCodeFence(tt.in))
		})
	}
}

func TestDecodeQuestions(t *testing.T) {
	text := "```json\n[{\"question\": \"What is a slice?\", \"answer\": \"A view over an array.\"}, {\"question\": \"What is a map?\", \"answer\": \"A hash table.\"}]\n```"

	qs, err := llm.DecodeQuestions(text)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "What is a slice?", qs[0].Question)
	assert.Equal(t, "A hash table.", qs[1].Answer)
}

func TestDecodeQuestions_EmbeddedInProse(t *testing.T) {
	text := `Sure! Here are your questions: [{"question": "Q1", "answer": "A1"}] Good luck.`

	qs, err := llm.DecodeQuestions(text)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "A1", qs[0].Answer)
}

func TestDecodeQuestions_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":       "I cannot help with that.",
		"object":         `{"question": "Q", "answer": "A"}`,
		"missing answer": `[{"question": "Q"}]`,
		"empty answer":   `[{"question": "Q", "answer": ""}]`,
		"wrong type":     `[{"question": 1, "answer": "A"}]`,
		"empty":          "   ",
		"empty array":    "[]",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := llm.DecodeQuestions(text)
			require.Error(t, err)

			var pe *llm.ParseError
			assert.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)
		})
	}
}

func TestDecodeVerdict(t *testing.T) {
	v, err := llm.DecodeVerdict("```json\n{\"is_correct_enough\": true, \"feedback\": \"Nice {braces} inside\"}\n```")
	require.NoError(t, err)
	require.NotNil(t, v.IsCorrectEnough)
	assert.True(t, *v.IsCorrectEnough)
	assert.Equal(t, "Nice {braces} inside", v.Feedback)
}

func TestDecodeVerdict_EmbeddedInProse(t *testing.T) {
	v, err := llm.DecodeVerdict(`Here is my grade: {"is_correct_enough": false, "feedback": "Mention the runtime."}`)
	require.NoError(t, err)
	require.NotNil(t, v.IsCorrectEnough)
	assert.False(t, *v.IsCorrectEnough)
}

func TestDecodeVerdict_Errors(t *testing.T) {
	tests := map[string]string{
		"prose":           "Good answer, you covered everything.",
		"missing verdict": `{"feedback": "ok"}`,
		"string verdict":  `{"is_correct_enough": "yes", "feedback": "ok"}`,
		"null verdict":    `{"is_correct_enough": null, "feedback": "ok"}`,
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := llm.DecodeVerdict(text)
			var pe *llm.ParseError
			require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
			assert.Equal(t, text, pe.Raw)
		})
	}
}
