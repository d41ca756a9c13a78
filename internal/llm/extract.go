package llm

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mockprep/backend/internal/domain/question"
)

// ============================================================================
// JSON schemas for model output
// ============================================================================

const questionsSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"answer": {"type": "string", "minLength": 1}
		},
		"required": ["question", "answer"]
	}
}`

const verdictSchema = `{
	"type": "object",
	"properties": {
		"is_correct_enough": {"type": "boolean"},
		"feedback": {"type": "string"}
	},
	"required": ["is_correct_enough", "feedback"]
}`

var (
	questionsSchemaLoader = gojsonschema.NewStringLoader(questionsSchema)
	verdictSchemaLoader   = gojsonschema.NewStringLoader(verdictSchema)
)

// ============================================================================
// Decoding
// ============================================================================

// DecodeQuestions parses model output into question/answer pairs. Code
// fences are stripped first; if the cleaned text is not a valid array, the
// first JSON array embedded in the text is tried.
func DecodeQuestions(text string) ([]question.QuestionAnswer, error) {
	doc, err := firstValid(text, questionsSchemaLoader, '[', ']')
	if err != nil {
		return nil, err
	}

	var qs []question.QuestionAnswer
	if err := json.Unmarshal([]byte(doc), &qs); err != nil {
		return nil, &ParseError{Reason: "invalid question array", Raw: text, Wrapped: err}
	}
	return qs, nil
}

// DecodeVerdict parses a {"is_correct_enough", "feedback"} object.
func DecodeVerdict(text string) (question.Verdict, error) {
	doc, err := firstValid(text, verdictSchemaLoader, '{', '}')
	if err != nil {
		return question.Verdict{}, err
	}

	var v question.Verdict
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		return question.Verdict{}, &ParseError{Reason: "invalid verdict object", Raw: text, Wrapped: err}
	}
	return v, nil
}

func firstValid(text string, schema gojsonschema.JSONLoader, open, close rune) (string, error) {
	cleaned := StripCodeFence(text)
	err := validate(schema, cleaned)
	if err == nil {
		return cleaned, nil
	}

	if embedded := extractJSON(text, open, close); embedded != "" && embedded != cleaned {
		if validate(schema, embedded) == nil {
			return embedded, nil
		}
	}

	if pe, ok := err.(*ParseError); ok {
		pe.Raw = text
	}
	return "", err
}

func validate(schema gojsonschema.JSONLoader, doc string) error {
	if doc == "" {
		return &ParseError{Reason: "empty response"}
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return &ParseError{Reason: "invalid JSON", Wrapped: err}
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return &ParseError{Reason: "unexpected shape: " + strings.Join(msgs, "; ")}
	}
	return nil
}

// ============================================================================
// Text cleanup
// ============================================================================

// StripCodeFence removes a surrounding markdown code fence (with or without
// a language tag) and trims whitespace.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop an info string such as "json" on the opening line.
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "[{") {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSON finds the first outermost value delimited by open/close.
// It handles nesting and skips delimiters inside quoted strings.
func extractJSON(s string, open, close rune) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			if depth > 0 {
				inString = !inString
			}
			continue
		}
		if inString {
			continue
		}

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close && depth > 0 {
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
