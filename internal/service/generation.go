// internal/service/generation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mockprep/backend/internal/canned"
	"github.com/mockprep/backend/internal/domain/question"
	"github.com/mockprep/backend/internal/llm"
	"github.com/mockprep/backend/internal/retry"
)

// Policy decides what happens when question generation fails.
type Policy string

const (
	// PolicyResilient serves canned questions on any generation failure.
	PolicyResilient Policy = "resilient"
	// PolicyStrict surfaces every generation failure to the caller.
	PolicyStrict Policy = "strict"
)

// ParsePolicy validates a configured policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyResilient, PolicyStrict:
		return p, nil
	default:
		return "", fmt.Errorf("unknown generation policy %q (want %q or %q)", s, PolicyResilient, PolicyStrict)
	}
}

// Source says where a question set came from.
type Source string

const (
	SourceAI     Source = "ai"
	SourceCanned Source = "canned"
)

// Generated is one batch of questions for a topic.
type Generated struct {
	Questions []question.QuestionAnswer
	Source    Source
}

// GenerationService produces interview questions for a topic.
type GenerationService struct {
	llm    llm.Completer
	canned *canned.Provider
	policy Policy
	retry  retry.Policy
	logger *slog.Logger
}

// NewGenerationService creates a GenerationService. A nil completer means
// the generation service is disabled.
func NewGenerationService(c llm.Completer, p *canned.Provider, policy Policy, rp retry.Policy, logger *slog.Logger) *GenerationService {
	return &GenerationService{
		llm:    c,
		canned: p,
		policy: policy,
		retry:  rp,
		logger: logger,
	}
}

// Generate returns a fresh batch of questions for topic. Every call is
// independent, so calling it again for the same topic loads more questions.
func (gs *GenerationService) Generate(ctx context.Context, topic string) (Generated, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Generated{}, ErrTopicRequired
	}

	if gs.llm == nil {
		if gs.policy == PolicyStrict {
			return Generated{}, ErrGenerationUnavailable
		}
		return gs.fallback(topic, ErrGenerationUnavailable), nil
	}

	start := time.Now()
	qs, err := retry.Do(ctx, gs.withRetryLog(topic), llm.IsOverloaded,
		func(ctx context.Context) ([]question.QuestionAnswer, error) {
			text, err := gs.llm.Complete(ctx, llm.GenerationPrompt(topic))
			if err != nil {
				return nil, err
			}
			return llm.DecodeQuestions(text)
		},
	)
	if err != nil {
		if gs.policy == PolicyStrict {
			return Generated{}, fmt.Errorf("generate questions for %q: %w", topic, err)
		}
		return gs.fallback(topic, err), nil
	}

	gs.logger.Info("questions generated",
		"topic", topic,
		"count", len(qs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Generated{Questions: qs, Source: SourceAI}, nil
}

func (gs *GenerationService) fallback(topic string, cause error) Generated {
	qs := gs.canned.Questions(topic)
	gs.logger.Warn("serving canned questions",
		"topic", topic,
		"canned_topic", gs.canned.Resolve(topic),
		"error", cause,
	)
	return Generated{Questions: qs, Source: SourceCanned}
}

func (gs *GenerationService) withRetryLog(topic string) retry.Policy {
	p := gs.retry
	p.OnRetry = func(attempt int, err error, delay time.Duration) {
		gs.logger.Warn("generation service overloaded, retrying",
			"topic", topic,
			"attempt", attempt,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}
	return p
}
