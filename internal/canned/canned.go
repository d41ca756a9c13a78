// Package canned serves fixed question sets when the generation service
// cannot be used.
package canned

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/mockprep/backend/internal/domain/question"
)

//go:embed questions.yaml
var questionsYAML []byte

type document struct {
	Topics []struct {
		Key       string                    `yaml:"key"`
		Questions []question.QuestionAnswer `yaml:"questions"`
	} `yaml:"topics"`
}

// Provider is an immutable topic → questions table. Lookups fall back to a
// substring match and then to the first topic in the table.
type Provider struct {
	keys  []string // table order, keys[0] is the default
	table map[string][]question.QuestionAnswer
}

// Parse builds a Provider from YAML.
func Parse(data []byte) (*Provider, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse canned questions: %w", err)
	}
	if len(doc.Topics) == 0 {
		return nil, errors.New("canned questions: no topics defined")
	}

	p := &Provider{table: make(map[string][]question.QuestionAnswer, len(doc.Topics))}
	for _, t := range doc.Topics {
		key := normalize(t.Key)
		if key == "" {
			return nil, errors.New("canned questions: empty topic key")
		}
		if _, dup := p.table[key]; dup {
			return nil, fmt.Errorf("canned questions: duplicate topic %q", key)
		}
		for i, qa := range t.Questions {
			if err := qa.Validate(); err != nil {
				return nil, fmt.Errorf("canned questions: %s[%d]: %w", key, i, err)
			}
		}
		p.keys = append(p.keys, key)
		p.table[key] = t.Questions
	}
	return p, nil
}

var defaultProvider = sync.OnceValue(func() *Provider {
	p, err := Parse(questionsYAML)
	if err != nil {
		panic(err)
	}
	return p
})

// Default returns the provider backed by the embedded question sets.
func Default() *Provider {
	return defaultProvider()
}

// Questions returns the set for topic: exact match first, then the first
// key that contains or is contained in the topic, then the default set.
// The returned slice is a copy.
func (p *Provider) Questions(topic string) []question.QuestionAnswer {
	return clone(p.table[p.Resolve(topic)])
}

// Resolve returns the table key that Questions would serve for topic.
func (p *Provider) Resolve(topic string) string {
	t := normalize(topic)
	if _, ok := p.table[t]; ok {
		return t
	}
	for _, key := range p.keys {
		if strings.Contains(t, key) || strings.Contains(key, t) {
			return key
		}
	}
	return p.keys[0]
}

// Topics lists the known topic keys in table order.
func (p *Provider) Topics() []string {
	return append([]string(nil), p.keys...)
}

func normalize(topic string) string {
	return norm.NFC.String(strings.TrimSpace(cases.Lower(language.Und).String(topic)))
}

func clone(in []question.QuestionAnswer) []question.QuestionAnswer {
	return append([]question.QuestionAnswer(nil), in...)
}
