package question_test

import (
	"encoding/json"
	"testing"

	"github.com/mockprep/backend/internal/domain/question"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		qa      question.QuestionAnswer
		wantErr bool
	}{
		{"complete", question.QuestionAnswer{Question: "What is a closure?", Answer: "A function with its scope."}, false},
		{"missing question", question.QuestionAnswer{Answer: "x"}, true},
		{"missing answer", question.QuestionAnswer{Question: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.qa.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVerdictCorrect(t *testing.T) {
	if (question.Verdict{}).Correct() {
		t.Error("expected unknown verdict to be not correct")
	}
	if (question.Verdict{IsCorrectEnough: question.Bool(false)}).Correct() {
		t.Error("expected false verdict to be not correct")
	}
	if !(question.Verdict{IsCorrectEnough: question.Bool(true)}).Correct() {
		t.Error("expected true verdict to be correct")
	}
}

func TestRecord_OverwritesPreviousAttempt(t *testing.T) {
	aq := question.AnsweredQuestion{
		QuestionAnswer: question.QuestionAnswer{Question: "Q", Answer: "A"},
	}

	aq.Record("first try", question.Verdict{Feedback: "no", IsCorrectEnough: question.Bool(false)})
	aq.Record("second try", question.Verdict{Feedback: "yes", IsCorrectEnough: question.Bool(true)})

	if aq.UserAnswer != "second try" {
		t.Errorf("expected %q, got %q", "second try", aq.UserAnswer)
	}
	if !aq.AIFeedback.Correct() || aq.AIFeedback.Feedback != "yes" {
		t.Errorf("expected latest verdict to win, got %+v", aq.AIFeedback)
	}
}

func TestAnsweredQuestion_WireShape(t *testing.T) {
	raw := `{"question":"Q","answer":"A","user_answer":"U","ai_feedback":{"feedback":"F","is_correct_enough":null}}`

	var aq question.AnsweredQuestion
	if err := json.Unmarshal([]byte(raw), &aq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if aq.Question != "Q" || aq.Answer != "A" || aq.UserAnswer != "U" {
		t.Errorf("unexpected fields: %+v", aq)
	}
	if aq.AIFeedback.IsCorrectEnough != nil {
		t.Error("expected null verdict to stay nil")
	}
}
