package question

import "errors"

// QuestionAnswer is a generated interview question and its reference answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (qa QuestionAnswer) Validate() error {
	if qa.Question == "" {
		return errors.New("question cannot be empty")
	}
	if qa.Answer == "" {
		return errors.New("answer cannot be empty")
	}
	return nil
}

// Verdict is the grading outcome for one user answer.
// IsCorrectEnough is nil when no verdict could be obtained.
type Verdict struct {
	Feedback        string `json:"feedback"`
	IsCorrectEnough *bool  `json:"is_correct_enough"`
}

// Correct reports whether the verdict is strictly true. An unknown verdict
// counts as not correct.
func (v Verdict) Correct() bool {
	return v.IsCorrectEnough != nil && *v.IsCorrectEnough
}

// AnsweredQuestion is a QuestionAnswer together with what the user replied
// and the feedback they received.
type AnsweredQuestion struct {
	QuestionAnswer
	UserAnswer string  `json:"user_answer"`
	AIFeedback Verdict `json:"ai_feedback"`
}

// Record stores the latest answer and verdict, replacing any earlier attempt.
func (a *AnsweredQuestion) Record(userAnswer string, v Verdict) {
	a.UserAnswer = userAnswer
	a.AIFeedback = v
}

// Bool returns a pointer to b, for building verdicts.
func Bool(b bool) *bool {
	return &b
}
