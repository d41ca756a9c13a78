package llm

import "fmt"

// QuestionsPerTopic is how many pairs the generation prompt asks for. The
// count is an instruction to the model and is not enforced on the reply.
const QuestionsPerTopic = 10

const generationPrompt = `You are an expert %[1]s interviewer.
Generate %[2]d technical interview questions related to %[1]s.
For each question, provide a concise, accurate answer.

IMPORTANT: Return the response ONLY as a valid JSON array of objects.
Do NOT include any other text, explanation, or markdown code fences.
Example format: [{"question": "...", "answer": "..."}]`

const feedbackPrompt = `You are an expert technical interviewer grading a practice answer.

QUESTION:
%s

CORRECT ANSWER:
%s

USER'S ANSWER:
%s

Decide whether the user's answer captures the key concepts of the correct answer.
Different wording is fine as long as the ideas match.
Write concise, constructive feedback: say what they got right and how to improve.

Respond with ONLY this JSON object, no other text and no markdown:
{"is_correct_enough": true or false, "feedback": "..."}`

// GenerationPrompt asks for QuestionsPerTopic question/answer pairs on topic.
func GenerationPrompt(topic string) string {
	return fmt.Sprintf(generationPrompt, topic, QuestionsPerTopic)
}

// FeedbackPrompt asks for a verdict on userAnswer.
func FeedbackPrompt(question, correctAnswer, userAnswer string) string {
	return fmt.Sprintf(feedbackPrompt, question, correctAnswer, userAnswer)
}
