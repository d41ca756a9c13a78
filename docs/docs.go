// Package docs registers the OpenAPI description served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DashboardResponse"}},
                    "401": {"description": "invalid token", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/feedback": {
            "post": {
                "description": "Judges whether the answer covers the key concepts. Degrades to a length check when the model is unavailable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Practice"],
                "summary": "Grade an answer",
                "parameters": [
                    {"description": "Answer to grade", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.FeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.FeedbackResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/generate": {
            "post": {
                "description": "Asks the model for ten question/answer pairs on the topic. Call again to load more.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Practice"],
                "summary": "Generate interview questions",
                "parameters": [
                    {"description": "Topic", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.GenerateRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/api.QuestionResponse"}},
                        "headers": {"X-Content-Source": {"type": "string", "description": "ai or canned"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's sessions newest first, each with its score. Read failures yield an empty list.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "List practice sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/api.ScoredSessionResponse"}}},
                    "401": {"description": "invalid token", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Inserts a new session owned by the caller. Every save creates a new record.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Save a practice session",
                "parameters": [
                    {"description": "Session to save", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SaveSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SaveSessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "api.DashboardResponse": {
            "type": "object",
            "properties": {
                "average_score": {"type": "integer", "example": 68},
                "sessions": {"type": "array", "items": {"$ref": "#/definitions/api.ScoredSessionResponse"}},
                "total_sessions": {"type": "integer", "example": 4}
            }
        },
        "api.FeedbackRequest": {
            "type": "object",
            "properties": {
                "correctAnswer": {"type": "string", "example": "A function bundled with references to its surrounding state."},
                "question": {"type": "string", "example": "What is a closure?"},
                "userAnswer": {"type": "string", "example": "A function that remembers variables from where it was defined."}
            }
        },
        "api.FeedbackResponse": {
            "type": "object",
            "properties": {
                "feedback": {"type": "string", "example": "Good, you also could mention lexical scope."},
                "is_correct_enough": {"type": "boolean", "example": true}
            }
        },
        "api.GenerateRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string", "example": "JavaScript"}
            }
        },
        "api.QuestionResponse": {
            "type": "object",
            "properties": {
                "answer": {"type": "string", "example": "A function bundled with references to its surrounding state."},
                "question": {"type": "string", "example": "What is a closure?"}
            }
        },
        "api.SaveSessionRequest": {
            "type": "object",
            "properties": {
                "sessionData": {"type": "array", "items": {"$ref": "#/definitions/question.AnsweredQuestion"}},
                "topic": {"type": "string", "example": "React"}
            }
        },
        "api.SaveSessionResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/api.SessionResponse"},
                "message": {"type": "string", "example": "Session saved successfully"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "api.ScoredSessionResponse": {
            "type": "object",
            "properties": {
                "breakdown": {"$ref": "#/definitions/scoring.Breakdown"},
                "created_at": {"type": "string", "example": "2025-03-01T12:00:00Z"},
                "id": {"type": "string", "example": "5f0c7d7e-8a43-4d0e-9a55-3c1e2b7f9a10"},
                "score": {"type": "integer", "example": 75},
                "session_data": {"type": "array", "items": {"$ref": "#/definitions/question.AnsweredQuestion"}},
                "topic": {"type": "string", "example": "React"},
                "user_id": {"type": "string", "example": "user_2abc"}
            }
        },
        "api.SessionResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string", "example": "2025-03-01T12:00:00Z"},
                "id": {"type": "string", "example": "5f0c7d7e-8a43-4d0e-9a55-3c1e2b7f9a10"},
                "session_data": {"type": "array", "items": {"$ref": "#/definitions/question.AnsweredQuestion"}},
                "topic": {"type": "string", "example": "React"},
                "user_id": {"type": "string", "example": "user_2abc"}
            }
        },
        "question.AnsweredQuestion": {
            "type": "object",
            "properties": {
                "ai_feedback": {"$ref": "#/definitions/question.Verdict"},
                "answer": {"type": "string"},
                "question": {"type": "string"},
                "user_answer": {"type": "string"}
            }
        },
        "question.Verdict": {
            "type": "object",
            "properties": {
                "feedback": {"type": "string"},
                "is_correct_enough": {"type": "boolean"}
            }
        },
        "scoring.Breakdown": {
            "type": "object",
            "properties": {
                "correct": {"type": "integer"},
                "incorrect": {"type": "integer"},
                "percentage": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MockPrep API",
	Description:      "Interview practice: generate questions on a topic, get AI feedback on your answers, and track your scores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
