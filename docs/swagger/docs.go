// Package swagger registers the OpenAPI document served at /api/docs.
// Regenerate with: swag init -g internal/api/main_annotations.go -o docs/swagger
package swagger

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
        "/questions": {
            "get": {
                "description": "Returns one page of questions ordered by id. max_results defaults to 10 and may not exceed 100.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "List questions",
                "parameters": [
                    {"minimum": 0, "type": "integer", "description": "Items to skip", "name": "offset", "in": "query"},
                    {"maximum": 100, "minimum": 0, "type": "integer", "description": "Page size", "name": "max_results", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.QuestionListResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question to create", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.QuestionBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Replaces title, content and tags. There is no partial update; omitted fields are cleared.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Replace a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"description": "Replacement question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.QuestionBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}/answers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Answers"],
                "summary": "List answers",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"minimum": 0, "type": "integer", "description": "Items to skip", "name": "offset", "in": "query"},
                    {"maximum": 100, "minimum": 0, "type": "integer", "description": "Page size", "name": "max_results", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.AnswerListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "description": "The body is either a JSON string holding the answer text or an object with a content field.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Answers"],
                "summary": "Answer a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer content", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.AnswerBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.Answer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.QuestionListResponse": {
            "type": "object",
            "properties": {
                "paginationContext": {"$ref": "#/definitions/store.ValidatedPagination"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/store.Question"}}
            }
        },
        "api.AnswerListResponse": {
            "type": "object",
            "properties": {
                "paginationContext": {"$ref": "#/definitions/store.ValidatedPagination"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/store.Answer"}}
            }
        },
        "store.Answer": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "question_id": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "store.AnswerBody": {
            "type": "object",
            "properties": {"content": {"type": "string"}}
        },
        "store.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "store.QuestionBody": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "store.ValidatedPagination": {
            "type": "object",
            "properties": {
                "offset": {"type": "integer"},
                "max_results": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "stack-underflow API",
	Description:      "In-memory questions and answers service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
