// Package docs holds the OpenAPI description served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/": {"get": {"tags": ["Home"], "summary": "Home view", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.HomeDTO"}}}}},
        "/about": {"get": {"tags": ["Home"], "summary": "About view", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/finches": {
            "get": {"tags": ["Finches"], "summary": "List finches", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "enum": ["name", "color", "createdAt"], "name": "sortBy", "in": "query"},
                    {"type": "string", "enum": ["asc", "desc"], "name": "sortOrder", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Finches"], "summary": "Create finch", "consumes": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateFinchRequest"}}],
                "responses": {"303": {"description": "Redirect to the new finch"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}}}
        },
        "/finches/{id}": {
            "get": {"tags": ["Finches"], "summary": "Finch detail", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.APIError"}}}},
            "put": {"tags": ["Finches"], "summary": "Update finch", "consumes": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the finch"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Finches"], "summary": "Delete finch",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the finch list"}, "404": {"description": "Not Found"}}}
        },
        "/finches/{id}/feedings": {
            "get": {"tags": ["Feedings"], "summary": "List feedings", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"tags": ["Feedings"], "summary": "Add feeding", "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the finch, X-Workflow-Outcome is ok or invalid_input"}, "404": {"description": "Not Found"}}}
        },
        "/finches/{id}/photos": {
            "get": {"tags": ["Photos"], "summary": "List photos", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"tags": ["Photos"], "summary": "Add photo", "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "photo-file", "in": "formData"}
                ],
                "responses": {"303": {"description": "Redirect to the finch, X-Workflow-Outcome is ok, no_file, invalid_filename or upload_failed"}, "404": {"description": "Not Found"}, "413": {"description": "Request Entity Too Large"}}}
        },
        "/finches/{id}/toys/{toyId}": {
            "post": {"tags": ["Associations"], "summary": "Give a toy to a finch",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "name": "toyId", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to the finch"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Associations"], "summary": "Take a toy from a finch",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "name": "toyId", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to the finch"}, "404": {"description": "Not Found"}}}
        },
        "/toys": {
            "get": {"tags": ["Toys"], "summary": "List toys", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Toys"], "summary": "Create toy", "consumes": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateToyRequest"}}],
                "responses": {"303": {"description": "Redirect to the new toy"}, "400": {"description": "Bad Request"}}}
        },
        "/toys/{id}": {
            "get": {"tags": ["Toys"], "summary": "Toy detail", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["Toys"], "summary": "Update toy",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the toy"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Toys"], "summary": "Delete toy",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the toy list"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "domain.APIError": {"type": "object", "properties": {
            "type": {"type": "string"}, "title": {"type": "string"}, "status": {"type": "integer"}, "detail": {"type": "string"},
            "errors": {"type": "object", "additionalProperties": {"type": "string"}}
        }},
        "domain.HomeDTO": {"type": "object", "properties": {
            "name": {"type": "string"}, "links": {"type": "object", "additionalProperties": {"type": "string"}}
        }},
        "domain.CreateFinchRequest": {"type": "object", "required": ["name", "color", "size", "habitat"], "properties": {
            "name": {"type": "string"}, "color": {"type": "string"}, "size": {"type": "string"},
            "habitat": {"type": "string"}
        }},
        "domain.CreateToyRequest": {"type": "object", "required": ["name", "color"], "properties": {
            "name": {"type": "string"}, "color": {"type": "string"}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Finch Collector API",
	Description:      "Catalog of finches, their toys, feedings and photos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
