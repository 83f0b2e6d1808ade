// Package swagger registers the OpenAPI document of the read API, served under /swagger.
// Keep it in step with the swag annotations on the manifest and history handlers.
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
        "/history": {
            "get": {
                "description": "Returns the most recent fetch runs with their per-category results, newest first.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "List Runs",
                "parameters": [
                    {"type": "integer", "default": 20, "description": "Maximum number of runs", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/history.Run"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/history/{id}": {
            "get": {
                "description": "Returns one fetch run by id.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Get Run",
                "parameters": [
                    {"type": "string", "description": "Run ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/history.Run"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/manifest": {
            "get": {
                "description": "Returns the last remote update time and the number of scripts per source.",
                "produces": ["application/json"],
                "tags": ["manifest"],
                "summary": "Manifest Summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/manifest.Summary"}},
                    "404": {"description": "Manifest not built", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/manifest/scripts": {
            "get": {
                "description": "Returns the merged scripts, optionally filtered by source (remote, extra, homebrew).",
                "produces": ["application/json"],
                "tags": ["manifest"],
                "summary": "List Scripts",
                "parameters": [
                    {"type": "string", "description": "Source filter", "name": "source", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record.Record"}}},
                    "404": {"description": "Manifest not built", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/manifest/scripts/{pk}": {
            "get": {
                "description": "Returns one script of the manifest by primary key.",
                "produces": ["application/json"],
                "tags": ["manifest"],
                "summary": "Get Script",
                "parameters": [
                    {"type": "string", "description": "Script primary key", "name": "pk", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/record.Record"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "history.CategoryResult": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "downloaded": {"type": "integer"},
                "duration_ms": {"type": "integer"},
                "error": {"type": "string"},
                "failed": {"type": "integer"},
                "outcome": {"type": "string"},
                "skipped": {"type": "integer"},
                "states": {"type": "string"}
            }
        },
        "history.Run": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/history.CategoryResult"}},
                "failed": {"type": "boolean"},
                "finished_at": {"type": "string"},
                "id": {"type": "string"},
                "started_at": {"type": "string"}
            }
        },
        "manifest.Summary": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "lastUpdate": {"type": "string"},
                "sources": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "record.Record": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "characters": {"type": "array", "items": {"type": "string"}},
                "meta": {"type": "object", "additionalProperties": true},
                "pk": {"type": "string"},
                "source": {"type": "string"},
                "title": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BotC Assets API",
	Description:      "Read API over the fetched Blood on the Clocktower assets, script manifest and run history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
