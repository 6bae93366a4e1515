// Package swagger holds the OpenAPI document for the poster API.
// Regenerate with: swag init -g cmd/server/main.go -o docs/swagger
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
        "/api/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.MessageResponse"}}
                }
            }
        },
        "/api/posters": {
            "get": {
                "description": "Returns up to 1000 posters ordered by date ascending.",
                "produces": ["application/json"],
                "tags": ["posters"],
                "summary": "List posters",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/responses.PosterResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores a new poster record. The image is kept verbatim.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posters"],
                "summary": "Create a poster",
                "parameters": [
                    {"description": "Poster", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/requests.CreatePosterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.PosterResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/api/posters/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posters"],
                "summary": "Get a poster",
                "parameters": [
                    {"type": "string", "description": "Poster id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.PosterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Applies a partial update; absent or null fields are left untouched.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posters"],
                "summary": "Update a poster",
                "parameters": [
                    {"type": "string", "description": "Poster id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/requests.UpdatePosterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.PosterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["posters"],
                "summary": "Delete a poster",
                "parameters": [
                    {"type": "string", "description": "Poster id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.DeleteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/api/extract-date": {
            "post": {
                "description": "Always answers 200; a failed extraction is reported with success=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["extraction"],
                "summary": "Extract the event date from a poster image",
                "parameters": [
                    {"description": "Base64 image or data URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/requests.ExtractDateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.ExtractDateResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "requests.CreatePosterRequest": {
            "type": "object",
            "required": ["date", "image", "location", "title"],
            "properties": {
                "date": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "requests.UpdatePosterRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string", "minLength": 1},
                "title": {"type": "string", "minLength": 1}
            }
        },
        "requests.ExtractDateRequest": {
            "type": "object",
            "required": ["image"],
            "properties": {
                "image": {"type": "string"}
            }
        },
        "responses.PosterResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "responses.DeleteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "responses.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "responses.ExtractDateResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
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
	Title:            "Poster Collection API",
	Description:      "Poster records with vision-model date extraction",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
