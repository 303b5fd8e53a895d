// Package docs registers the Swagger document for the employee portal API.
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
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["pages"],
                "summary": "Landing page",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResult"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List all products",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/login": {
            "get": {
                "produces": ["text/html"],
                "tags": ["pages"],
                "summary": "Login form",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Compares username and password verbatim against the seeded accounts.\nThe matched account is returned as stored, password included.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check demo credentials",
                "parameters": [
                    {
                        "description": "username and password",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CredentialsRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.LoginResult"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Client-side script loads /health and /api/products.",
                "produces": ["text/html"],
                "tags": ["pages"],
                "summary": "Employee dashboard shell",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CredentialsRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handlers.HealthResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "handlers.LoginResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/handlers.UserResponse"}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "stock": {"type": "integer"}
            }
        },
        "handlers.ProductsResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "success": {"type": "boolean"}
            }
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "3.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Employee Portal API",
	Description:      "Demo employee management service: health check, product listing and a demo login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
