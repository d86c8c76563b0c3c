// Package docs registers the Swagger description of the HTTP API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Tumaini Tours",
            "email": "info@tumaini.example"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/login": {
            "post": {
                "description": "Checks the credentials and sets the HttpOnly session cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "description": "Clears the session cookie. Always succeeds.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/verify": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current admin",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/tours": {
            "get": {
                "description": "Newest first by default; order=date lists the soonest tours first",
                "produces": ["application/json"],
                "tags": ["Tour"],
                "summary": "List tours",
                "parameters": [
                    {"type": "integer", "description": "Maximum number of tours", "name": "limit", "in": "query"},
                    {"type": "string", "description": "newest or date", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "tourName, price, images, location and date are required; the rest default",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tour"],
                "summary": "Create a tour",
                "parameters": [
                    {
                        "description": "Tour",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.TourInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/tours/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tour"],
                "summary": "Get a tour",
                "parameters": [{"type": "integer", "description": "Tour ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"CookieAuth": []}],
                "description": "Full replace: omitted optional fields fall back to their defaults",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tour"],
                "summary": "Replace a tour",
                "parameters": [
                    {"type": "integer", "description": "Tour ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Tour",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.TourInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tour"],
                "summary": "Delete a tour",
                "parameters": [{"type": "integer", "description": "Tour ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/site/home": {
            "get": {
                "description": "The soonest upcoming tours",
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Home page data",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/site/tours": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Tour listing page data",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/site/tours/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Tour detail page data",
                "parameters": [{"type": "integer", "description": "Tour ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Every file is stored independently; the response reports each one",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Upload"],
                "summary": "Upload tour images",
                "parameters": [{"type": "file", "description": "Image (repeatable)", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"CookieAuth": []}],
                "description": "Accepts the asset id or the public URL it was served from",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Upload"],
                "summary": "Delete a tour image",
                "parameters": [
                    {
                        "description": "Asset",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.DeleteAssetRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/bookings": {
            "post": {
                "description": "Emails the operator and acknowledges the customer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inquiry"],
                "summary": "Request a booking",
                "parameters": [
                    {
                        "description": "Booking",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.BookingRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inquiry"],
                "summary": "Send a contact message",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ContactMessage"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/health/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Dependency status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "controllers.DeleteAssetRequest": {
            "type": "object",
            "properties": {
                "assetId": {"type": "string", "example": "0b6e3a8e-4a53-4f6c-9d0e-2f7c51a9c2d1"},
                "url": {"type": "string"}
            }
        },
        "controllers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 100003},
                "data": {},
                "message": {"type": "string", "example": "validation failed"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "admin@tumaini.example"},
                "password": {"type": "string", "example": "change-me"}
            }
        },
        "models.BookingRequest": {
            "type": "object",
            "required": ["email", "name", "participants", "phone", "tourId"],
            "properties": {
                "date": {"type": "string", "example": "2025-06-01"},
                "email": {"type": "string", "example": "amina@example.com"},
                "message": {"type": "string"},
                "name": {"type": "string", "example": "Amina Otieno"},
                "participants": {"type": "integer", "example": 2},
                "phone": {"type": "string", "example": "+254700000000"},
                "tourId": {"type": "integer", "example": 1}
            }
        },
        "models.ContactMessage": {
            "type": "object",
            "required": ["email", "message", "name"],
            "properties": {
                "email": {"type": "string", "example": "brian@example.com"},
                "message": {"type": "string"},
                "name": {"type": "string", "example": "Brian Kamau"},
                "subject": {"type": "string", "example": "Group discounts"}
            }
        },
        "models.ItineraryEntry": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "models.TourInput": {
            "type": "object",
            "properties": {
                "booking": {"type": "string", "example": "0"},
                "date": {"type": "string", "example": "2025-06-01"},
                "description": {"type": "string"},
                "difficulty": {"type": "string", "example": "Medium"},
                "exclusive": {"type": "array", "items": {"type": "string"}},
                "hikeType": {"type": "string", "example": "Day Hike"},
                "images": {"type": "array", "items": {"type": "string"}},
                "inclusive": {"type": "array", "items": {"type": "string"}},
                "itinerary": {"type": "array", "items": {"$ref": "#/definitions/models.ItineraryEntry"}},
                "level": {"type": "string", "example": "Intermediate"},
                "location": {"type": "string", "example": "Mt Kenya"},
                "price": {"type": "string", "example": "15000"},
                "rating": {"type": "string", "example": "5"},
                "summary": {"type": "string"},
                "tourName": {"type": "string", "example": "Mt Kenya Trek"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "description": "Session cookie set by POST /admin/login",
            "type": "apiKey",
            "name": "admin_token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Tumaini Tours API",
	Description:      "Tour catalogue, admin tour management, image assets and booking inquiries for Tumaini Tours",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
