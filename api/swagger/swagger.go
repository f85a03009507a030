package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Agenda API",
        "description": "Backend for the Notas Claras student agenda",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Registration and token flows"},
        {"name": "Profile", "description": "Academic profile"},
        {"name": "Homework", "description": "Homework management"},
        {"name": "Exams", "description": "Exam management"},
        {"name": "Subjects", "description": "Subjects with schedule and professor"},
        {"name": "Professors", "description": "Professor directory"},
        {"name": "Search", "description": "Unified fuzzy search over homework and exams"},
        {"name": "Dashboard", "description": "Home screen counters"},
        {"name": "Calendar", "description": "Month grid and day lookups"},
        {"name": "Export", "description": "Agenda downloads"}
    ],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Create an account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Email taken"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate refresh token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Expired or revoked"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke refresh token",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get profile with completion flag",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Update profile fields",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/homework": {
            "get": {"tags": ["Homework"], "summary": "List homework", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Homework"], "summary": "Create homework", "responses": {"201": {"description": "Created"}}}
        },
        "/homework/{id}": {
            "get": {"tags": ["Homework"], "summary": "Get homework", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "patch": {"tags": ["Homework"], "summary": "Partial update", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Homework"], "summary": "Delete homework", "responses": {"204": {"description": "No Content"}}}
        },
        "/homework/{id}/toggle": {
            "patch": {"tags": ["Homework"], "summary": "Toggle completed", "responses": {"200": {"description": "OK"}}}
        },
        "/exams": {
            "get": {"tags": ["Exams"], "summary": "List exams", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Exams"], "summary": "Create exam", "responses": {"201": {"description": "Created"}}}
        },
        "/exams/{id}": {
            "get": {"tags": ["Exams"], "summary": "Get exam", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "patch": {"tags": ["Exams"], "summary": "Partial update", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Exams"], "summary": "Delete exam", "responses": {"204": {"description": "No Content"}}}
        },
        "/exams/{id}/toggle": {
            "patch": {"tags": ["Exams"], "summary": "Toggle completed", "responses": {"200": {"description": "OK"}}}
        },
        "/subjects": {
            "get": {"tags": ["Subjects"], "summary": "List subjects", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Subjects"], "summary": "Create subject", "responses": {"201": {"description": "Created"}}}
        },
        "/subjects/{id}": {
            "get": {"tags": ["Subjects"], "summary": "Get subject", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "patch": {"tags": ["Subjects"], "summary": "Partial update", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Subjects"], "summary": "Delete subject", "responses": {"204": {"description": "No Content"}}}
        },
        "/professors": {
            "get": {"tags": ["Professors"], "summary": "List professors", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Professors"], "summary": "Create professor", "responses": {"201": {"description": "Created"}}}
        },
        "/professors/{id}": {
            "get": {"tags": ["Professors"], "summary": "Get professor", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "patch": {"tags": ["Professors"], "summary": "Partial update", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Professors"], "summary": "Delete professor", "responses": {"204": {"description": "No Content"}}}
        },
        "/search": {
            "get": {
                "tags": ["Search"],
                "summary": "Fuzzy search with filters, sorting and facets",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"},
                    {"name": "sortBy", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard": {
            "get": {"tags": ["Dashboard"], "summary": "Counters and upcoming events", "responses": {"200": {"description": "OK"}}}
        },
        "/calendar/{year}/{month}": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Sunday-first month grid",
                "parameters": [
                    {"name": "year", "in": "path", "type": "integer", "required": true},
                    {"name": "month", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/day": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Events on one day",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/export/agenda": {
            "get": {
                "tags": ["Export"],
                "summary": "Download agenda as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "File"}}
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
