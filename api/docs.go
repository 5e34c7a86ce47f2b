// Package api holds the swagger documentation of the dashboard API.
//
// The template is regenerated from the handler annotations with
// swag init -g pkg/router/router.go -o api --outputTypes go
package api

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
                "description": "Entrypoint of the dashboard API, linking to documentation, health, version and v1",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Links to the auth, settings, overview and resource endpoints of v1",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts": {
            "get": {
                "description": "Returns the accounts screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "List accounts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new account and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Create account",
                "parameters": [
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AccountEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Account-models_Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts/{id}": {
            "put": {
                "description": "Replaces a account and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Update account",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the account",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AccountEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Account-models_Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a account and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Delete account",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the account",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Account-models_Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the account",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "description": "Signs in with email and password. The bearer token is kept by the dashboard.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Login"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Auth"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "description": "Removes the stored session token",
                "tags": [
                    "Auth"
                ],
                "summary": "Sign out",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Auth"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "description": "Registers a new user. If the backend answers with a token, the user is signed in right away.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign up",
                "parameters": [
                    {
                        "description": "Registration",
                        "name": "registration",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Registration"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Auth"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budgets": {
            "get": {
                "description": "Returns the budgets screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "List budgets",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Budget"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new budget and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budget",
                "parameters": [
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Budget-models_Budget"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budgets/{id}": {
            "put": {
                "description": "Replaces a budget and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Budget-models_Budget"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a budget and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Delete budget",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Budget-models_Budget"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns the categories screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "List categories",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new category and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Create category",
                "parameters": [
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Category-models_Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories/{id}": {
            "put": {
                "description": "Replaces a category and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the category",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Category-models_Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a category and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the category",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Category-models_Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the category",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/debts": {
            "get": {
                "description": "Returns the debts screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Debts"
                ],
                "summary": "List debts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Debt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new debt and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Debts"
                ],
                "summary": "Create debt",
                "parameters": [
                    {
                        "description": "Debt",
                        "name": "debt",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DebtEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Debt-models_Debt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Debts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/debts/{id}": {
            "put": {
                "description": "Replaces a debt and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Debts"
                ],
                "summary": "Update debt",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the debt",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Debt",
                        "name": "debt",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DebtEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Debt-models_Debt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a debt and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Debts"
                ],
                "summary": "Delete debt",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the debt",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Debt-models_Debt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Debts"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the debt",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/debts/{id}/payments": {
            "post": {
                "description": "Records a payment towards the debt and returns the debt with its updated balance",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Debts"
                ],
                "summary": "Pay debt",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the debt",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment",
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DebtPayment"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Debt-models_Debt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Debts"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the debt",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/goals": {
            "get": {
                "description": "Returns the goals screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "List goals",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Goal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new goal and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Create goal",
                "parameters": [
                    {
                        "description": "Goal",
                        "name": "goal",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.GoalEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Goal-models_Goal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/goals/{id}": {
            "put": {
                "description": "Replaces a goal and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Update goal",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the goal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Goal",
                        "name": "goal",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.GoalEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Goal-models_Goal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a goal and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Delete goal",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the goal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Goal-models_Goal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the goal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/investments": {
            "get": {
                "description": "Returns the investments screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "List investments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new investment and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Create investment",
                "parameters": [
                    {
                        "description": "Investment",
                        "name": "investment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.InvestmentEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Investment-models_Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Investments"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/investments/{id}": {
            "put": {
                "description": "Replaces a investment and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Update investment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the investment",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Investment",
                        "name": "investment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.InvestmentEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Investment-models_Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a investment and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Delete investment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the investment",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Investment-models_Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Investments"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the investment",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/loans": {
            "get": {
                "description": "Returns the loans screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Loans"
                ],
                "summary": "List loans",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Loan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new loan and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Loans"
                ],
                "summary": "Create loan",
                "parameters": [
                    {
                        "description": "Loan",
                        "name": "loan",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoanEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Loan-models_Loan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Loans"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/loans/{id}": {
            "put": {
                "description": "Replaces a loan and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Loans"
                ],
                "summary": "Update loan",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the loan",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Loan",
                        "name": "loan",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoanEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Loan-models_Loan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a loan and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Loans"
                ],
                "summary": "Delete loan",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the loan",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Loan-models_Loan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Loans"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the loan",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/overview": {
            "get": {
                "description": "Returns all lists as the backend reports them together with the debts due within 30 days and the newest transactions",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Overview"
                ],
                "summary": "Overview",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Overview"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Overview"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/settings/password": {
            "post": {
                "description": "Replaces the password of the signed in user",
                "tags": [
                    "Settings"
                ],
                "summary": "Change password",
                "parameters": [
                    {
                        "description": "Password change",
                        "name": "password",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PasswordChange"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Settings"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/settings/profile": {
            "get": {
                "description": "Returns the profile of the signed in user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Get profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "put": {
                "description": "Changes the name and the preferred currency of the signed in user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Update profile",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ProfileEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Settings"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns the transactions screen. Lookups that fail to load are reported as warnings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "List transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name, supports * wildcards",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Field to sort by",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/screens.Screen-models_Transaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new transaction and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transaction",
                "parameters": [
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Transaction-models_Transaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/transfer": {
            "post": {
                "description": "Moves money between two accounts. The transactions created by the backend are returned, the list may be empty.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Transfer",
                "parameters": [
                    {
                        "description": "Transfer",
                        "name": "transfer",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Transfer"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-array_models_Transaction-models_Transaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "put": {
                "description": "Replaces a transaction and returns it together with the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the transaction",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Transaction-models_Transaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction and returns the reloaded screen",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the transaction",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.Response-models_Transaction-models_Transaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID of the transaction",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version of the running dashboard",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "apierrors.Category": {
            "type": "string",
            "enum": [
                "NetworkError",
                "AuthError",
                "ValidationError",
                "ServerMessageError",
                "ServerError",
                "ShapeError",
                "LocalError"
            ],
            "x-enum-varnames": [
                "NetworkError",
                "AuthError",
                "ValidationError",
                "ServerMessageError",
                "ServerError",
                "ShapeError",
                "LocalError"
            ]
        },
        "controllers.Response-array_models_Transaction-models_Transaction": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Transaction"
                }
            }
        },
        "controllers.Response-models_Account-models_Account": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Account"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Account"
                }
            }
        },
        "controllers.Response-models_Budget-models_Budget": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Budget"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Budget"
                }
            }
        },
        "controllers.Response-models_Category-models_Category": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Category"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Category"
                }
            }
        },
        "controllers.Response-models_Debt-models_Debt": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Debt"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Debt"
                }
            }
        },
        "controllers.Response-models_Goal-models_Goal": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Goal"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Goal"
                }
            }
        },
        "controllers.Response-models_Investment-models_Investment": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Investment"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Investment"
                }
            }
        },
        "controllers.Response-models_Loan-models_Loan": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Loan"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Loan"
                }
            }
        },
        "controllers.Response-models_Transaction-models_Transaction": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Transaction"
                },
                "screen": {
                    "$ref": "#/definitions/screens.Screen-models_Transaction"
                }
            }
        },
        "controllers.UserResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "category": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/apierrors.Category"
                        }
                    ],
                    "example": "LocalError"
                },
                "error": {
                    "type": "string",
                    "example": "budgetName: is required"
                },
                "redirect": {
                    "$ref": "#/definitions/httputil.Redirect"
                }
            }
        },
        "httputil.Redirect": {
            "type": "object",
            "properties": {
                "after": {
                    "description": "Delay in milliseconds",
                    "type": "integer",
                    "example": 2000
                },
                "location": {
                    "type": "string",
                    "example": "/login"
                }
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number",
                    "example": 1520.75
                },
                "bankName": {
                    "type": "string",
                    "example": "Community Credit Union"
                },
                "createdAt": {
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "description": "ISO 4217 code",
                    "type": "string",
                    "example": "USD"
                },
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "example": "Checking"
                },
                "type": {
                    "type": "string",
                    "example": "Checking"
                }
            }
        },
        "models.AccountEditable": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "string",
                    "example": "1520.75"
                },
                "bankName": {
                    "type": "string",
                    "example": "Community Credit Union"
                },
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "example": "Checking"
                },
                "type": {
                    "type": "string",
                    "example": "Checking"
                }
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "alertThreshold": {
                    "type": "number",
                    "example": 80
                },
                "amount": {
                    "type": "number",
                    "example": 150.5
                },
                "categoryId": {
                    "type": "integer",
                    "example": 3
                },
                "endDate": {
                    "type": "string",
                    "example": "2024-05-31"
                },
                "id": {
                    "type": "integer",
                    "example": 7
                },
                "name": {
                    "type": "string",
                    "example": "Food"
                },
                "period": {
                    "type": "string",
                    "enum": [
                        "Daily",
                        "Weekly",
                        "Monthly",
                        "Yearly"
                    ],
                    "example": "Monthly"
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-05-01"
                }
            }
        },
        "models.BudgetEditable": {
            "type": "object",
            "properties": {
                "alertThreshold": {
                    "type": "string",
                    "example": "80"
                },
                "amount": {
                    "type": "string",
                    "example": "150.5"
                },
                "categoryId": {
                    "type": "string",
                    "example": "3"
                },
                "endDate": {
                    "type": "string",
                    "example": "2024-05-31"
                },
                "name": {
                    "type": "string",
                    "example": "Food"
                },
                "period": {
                    "type": "string",
                    "example": "Monthly"
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-05-01"
                }
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#EF4444"
                },
                "description": {
                    "type": "string",
                    "example": "Food and household supplies"
                },
                "icon": {
                    "type": "string",
                    "example": "tag"
                },
                "id": {
                    "type": "integer",
                    "example": 3
                },
                "isDefault": {
                    "type": "boolean",
                    "example": false
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ],
                    "example": "expense"
                }
            }
        },
        "models.CategoryEditable": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#EF4444"
                },
                "description": {
                    "type": "string",
                    "example": "Food and household supplies"
                },
                "icon": {
                    "type": "string",
                    "example": "tag"
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                },
                "type": {
                    "type": "string",
                    "example": "expense"
                }
            }
        },
        "models.Debt": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "integer",
                    "example": 1
                },
                "creditor": {
                    "type": "string",
                    "example": "First Bank"
                },
                "currentBalance": {
                    "type": "number",
                    "example": 3200.4
                },
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "interestRate": {
                    "description": "Annual rate in percent",
                    "type": "number",
                    "example": 19.99
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "minimumPayment": {
                    "type": "number",
                    "example": 75
                },
                "name": {
                    "type": "string",
                    "example": "Visa card"
                },
                "nextPaymentDate": {
                    "type": "string",
                    "example": "2024-06-15"
                },
                "originalAmount": {
                    "type": "number",
                    "example": 5000
                },
                "paymentDueDay": {
                    "type": "integer",
                    "maximum": 31,
                    "minimum": 1,
                    "example": 15
                },
                "payoffDate": {
                    "type": "string",
                    "example": "2026-01-15"
                },
                "type": {
                    "type": "string",
                    "example": "CreditCard"
                }
            }
        },
        "models.DebtEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "example": "1"
                },
                "creditor": {
                    "type": "string",
                    "example": "First Bank"
                },
                "currentBalance": {
                    "type": "string",
                    "example": "3200.40"
                },
                "interestRate": {
                    "type": "string",
                    "example": "19.99"
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "minimumPayment": {
                    "type": "string",
                    "example": "75"
                },
                "name": {
                    "type": "string",
                    "example": "Visa card"
                },
                "nextPaymentDate": {
                    "type": "string",
                    "example": "2024-06-15"
                },
                "originalAmount": {
                    "type": "string",
                    "example": "5000"
                },
                "paymentDueDay": {
                    "type": "string",
                    "example": "15"
                },
                "payoffDate": {
                    "type": "string",
                    "example": "2026-01-15"
                },
                "type": {
                    "type": "string",
                    "example": "CreditCard"
                }
            }
        },
        "models.DebtPayment": {
            "type": "object",
            "properties": {
                "paymentAmount": {
                    "type": "string",
                    "example": "75"
                },
                "paymentDate": {
                    "type": "string",
                    "example": "2024-05-15"
                }
            }
        },
        "models.Goal": {
            "type": "object",
            "properties": {
                "currentAmount": {
                    "description": "Progress as reported by the backend",
                    "type": "number",
                    "example": 1250
                },
                "description": {
                    "type": "string",
                    "example": "Three months of expenses"
                },
                "id": {
                    "type": "integer",
                    "example": 2
                },
                "name": {
                    "type": "string",
                    "example": "Emergency fund"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "Low",
                        "Medium",
                        "High"
                    ],
                    "example": "Medium"
                },
                "targetAmount": {
                    "type": "number",
                    "example": 6000
                },
                "targetDate": {
                    "type": "string",
                    "example": "2025-12-31"
                },
                "type": {
                    "type": "string",
                    "example": "Savings"
                }
            }
        },
        "models.GoalEditable": {
            "type": "object",
            "properties": {
                "currentAmount": {
                    "type": "string",
                    "example": "1250"
                },
                "description": {
                    "type": "string",
                    "example": "Three months of expenses"
                },
                "name": {
                    "type": "string",
                    "example": "Emergency fund"
                },
                "priority": {
                    "type": "string",
                    "example": "Medium"
                },
                "targetAmount": {
                    "type": "string",
                    "example": "6000"
                },
                "targetDate": {
                    "type": "string",
                    "example": "2025-12-31"
                },
                "type": {
                    "type": "string",
                    "example": "Savings"
                }
            }
        },
        "models.Investment": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "integer",
                    "example": 1
                },
                "broker": {
                    "type": "string",
                    "example": "Example Brokerage"
                },
                "currentPrice": {
                    "type": "number",
                    "example": 104.75
                },
                "currentValue": {
                    "type": "number",
                    "example": 1309.38
                },
                "id": {
                    "type": "integer",
                    "example": 9
                },
                "name": {
                    "type": "string",
                    "example": "World index fund"
                },
                "purchaseDate": {
                    "type": "string",
                    "example": "2023-11-02"
                },
                "purchasePrice": {
                    "type": "number",
                    "example": 98.2
                },
                "quantity": {
                    "type": "number",
                    "example": 12.5
                },
                "symbol": {
                    "type": "string",
                    "example": "VT"
                },
                "totalInvested": {
                    "type": "number",
                    "example": 1227.5
                },
                "type": {
                    "type": "string",
                    "example": "ETF"
                }
            }
        },
        "models.InvestmentEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "example": "1"
                },
                "broker": {
                    "type": "string",
                    "example": "Example Brokerage"
                },
                "currentPrice": {
                    "type": "string",
                    "example": "104.75"
                },
                "name": {
                    "type": "string",
                    "example": "World index fund"
                },
                "purchaseDate": {
                    "type": "string",
                    "example": "2023-11-02"
                },
                "purchasePrice": {
                    "type": "string",
                    "example": "98.20"
                },
                "quantity": {
                    "type": "string",
                    "example": "12.5"
                },
                "symbol": {
                    "type": "string",
                    "example": "VT"
                },
                "type": {
                    "type": "string",
                    "example": "ETF"
                }
            }
        },
        "models.Loan": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "integer",
                    "example": 1
                },
                "borrower": {
                    "type": "string",
                    "example": "Sam Doe"
                },
                "borrowerEmail": {
                    "type": "string",
                    "example": "sam@example.com"
                },
                "borrowerPhone": {
                    "type": "string",
                    "example": "+1 555 0100"
                },
                "currentBalance": {
                    "type": "number",
                    "example": 350
                },
                "dueDate": {
                    "type": "string",
                    "example": "2024-12-01"
                },
                "id": {
                    "type": "integer",
                    "example": 5
                },
                "interestRate": {
                    "type": "number",
                    "example": 0
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "example": "Car repair for Sam"
                },
                "originalAmount": {
                    "type": "number",
                    "example": 800
                },
                "paymentDueDay": {
                    "type": "integer",
                    "maximum": 31,
                    "minimum": 1,
                    "example": 1
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-02-01"
                },
                "type": {
                    "type": "string",
                    "example": "Personal"
                }
            }
        },
        "models.LoanEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "example": "1"
                },
                "borrower": {
                    "type": "string",
                    "example": "Sam Doe"
                },
                "borrowerEmail": {
                    "type": "string",
                    "example": "sam@example.com"
                },
                "borrowerPhone": {
                    "type": "string",
                    "example": "+1 555 0100"
                },
                "currentBalance": {
                    "type": "string",
                    "example": "350"
                },
                "dueDate": {
                    "type": "string",
                    "example": "2024-12-01"
                },
                "interestRate": {
                    "type": "string",
                    "example": "0"
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "example": "Car repair for Sam"
                },
                "originalAmount": {
                    "type": "string",
                    "example": "800"
                },
                "paymentDueDay": {
                    "type": "string",
                    "example": "1"
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-02-01"
                },
                "type": {
                    "type": "string",
                    "example": "Personal"
                }
            }
        },
        "models.Login": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "jo@example.com"
                },
                "password": {
                    "type": "string",
                    "example": "correct horse battery staple"
                }
            }
        },
        "models.PasswordChange": {
            "type": "object",
            "properties": {
                "currentPassword": {
                    "type": "string",
                    "example": "correct horse battery staple"
                },
                "newPassword": {
                    "type": "string",
                    "example": "another horse battery staple"
                }
            }
        },
        "models.ProfileEditable": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "example": "EUR"
                },
                "firstName": {
                    "type": "string",
                    "example": "Jo"
                },
                "lastName": {
                    "type": "string",
                    "example": "Doe"
                }
            }
        },
        "models.Registration": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "jo@example.com"
                },
                "firstName": {
                    "type": "string",
                    "example": "Jo"
                },
                "lastName": {
                    "type": "string",
                    "example": "Doe"
                },
                "password": {
                    "type": "string",
                    "example": "correct horse battery staple"
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "integer",
                    "example": 1
                },
                "amount": {
                    "type": "number",
                    "example": 42.1
                },
                "categoryId": {
                    "type": "integer",
                    "example": 3
                },
                "date": {
                    "type": "string",
                    "example": "2024-05-14"
                },
                "description": {
                    "type": "string",
                    "example": "Weekly groceries"
                },
                "id": {
                    "type": "integer",
                    "example": 120
                },
                "isRecurring": {
                    "type": "boolean",
                    "example": false
                },
                "merchant": {
                    "type": "string",
                    "example": "Corner Market"
                },
                "recurringFrequency": {
                    "type": "string",
                    "enum": [
                        "Daily",
                        "Weekly",
                        "Monthly",
                        "Yearly"
                    ],
                    "example": "Weekly"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "food",
                        "weekly"
                    ]
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ],
                    "example": "expense"
                }
            }
        },
        "models.TransactionEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "example": "1"
                },
                "amount": {
                    "type": "string",
                    "example": "42.10"
                },
                "categoryId": {
                    "type": "string",
                    "example": "3"
                },
                "date": {
                    "type": "string",
                    "example": "2024-05-14"
                },
                "description": {
                    "type": "string",
                    "example": "Weekly groceries"
                },
                "isRecurring": {
                    "type": "boolean",
                    "example": false
                },
                "merchant": {
                    "type": "string",
                    "example": "Corner Market"
                },
                "recurringFrequency": {
                    "type": "string",
                    "example": "Weekly"
                },
                "tags": {
                    "description": "Comma separated",
                    "type": "string",
                    "example": "food, weekly"
                },
                "type": {
                    "type": "string",
                    "example": "expense"
                }
            }
        },
        "models.Transfer": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "250"
                },
                "date": {
                    "type": "string",
                    "example": "2024-05-14"
                },
                "description": {
                    "type": "string",
                    "example": "Move to savings"
                },
                "fromAccountId": {
                    "type": "string",
                    "example": "1"
                },
                "toAccountId": {
                    "type": "string",
                    "example": "2"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "email": {
                    "type": "string",
                    "example": "jo@example.com"
                },
                "firstName": {
                    "type": "string",
                    "example": "Jo"
                },
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "lastName": {
                    "type": "string",
                    "example": "Doe"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "description": "Swagger API documentation",
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "description": "Endpoint returning the health of the API",
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "v1": {
                    "description": "List endpoint for all v1 endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "description": "Endpoint returning the version of the dashboard",
                    "type": "string",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "accounts": {
                    "description": "URL of account list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/accounts"
                },
                "budgets": {
                    "description": "URL of budget list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets"
                },
                "categories": {
                    "description": "URL of category list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/categories"
                },
                "debts": {
                    "description": "URL of debt list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/debts"
                },
                "goals": {
                    "description": "URL of goal list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/goals"
                },
                "investments": {
                    "description": "URL of investment list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/investments"
                },
                "loans": {
                    "description": "URL of loan list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/loans"
                },
                "login": {
                    "description": "URL of the sign in endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/auth/login"
                },
                "logout": {
                    "description": "URL of the sign out endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/auth/logout"
                },
                "overview": {
                    "description": "URL of the overview screen",
                    "type": "string",
                    "example": "https://example.com/api/v1/overview"
                },
                "password": {
                    "description": "URL of the change password endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/settings/password"
                },
                "profile": {
                    "description": "URL of the profile endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/settings/profile"
                },
                "register": {
                    "description": "URL of the sign up endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/auth/register"
                },
                "transactions": {
                    "description": "URL of transaction list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/transactions"
                },
                "transfer": {
                    "description": "URL of the transfer endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/transactions/transfer"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.V1Links"
                        }
                    ]
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the dashboard",
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "screens.Overview": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "budgets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Budget"
                    }
                },
                "goals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Goal"
                    }
                },
                "investments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Investment"
                    }
                },
                "loans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Loan"
                    }
                },
                "recentTransactions": {
                    "description": "The five newest transactions",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "upcomingPayments": {
                    "description": "Active debts due within 30 days, soonest first",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Debt"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Account": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Budget": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Budget"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Category": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Debt": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Debt"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Goal": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Goal"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Investment": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Investment"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Loan": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Loan"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Screen-models_Transaction": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/screens.Warning"
                    }
                }
            }
        },
        "screens.Warning": {
            "type": "object",
            "properties": {
                "category": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/apierrors.Category"
                        }
                    ],
                    "example": "NetworkError"
                },
                "message": {
                    "type": "string",
                    "example": "Unable to reach the server. Please check your internet connection and try again."
                },
                "part": {
                    "type": "string",
                    "example": "categories"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
