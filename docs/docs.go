package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "description": "REST API for asynchronous TCP port scans.",
    "title": "Network Security Scanner API",
    "version": "1.0"
  },
  "host": "localhost:8080",
  "basePath": "/api/v1",
  "schemes": [
    "http"
  ],
  "securityDefinitions": {
    "ApiKeyAuth": {
      "type": "apiKey",
      "name": "Authorization",
      "in": "header"
    }
  },
  "paths": {
    "/scans": {
      "post": {
        "consumes": [
          "application/json"
        ],
        "produces": [
          "application/json"
        ],
        "summary": "Create a new scan task",
        "description": "Submit a scan definition and let the service execute it asynchronously. The handler validates input, persists the task, and enqueues it for background workers before returning a UUID. Clients must poll GET /scans/{id} to observe status transitions (pending, running, completed, failed).",
        "operationId": "createScan",
        "tags": [
          "Scans"
        ],
        "security": [
          {
            "ApiKeyAuth": []
          }
        ],
        "parameters": [
          {
            "description": "Scan request parameters",
            "name": "scanRequest",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateScanRequest"
            }
          }
        ],
        "responses": {
          "202": {
            "description": "Scan accepted. Poll GET /scans/{id} to track progress.",
            "schema": {
              "$ref": "#/definitions/ScanAcceptedResponse"
            }
          },
          "400": {
            "description": "Malformed JSON body or failed validation.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "401": {
            "description": "Missing or incorrect API key.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "429": {
            "description": "Rate limit exceeded for the calling client.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "500": {
            "description": "Internal error while persisting or queueing the task.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          }
        }
      }
    },
    "/scans/{id}": {
      "get": {
        "produces": [
          "application/json"
        ],
        "summary": "Get scan status and results",
        "description": "Retrieve a live snapshot of a scan task. Supply the UUID obtained from POST /scans and poll this endpoint until the lifecycle reaches completed. While the task is pending or running the report field stays empty.",
        "operationId": "getScan",
        "tags": [
          "Scans"
        ],
        "security": [
          {
            "ApiKeyAuth": []
          }
        ],
        "parameters": [
          {
            "type": "string",
            "description": "Scan Task ID (UUID v4)",
            "name": "id",
            "in": "path",
            "required": true
          }
        ],
        "responses": {
          "200": {
            "description": "Current task snapshot including the report when completed.",
            "schema": {
              "$ref": "#/definitions/ScanTask"
            }
          },
          "400": {
            "description": "Malformed task identifier.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "401": {
            "description": "Missing or incorrect API key.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "404": {
            "description": "Task with the provided ID does not exist.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "429": {
            "description": "Rate limit exceeded for the calling client.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          },
          "500": {
            "description": "Internal error when loading the task.",
            "schema": {
              "$ref": "#/definitions/ErrorResponse"
            }
          }
        }
      }
    }
  },
  "definitions": {
    "CreateScanRequest": {
      "type": "object",
      "required": [
        "target"
      ],
      "properties": {
        "target": {
          "type": "string",
          "example": "scanme.nmap.org"
        },
        "ports": {
          "type": "string",
          "example": "443,8443,10000-10100"
        },
        "threads": {
          "type": "integer",
          "example": 100
        },
        "timeout_seconds": {
          "type": "number",
          "example": 0.5
        },
        "banner": {
          "type": "boolean",
          "example": true
        }
      },
      "additionalProperties": false
    },
    "ScanAcceptedResponse": {
      "type": "object",
      "properties": {
        "id": {
          "type": "string",
          "example": "a3f5c62e-1234-4f72-a84a-1c2d3e4f5678"
        },
        "status": {
          "type": "string",
          "example": "pending"
        }
      },
      "additionalProperties": false
    },
    "ErrorResponse": {
      "type": "object",
      "properties": {
        "error": {
          "type": "string",
          "example": "task not found"
        }
      },
      "additionalProperties": false
    },
    "ProbeResult": {
      "type": "object",
      "properties": {
        "port": {
          "type": "integer",
          "example": 22
        },
        "service": {
          "type": "string",
          "example": "SSH"
        },
        "banner": {
          "type": "string",
          "example": "SSH-2.0-OpenSSH_9.6"
        }
      },
      "additionalProperties": false
    },
    "Report": {
      "type": "object",
      "properties": {
        "target": {
          "type": "string",
          "example": "scanme.nmap.org"
        },
        "ip": {
          "type": "string",
          "example": "45.33.32.156"
        },
        "start_time": {
          "type": "string",
          "format": "date-time"
        },
        "end_time": {
          "type": "string",
          "format": "date-time"
        },
        "duration_seconds": {
          "type": "number",
          "example": 2.31
        },
        "open_ports": {
          "type": "array",
          "items": {
            "$ref": "#/definitions/ProbeResult"
          }
        }
      },
      "additionalProperties": false
    },
    "ScanTask": {
      "type": "object",
      "properties": {
        "id": {
          "type": "string",
          "example": "a3f5c62e-1234-4f72-a84a-1c2d3e4f5678"
        },
        "status": {
          "type": "string",
          "example": "pending"
        },
        "target": {
          "type": "string",
          "example": "scanme.nmap.org"
        },
        "ports": {
          "type": "string",
          "example": "22,80,443,1000-1100"
        },
        "threads": {
          "type": "integer",
          "example": 100
        },
        "timeout_seconds": {
          "type": "number",
          "example": 0.5
        },
        "banner": {
          "type": "boolean",
          "example": false
        },
        "report": {
          "$ref": "#/definitions/Report"
        },
        "created_at": {
          "type": "string",
          "format": "date-time"
        },
        "completed_at": {
          "type": "string",
          "format": "date-time"
        },
        "error": {
          "type": "string",
          "example": "unable to resolve target"
        }
      },
      "additionalProperties": false
    }
  }
}
`

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

type swaggerDoc struct{}

func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}
