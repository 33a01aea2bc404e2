package httpapi

import "net/http"

// The API description is declared statically and served as-is; requests are
// not validated against it at runtime.

const exampleID = "d290f1ee-6c54-4b01-90e6-d701748f0851"

var openAPIDocument = map[string]interface{}{
	"openapi": "3.0.3",
	"info": map[string]interface{}{
		"title":   "Todo API",
		"version": "0.3.0",
	},
	"paths": map[string]interface{}{
		"/todos": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "List todos",
				"operationId": "listTodos",
				"responses": map[string]interface{}{
					"200": map[string]interface{}{
						"description": "List todos",
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{
									"type":  "array",
									"items": schemaRef("Todo"),
								},
							},
						},
					},
				},
			},
			"post": map[string]interface{}{
				"summary":     "Create a todo",
				"operationId": "createTodo",
				"requestBody": jsonBody("NewTodo"),
				"responses": map[string]interface{}{
					"201": jsonResponse("Created", "Todo"),
					"500": map[string]interface{}{"description": "Store failure"},
				},
			},
		},
		"/todos/{id}": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "Get a todo",
				"operationId": "getTodo",
				"parameters":  []interface{}{idParameter()},
				"responses": map[string]interface{}{
					"200": jsonResponse("Get todo", "Todo"),
					"404": map[string]interface{}{"description": "Not found"},
				},
			},
			"put": map[string]interface{}{
				"summary":     "Update a todo",
				"operationId": "updateTodo",
				"parameters":  []interface{}{idParameter()},
				"requestBody": jsonBody("UpdateTodo"),
				"responses": map[string]interface{}{
					"200": jsonResponse("Updated", "Todo"),
					"404": map[string]interface{}{"description": "Not found"},
				},
			},
			"delete": map[string]interface{}{
				"summary":     "Delete a todo",
				"operationId": "deleteTodo",
				"parameters":  []interface{}{idParameter()},
				"responses": map[string]interface{}{
					"204": map[string]interface{}{"description": "Deleted"},
					"404": map[string]interface{}{"description": "Not found"},
				},
			},
		},
	},
	"components": map[string]interface{}{
		"schemas": map[string]interface{}{
			"Todo": map[string]interface{}{
				"type":     "object",
				"required": []string{"id", "title", "completed"},
				"properties": map[string]interface{}{
					"id":        map[string]interface{}{"type": "string", "format": "uuid", "example": exampleID},
					"title":     map[string]interface{}{"type": "string", "example": "buy milk"},
					"completed": map[string]interface{}{"type": "boolean", "example": false},
				},
			},
			"NewTodo": map[string]interface{}{
				"type":     "object",
				"required": []string{"title"},
				"properties": map[string]interface{}{
					"title": map[string]interface{}{"type": "string", "example": "buy milk"},
				},
			},
			"UpdateTodo": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title":     map[string]interface{}{"type": "string", "nullable": true, "example": "buy oat milk"},
					"completed": map[string]interface{}{"type": "boolean", "nullable": true, "example": true},
				},
			},
		},
	},
}

func schemaRef(name string) map[string]interface{} {
	return map[string]interface{}{"$ref": "#/components/schemas/" + name}
}

func jsonBody(schema string) map[string]interface{} {
	return map[string]interface{}{
		"required": true,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{"schema": schemaRef(schema)},
		},
	}
}

func jsonResponse(description, schema string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{"schema": schemaRef(schema)},
		},
	}
}

func idParameter() map[string]interface{} {
	return map[string]interface{}{
		"name":        "id",
		"in":          "path",
		"required":    true,
		"description": "Todo id",
		"schema":      map[string]interface{}{"type": "string", "format": "uuid"},
		"example":     exampleID,
	}
}

func (h *handler) openAPIDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, openAPIDocument)
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Todo API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function () {
      SwaggerUIBundle({url: "/api-doc/openapi.json", dom_id: "#swagger-ui"});
    };
  </script>
</body>
</html>
`

func (h *handler) swaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(swaggerUIPage))
}
