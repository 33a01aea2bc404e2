package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlabs/todo-api/internal/app/storage/memory"
)

func TestOpenAPIDocument(t *testing.T) {
	handler := newTestHandler(t, memory.New())

	rec := doRequest(t, handler, http.MethodGet, "/api-doc/openapi.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Todo API", info["title"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, paths, "/todos")
	require.Contains(t, paths, "/todos/{id}")

	collection := paths["/todos"].(map[string]any)
	assert.Contains(t, collection, "get")
	assert.Contains(t, collection, "post")

	item := paths["/todos/{id}"].(map[string]any)
	assert.Contains(t, item, "get")
	assert.Contains(t, item, "put")
	assert.Contains(t, item, "delete")

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	for _, name := range []string{"Todo", "NewTodo", "UpdateTodo"} {
		assert.Contains(t, schemas, name)
	}
}

func TestSwaggerUI(t *testing.T) {
	handler := newTestHandler(t, memory.New())

	rec := doRequest(t, handler, http.MethodGet, "/swagger-ui", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "/api-doc/openapi.json")
}
