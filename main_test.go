package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cricketscrapper/config"
	"cricketscrapper/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildServesLiveness(t *testing.T) {
	for _, key := range []string{"FETCH_MODE", "NEWS_BACKEND", "SCHEMA_FILE", "NEWS_CACHE_TTL", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}
	cfg, err := config.Load()
	require.NoError(t, err)

	handler, cleanup, err := build(cfg, logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var msg string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Hello! Thank you for checking out. I am working !!", msg)
}

func TestBuildRejectsBadSchemaFile(t *testing.T) {
	_, _, err := build(config.Config{SchemaFile: "/nonexistent/schemas.yaml"}, logging.NewNop())
	assert.Error(t, err)
}
