package routes

import (
	"net/http"
	"testing"

	"github.com/Polceze/taskman/config"
	"github.com/Polceze/taskman/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthRoutes(t *testing.T) {
	router := testutils.NewTestRouter()
	RegisterHealthRoutes(router, config.Config{AppName: "TaskMan", AppVersion: "1.0.0"})

	w := performRequest(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"service":"TaskMan","version":"1.0.0","status":"healthy"}`, w.Body.String())

	w = performRequest(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
