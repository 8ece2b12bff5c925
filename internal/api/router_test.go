package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymcoach/platform/internal/service"
	"gymcoach/platform/internal/storage"
	"gymcoach/platform/internal/store"
	"gymcoach/platform/internal/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full route table over the given store, the
// same way main does, minus the HTTP server.
func newTestRouter(st store.Store, files storage.FileStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, st, "gym_coach_test", true,
		service.NewUserService(st),
		service.NewPlanService(st),
		service.NewChatService(st),
		service.NewLogService(st),
		service.NewDashboardService(st),
		files,
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// createUser posts a user and returns the generated id.
func createUser(t *testing.T, router *gin.Engine, name, email, role string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name": name, "email": email, "role": role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func connectPair(t *testing.T, router *gin.Engine, trainerID, clientEmail string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/connect?trainer_id="+trainerID+"&client_email="+clientEmail, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func newMemoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouter(memory.New(), nil)
}
