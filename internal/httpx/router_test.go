package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"casefeed/internal/config"
	mdb "casefeed/internal/mongo"
)

// mongo.Connect does not dial, so a client built here never touches the
// network as long as only DB.Name() is used.
func routerClient(t *testing.T) *mdb.Client {
	t.Helper()
	cl, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cl.Disconnect(context.Background()) })
	return &mdb.Client{DB: cl.Database("casefeed_test")}
}

func TestHealthzShape(t *testing.T) {
	h := NewRouter(routerClient(t), config.Config{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Status string    `json:"status"`
		Time   time.Time `json:"time"`
		DB     string    `json:"db"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "casefeed_test", got.DB)
	assert.False(t, got.Time.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), got.Time, time.Minute)
}

func TestRouterUnknownPath(t *testing.T) {
	h := NewRouter(routerClient(t), config.Config{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
