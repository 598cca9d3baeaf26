package availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

func TestCheck(t *testing.T) {
	var received checkRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/check", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(checkResponse{Available: true})
	}))
	defer srv.Close()

	client := NewClient(&ClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	items := []model.ItemRequest{{ProductID: "P1", Quantity: 2}}
	available, err := client.Check(context.Background(), items)
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, items, received.Items)
}

func TestCheck_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(checkResponse{Available: false})
	}))
	defer srv.Close()

	client := NewClient(&ClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	available, err := client.Check(context.Background(), []model.ItemRequest{{ProductID: "P1", Quantity: 1}})
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(&ClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.Check(context.Background(), []model.ItemRequest{{ProductID: "P1", Quantity: 1}})
	assert.Error(t, err)
}
