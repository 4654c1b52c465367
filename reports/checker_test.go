// path: reports/checker_test.go
package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExistenceChecker_ForwardsIDNumber(t *testing.T) {
	var gotBody struct {
		IDNumber string `json:"idNumber"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]bool{"exists": true})
	}))
	defer srv.Close()

	c := NewHTTPExistenceChecker(srv.URL)
	exists, err := c.CheckExists(context.Background(), "8001015009087")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "8001015009087", gotBody.IDNumber)
}

func TestHTTPExistenceChecker_ReportsAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"exists": false})
	}))
	defer srv.Close()

	c := NewHTTPExistenceChecker(srv.URL)
	exists, err := c.CheckExists(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHTTPExistenceChecker_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPExistenceChecker(srv.URL)
	_, err := c.CheckExists(context.Background(), "8001015009087")
	assert.Error(t, err)
}

func TestHTTPExistenceChecker_MalformedBodyIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewHTTPExistenceChecker(srv.URL)
	_, err := c.CheckExists(context.Background(), "8001015009087")
	assert.Error(t, err)
}

func TestHTTPExistenceChecker_UnreachableEndpoint(t *testing.T) {
	c := NewHTTPExistenceChecker("http://127.0.0.1:1/api/check-id")
	_, err := c.CheckExists(context.Background(), "8001015009087")
	assert.Error(t, err)
}
