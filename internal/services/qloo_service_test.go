package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"vibevoyager/internal/models"
)

func TestDestinationsFromVibes(t *testing.T) {
	var insightCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		switch r.URL.Path {
		case "/v2/tags":
			switch r.URL.Query().Get("query") {
			case "Jazz Music":
				w.Write([]byte(`{"tags":[{"id":"urn:tag:genre:jazz","name":"Jazz"}]}`))
			case "Sushi":
				w.Write([]byte(`{"tags":[{"id":"urn:tag:cuisine:sushi","name":"Sushi"}]}`))
			default:
				w.Write([]byte(`{"tags":[]}`))
			}
		case "/v2/insights":
			insightCalls++
			assert.Equal(t, models.QlooEntityDestination, r.URL.Query().Get("filter.type"))
			assert.Equal(t, "urn:tag:genre:jazz,urn:tag:cuisine:sushi", r.URL.Query().Get("signal.interests.tags"))
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"results":[
			  {"entity":{"id":"d1","name":"Tokyo"},"affinity":{"score":0.92}},
			  {"entity":{"id":"d2","name":"Osaka"},"affinity":{"score":0.81}}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	svc := NewQlooService(server.URL, "test-key", zap.NewNop())
	hits := svc.DestinationsFromVibes(context.Background(), []string{"Jazz Music", "Sushi"}, 3)

	assert.Len(t, hits, 2)
	assert.Equal(t, "Tokyo", hits[0].Entity.Name)
	assert.Equal(t, 0.92, hits[0].Affinity.Score)
	assert.Equal(t, 1, insightCalls)
}

func TestDestinationsFromVibesNoTagHits(t *testing.T) {
	var insightCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/tags":
			w.Write([]byte(`{"tags":[]}`))
		case "/v2/insights":
			insightCalls++
			w.Write([]byte(`{"results":[]}`))
		}
	}))
	defer server.Close()

	svc := NewQlooService(server.URL, "test-key", zap.NewNop())
	hits := svc.DestinationsFromVibes(context.Background(), []string{"Unknown A", "Unknown B"}, 3)

	// A fully unresolved taste list is a normal empty outcome, and the
	// insights endpoint is never consulted.
	assert.Empty(t, hits)
	assert.Equal(t, 0, insightCalls)
}

func TestQlooFailuresDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"tags": not-json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := NewQlooService(server.URL, "test-key", zap.NewNop())
			assert.Empty(t, svc.DestinationsFromVibes(context.Background(), []string{"Jazz Music", "Sushi"}, 3))
			assert.Empty(t, svc.SearchTags(context.Background(), "Jazz Music", 1))
			assert.Empty(t, svc.SearchEntities(context.Background(), "coffee", models.QlooEntityPlace, 1))
			assert.Empty(t, svc.InsightsByEntities(context.Background(), []string{"e1"}, models.QlooEntityDestination, 5))
		})
	}
}

func TestQlooUnreachableHost(t *testing.T) {
	// Closed server: connection refused on every call.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewQlooService(server.URL, "test-key", zap.NewNop())
	assert.Empty(t, svc.DestinationsFromVibes(context.Background(), []string{"Jazz Music", "Sushi"}, 3))
	assert.False(t, svc.TestConnection(context.Background()))
}

func TestQlooTestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "coffee", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"id":"p1","name":"A Coffee Place"}]}`))
	}))
	defer server.Close()

	svc := NewQlooService(server.URL, "test-key", zap.NewNop())
	assert.True(t, svc.TestConnection(context.Background()))
}
