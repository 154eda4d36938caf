package vector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UpsertAndQuery(t *testing.T) {
	var gotUpsert upsertRequest

	data := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))
		switch r.URL.Path {
		case "/vectors/upsert":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotUpsert))
			_, _ = w.Write([]byte(`{"upsertedCount":2}`))
		case "/query":
			var req queryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 5, req.TopK)
			assert.True(t, req.IncludeMetadata)
			_, _ = w.Write([]byte(`{"matches":[{"metadata":{"text":"first"}},{"metadata":{"text":"second"}}]}`))
		default:
			t.Errorf("unexpected data-plane path %s", r.URL.Path)
		}
	}))
	defer data.Close()

	control := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/indexes/rag-index", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))
		_ = json.NewEncoder(w).Encode(describeIndexResponse{Host: data.URL})
	}))
	defer control.Close()

	c := NewClient("test-key", "rag-index")
	c.controlURL = control.URL

	ctx := context.Background()

	err := c.Upsert(ctx, []Item{
		{ID: "c1", Values: []float32{0.1}, Text: "first"},
		{ID: "c2", Values: []float32{0.2}, Text: "second"},
	})
	require.NoError(t, err)

	require.Len(t, gotUpsert.Vectors, 2)
	assert.Equal(t, "c1", gotUpsert.Vectors[0].ID)
	assert.Equal(t, "first", gotUpsert.Vectors[0].Metadata["text"])

	texts, err := c.Query(ctx, []float32{0.1}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, texts)
}

func TestClient_Upsert_EmptyIsNoop(t *testing.T) {
	c := NewClient("test-key", "rag-index")
	c.controlURL = "http://127.0.0.1:0" // would fail if contacted

	assert.NoError(t, c.Upsert(context.Background(), nil))
}

func TestClient_IndexHost_CachedAfterFirstLookup(t *testing.T) {
	calls := 0
	control := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(describeIndexResponse{Host: "https://idx.example"})
	}))
	defer control.Close()

	c := NewClient("test-key", "rag-index")
	c.controlURL = control.URL

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		host, err := c.indexHost(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://idx.example", host)
	}
	assert.Equal(t, 1, calls)
}

func TestClient_IndexHost_ErrorStatus(t *testing.T) {
	control := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer control.Close()

	c := NewClient("test-key", "missing")
	c.controlURL = control.URL

	_, err := c.indexHost(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
