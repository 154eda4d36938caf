// Package vector talks to a hosted Pinecone index over its REST API:
// the control plane resolves the index host once, the data plane handles
// upserts and similarity queries.
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

const defaultControlURL = "https://api.pinecone.io"

// Item is one embedded chunk bound for the index. Text travels as metadata so
// queries can return the chunk content without a second lookup.
type Item struct {
	ID     string
	Values []float32
	Text   string
}

type Client struct {
	apiKey     string
	indexName  string
	controlURL string
	httpClient *http.Client

	mu   sync.Mutex
	host string // data-plane base URL, resolved lazily and cached
}

func NewClient(apiKey, indexName string) *Client {
	return &Client{
		apiKey:     apiKey,
		indexName:  indexName,
		controlURL: defaultControlURL,
		httpClient: http.DefaultClient,
	}
}

type describeIndexResponse struct {
	Host string `json:"host"`
}

func (c *Client) indexHost(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.host != "" {
		return c.host, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.controlURL+"/indexes/"+c.indexName, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinecone describe index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("pinecone describe index %q: status %d: %s", c.indexName, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out describeIndexResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("pinecone describe index: decode response: %w", err)
	}
	if out.Host == "" {
		return "", fmt.Errorf("pinecone describe index %q: empty host", c.indexName)
	}

	host := out.Host
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	c.host = host
	return c.host, nil
}

type upsertVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata"`
}

type upsertRequest struct {
	Vectors []upsertVector `json:"vectors"`
}

// Upsert writes all items in one bulk call. Re-upserting an existing id
// overwrites it, which is what the full re-index relies on.
func (c *Client) Upsert(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}

	payload := upsertRequest{Vectors: make([]upsertVector, 0, len(items))}
	for _, item := range items {
		payload.Vectors = append(payload.Vectors, upsertVector{
			ID:       item.ID,
			Values:   item.Values,
			Metadata: map[string]string{"text": item.Text},
		})
	}

	var out json.RawMessage
	return c.dataPlanePost(ctx, "/vectors/upsert", payload, &out)
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []struct {
		Metadata map[string]string `json:"metadata"`
	} `json:"matches"`
}

// Query returns the chunk texts of the topK nearest vectors.
func (c *Client) Query(ctx context.Context, values []float32, topK int) ([]string, error) {
	var out queryResponse
	err := c.dataPlanePost(ctx, "/query", queryRequest{
		Vector:          values,
		TopK:            topK,
		IncludeMetadata: true,
	}, &out)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(out.Matches))
	for _, m := range out.Matches {
		texts = append(texts, m.Metadata["text"])
	}
	return texts, nil
}

func (c *Client) dataPlanePost(ctx context.Context, path string, payload any, out any) error {
	host, err := c.indexHost(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, host+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinecone %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pinecone %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("pinecone %s: decode response: %w", path, err)
	}
	return nil
}
