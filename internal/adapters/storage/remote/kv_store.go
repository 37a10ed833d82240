// Package remote implementa kv.Store contra un servicio HTTP de key-value:
//
//	GET {base}/kv/{key} -> 200 + blob | 404
//	PUT {base}/kv/{key} <- blob
package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"pet-hub/internal/platform/httpclient"
	"pet-hub/internal/ports/kv"
)

type KVStore struct {
	client *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*KVStore, error) {
	c, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &KVStore{client: c}, nil
}

// NewWithClient permite inyectar el cliente (tests).
func NewWithClient(c *httpclient.Client) *KVStore {
	return &KVStore{client: c}
}

func keyPath(key string) string {
	return "/kv/" + url.PathEscape(key)
}

// Get devuelve el body tal cual; decodificarlo (y detectar corrupción) es
// trabajo del document store.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	raw, err := s.client.Do(ctx, http.MethodGet, keyPath(key), nil)
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return string(raw), nil
}

func (s *KVStore) Set(ctx context.Context, key, blob string) error {
	_, err := s.client.Do(ctx, http.MethodPut, keyPath(key), []byte(blob))
	return err
}
