package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweedegolf/pdok-apis/internal/httpclient"
	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/suggest", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "pdok-apis test", request.Header.Get("User-Agent"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "adr-1"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, httpclient.WithUserAgent("pdok-apis test"))

		resp, err := client.Get(context.Background(), "/suggest", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "adr-1", result["id"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "postcode:6512EX 26", request.URL.Query().Get("q"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/suggest", url.Values{"q": []string{"postcode:6512EX 26"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("default headers are sent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "secret-key", request.Header.Get("X-Api-Key"))
			assert.Equal(t, "epsg:28992", request.Header.Get("Accept-Crs"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL,
			httpclient.WithHeader("X-Api-Key", "secret-key"),
			httpclient.WithHeader("Accept-Crs", "epsg:28992"),
		)

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)
	})

	t.Run("absolute URL path bypasses base URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/panden/123", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient("http://unreachable.invalid")

		resp, err := client.Get(context.Background(), server.URL+"/panden/123", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()
	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.True(t, pdok.IsUnauthorized(err))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.True(t, pdok.IsNotFound(err))
	})

	t.Run("upstream error keeps status and body detail", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("backend unavailable"))
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.True(t, pdok.IsUpstream(err))

		clientErr := &pdok.Error{}
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusBadGateway, clientErr.StatusCode)
		assert.Contains(t, clientErr.Detail, "backend unavailable")
	})

	t.Run("request timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, httpclient.WithRequestTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.True(t, pdok.IsTimeout(err))
	})

	t.Run("context deadline exceeded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/", nil)
		require.Error(t, err)
		assert.True(t, pdok.IsTimeout(err))
	})

	t.Run("caller cancellation aborts the request", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			close(started)
			<-request.Context().Done()
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			<-started
			cancel()
		}()

		resp, err := client.Get(ctx, "/", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, pdok.IsNetwork(err))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := httpclient.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.True(t, pdok.IsNetwork(err))
	})
}

func TestClient_RetryConfig(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var requests int

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.Equal(t, 1, requests)
		assert.True(t, pdok.IsUpstream(err))
	})

	t.Run("exhausted retries keep upstream classification", func(t *testing.T) {
		t.Parallel()

		var requests int

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++

			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte("maintenance window"))
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL,
			httpclient.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

		_, err := client.Get(context.Background(), "/", nil)
		require.Error(t, err)
		assert.Equal(t, 3, requests)
		assert.True(t, pdok.IsUpstream(err))

		clientErr := &pdok.Error{}
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusServiceUnavailable, clientErr.StatusCode)
		assert.Contains(t, clientErr.Detail, "maintenance window")
	})

	t.Run("opt-in retries on transient failures", func(t *testing.T) {
		t.Parallel()

		var requests int

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			if requests < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL,
			httpclient.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, requests)
	})
}
