package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	lettershttp "github.com/agentic-letters/letters-cli/internal/http"
	"github.com/agentic-letters/letters-cli/pkg/letters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/credits", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "agentic-letters-skill/1.0", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]any{"credits": 42})
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token")

		resp, err := client.Get(context.Background(), "/credits", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]any

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.InDelta(t, 42.0, result["credits"], 0)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "dGVzdA==", body["pdf"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "ltr_1"})
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token")

		resp, err := client.Post(context.Background(), "/letters", map[string]string{"pdf": "dGVzdA=="})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-agent/2.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte("{}"))
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token", lettershttp.WithUserAgent("custom-agent/2.0"))

		_, err := client.Get(context.Background(), "/letters", nil)
		require.NoError(t, err)
	})

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "10", request.URL.Query().Get("limit"))
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte("[]"))
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/letters", url.Values{"limit": []string{"10"}})
		require.NoError(t, err)
	})

	t.Run("server error with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error": "invalid zip",
				"field": "zip",
			})
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/letters/abc", nil)
		require.Error(t, err)

		clsErr := &letters.Error{}
		ok := errors.As(err, &clsErr)
		require.True(t, ok)
		assert.Equal(t, letters.OriginServer, clsErr.Origin)
		assert.Equal(t, "invalid zip", clsErr.Message)
		assert.Equal(t, 422, clsErr.HTTPStatus)
		assert.Equal(t, "zip", clsErr.Field)
	})

	t.Run("server error with non-JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/credits", nil)
		require.Error(t, err)

		clsErr := &letters.Error{}
		require.ErrorAs(t, err, &clsErr)
		assert.Equal(t, letters.OriginServer, clsErr.Origin)
		assert.Equal(t, "HTTP 500 with non-JSON response", clsErr.Message)
		assert.Equal(t, 500, clsErr.HTTPStatus)
		assert.Equal(t, "Internal Server Error", clsErr.Detail)
		assert.Empty(t, clsErr.Code)
		assert.Empty(t, clsErr.Field)
	})
}

func TestClient_NetworkFailures(t *testing.T) {
	t.Parallel()
	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close() // nothing listens on the URL anymore

		client := lettershttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/credits", nil)
		require.Error(t, err)

		clsErr := &letters.Error{}
		require.ErrorAs(t, err, &clsErr)
		assert.Equal(t, letters.OriginNetwork, clsErr.Origin)
		assert.Equal(t, "Could not reach the API", clsErr.Message)
		assert.Zero(t, clsErr.HTTPStatus)
		assert.NotEmpty(t, clsErr.Detail)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			<-release
		}))

		t.Cleanup(func() {
			close(release)
			server.Close()
		})

		client := lettershttp.NewClient(server.URL, "test-token", lettershttp.WithTimeout(50*time.Millisecond))

		_, err := client.Get(context.Background(), "/letters", nil)
		require.Error(t, err)

		clsErr := &letters.Error{}
		require.ErrorAs(t, err, &clsErr)
		assert.Equal(t, letters.OriginNetwork, clsErr.Origin)
		assert.Contains(t, clsErr.Message, "timed out")
		assert.Zero(t, clsErr.HTTPStatus)
	})

	t.Run("single attempt on server errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := lettershttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/credits", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		assert.True(t, letters.IsServer(err))
	})
}
