package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		SheetID:   "sheet-123",
		SheetName: "Lojas",
		APIKey:    "key-abc",
		BaseURL:   baseURL,
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestFetchStoreColumn_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.RawQuery, "key=key-abc")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"range": "Lojas!A2:A2000",
			"majorDimension": "ROWS",
			"values": [["Loja Centro"], [" Loja Norte "], [], ["Loja Centro"]]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	values, err := client.FetchStoreColumn(context.Background())
	require.NoError(t, err)

	// Raw values: normalization is the caller's job.
	assert.Equal(t, []string{"Loja Centro", " Loja Norte ", "Loja Centro"}, values)
}

func TestFetchStoreColumn_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "API key invalid", "status": "PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.FetchStoreColumn(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIError)
	assert.Contains(t, err.Error(), "API key invalid")
}

func TestFetchStoreColumn_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Refuse connections

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.FetchStoreColumn(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkError)
}

func TestFetchStoreColumn_EmptyRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The API omits "values" entirely when the range is empty.
		w.Write([]byte(`{"range": "Lojas!A2:A2000", "majorDimension": "ROWS"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	values, err := client.FetchStoreColumn(context.Background())
	require.NoError(t, err)
	assert.Empty(t, values)
}
