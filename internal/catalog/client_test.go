package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/primecart/internal/config"
)

func testClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.Catalog.BaseURL = baseURL
	cfg.Catalog.RequestTimeout = 2 * time.Second
	return NewClient(cfg)
}

func TestClient_Products(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Mug","price":9.99,"description":"A mug","category":"kitchen","image":"img","rating":{"rate":4.5,"count":10}},
			{"id":2,"title":"Hat","price":14.5,"description":"A hat","category":"clothing","image":"img","rating":{"rate":3.9,"count":4}}
		]`))
	}))
	defer server.Close()

	products, err := testClient(server.URL).Products(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Mug", products[0].Title)
	assert.Equal(t, 4.5, products[0].Rating.Rate)
	assert.Equal(t, "clothing", products[1].Category)
}

func TestClient_Product(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"title":"Lamp","price":25,"description":"","category":"home","image":"","rating":{"rate":4.1,"count":2}}`))
	}))
	defer server.Close()

	product, err := testClient(server.URL).Product(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 7, product.ID)
	assert.Equal(t, "Lamp", product.Title)
}

func TestClient_Categories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		_, _ = w.Write([]byte(`["electronics","jewelery"]`))
	}))
	defer server.Close()

	categories, err := testClient(server.URL).Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery"}, categories)
}

func TestClient_ProductsByCategory_EscapesName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/men's%20clothing", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	products, err := testClient(server.URL).ProductsByCategory(context.Background(), "men's clothing")

	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_ResponseErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Product(context.Background(), 999)

	var catErr *Error
	assert.ErrorAs(t, err, &catErr)
	assert.Equal(t, http.StatusNotFound, catErr.Status)
	assert.False(t, catErr.IsTransport())
	assert.Contains(t, catErr.Error(), "404")
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	_, err := testClient(server.URL).Products(context.Background())

	var catErr *Error
	assert.ErrorAs(t, err, &catErr)
	assert.True(t, catErr.IsTransport())
	assert.Zero(t, catErr.Status)
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := testClient(server.URL).Products(ctx)

	var catErr *Error
	assert.ErrorAs(t, err, &catErr)
	assert.True(t, catErr.IsTransport())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_MalformedBodyIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Products(context.Background())

	var catErr *Error
	assert.ErrorAs(t, err, &catErr)
	assert.True(t, catErr.IsTransport())
}
