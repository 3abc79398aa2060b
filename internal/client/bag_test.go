package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweedegolf/pdok-apis/internal/httpclient"
	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

// bagTestServer serves a verblijfsobject with two pand links and the two
// pand documents behind them. Link hrefs are absolute, as the real API
// hands them out.
func bagTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/verblijfsobjecten/0268010000084126", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "epsg:28992", r.Header.Get("Accept-Crs"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"verblijfsobject": map[string]interface{}{
				"status":         "Verblijfsobject in gebruik",
				"oppervlakte":    241,
				"gebruiksdoelen": []string{"kantoorfunctie"},
			},
			"_links": map[string]interface{}{
				"maaktDeelUitVan": []map[string]string{
					{"href": "http://" + r.Host + "/panden/0268100000012345"},
					{"href": "http://" + r.Host + "/panden/0268100000067890"},
				},
			},
		})
	})

	pand := func(id, year string) func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"pand": map[string]interface{}{
					"identificatie":          id,
					"oorspronkelijkBouwjaar": year,
					"status":                 "Pand in gebruik",
					"geometrie": map[string]interface{}{
						"type": "Polygon",
						"coordinates": [][][]float64{{
							{188000, 427000},
							{188010, 427000},
							{188010, 427010},
							{188000, 427010},
							{188000, 427000},
						}},
					},
				},
			})
		}
	}

	mux.HandleFunc("/panden/0268100000012345", pand("0268100000012345", "2008"))
	mux.HandleFunc("/panden/0268100000067890", pand("0268100000067890", "1931"))

	return httptest.NewServer(mux)
}

func newBagTestClient(server *httptest.Server) *BagClient {
	transport := httpclient.NewClient(server.URL,
		httpclient.WithHeader("X-Api-Key", "test-key"),
		httpclient.WithHeader("Accept-Crs", pdok.Rijksdriehoek.CRS()),
	)

	return NewBagClient(transport, pdok.Config{APIKey: "test-key", AcceptCRS: pdok.Rijksdriehoek})
}

func TestBagClient_GetPanden(t *testing.T) {
	server := bagTestServer(t)
	defer server.Close()

	bag := newBagTestClient(server)

	panden, err := bag.GetPanden(context.Background(), "0268010000084126")
	require.NoError(t, err)
	require.Len(t, panden, 2)

	first := panden[0]
	assert.Equal(t, "0268100000012345", first.ID)
	assert.Equal(t, "2008", first.BuildYear)
	assert.Equal(t, "Pand in gebruik", first.Status)
	assert.Equal(t, "Verblijfsobject in gebruik", first.ObjectStatus)
	assert.Equal(t, int64(241), first.FloorArea)
	assert.Equal(t, []string{"kantoorfunctie"}, first.Purposes)
	// 10m x 10m square in Rijksdriehoek coordinates.
	assert.InEpsilon(t, 100.0, first.GroundArea, 1e-9)
	require.NotNil(t, first.Geometry)

	assert.Equal(t, "0268100000067890", panden[1].ID)
	assert.Equal(t, "1931", panden[1].BuildYear)
}

func TestBagClient_GetPanden_InvalidInput(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	bag := NewBagClient(httpclient.NewClient(server.URL), pdok.Config{})

	for _, objectID := range []string{"", "12345", "026801000008412X", "02680100000841267"} {
		_, err := bag.GetPanden(context.Background(), objectID)
		require.Error(t, err)
		assert.True(t, pdok.IsInvalidInput(err))
	}

	assert.Equal(t, 0, requests)
}

func TestBagClient_GetPanden_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	bag := NewBagClient(httpclient.NewClient(server.URL), pdok.Config{})

	_, err := bag.GetPanden(context.Background(), "0268010000084126")
	require.Error(t, err)
	assert.True(t, pdok.IsUnauthorized(err))
}

func TestBagClient_GetPanden_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	bag := NewBagClient(httpclient.NewClient(server.URL), pdok.Config{})

	_, err := bag.GetPanden(context.Background(), "0268010000084126")
	require.Error(t, err)
	assert.True(t, pdok.IsNotFound(err))
}

func TestBagClient_GetPanden_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer server.Close()

	bag := NewBagClient(httpclient.NewClient(server.URL), pdok.Config{})

	_, err := bag.GetPanden(context.Background(), "0268010000084126")
	require.Error(t, err)
	assert.True(t, pdok.IsMalformed(err))
}

func TestBagClient_Status(t *testing.T) {
	server := bagTestServer(t)
	defer server.Close()

	bag := newBagTestClient(server)
	require.NoError(t, bag.Status(context.Background()))
}
