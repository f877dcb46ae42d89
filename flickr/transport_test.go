package flickr

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		switch r.URL.Query().Get("method") {
		case "flickr.test.echo":
			_, _ = w.Write([]byte(`<rsp stat="ok"><method>flickr.test.echo</method></rsp>`))
		default:
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	c, err := New(Options{APIKey: "k", Endpoint: srv.URL})
	require.NoError(t, err)

	resp, err := c.Invoke(context.Background(), "test.echo", nil)
	require.NoError(t, err)
	assert.Equal(t, "flickr.test.echo", Text(resp["method"]))

	_, err = c.Invoke(context.Background(), "test.null", nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "nope")
}

func TestClientDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fake image"))
	}))
	defer srv.Close()

	c, err := New(Options{APIKey: "k"})
	require.NoError(t, err)
	body, err := c.Download(context.Background(), srv.URL+"/2/1_abc.jpg")
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "fake image", string(data))
}

func TestClientDownloadWithoutDownloader(t *testing.T) {
	m := mockTransport(t).expectCall("", nil, "bytes", nil)
	c := testClient(t, m)
	body, err := c.Download(context.Background(), "http://farm1.static.flickr.com/2/1_abc.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))
}
