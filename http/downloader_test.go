package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/popscrape"
	popscrapehttp "github.com/fwojciec/popscrape/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloader_DownloadAll(t *testing.T) {
	t.Parallel()

	t.Run("downloads in input order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("bytes-of" + r.URL.Path))
		}))
		defer server.Close()

		dl := popscrapehttp.NewDownloader(popscrapehttp.WithDownloadRate(1000))
		urls := []string{server.URL + "/a.jpg", server.URL + "/b.jpg"}

		results := dl.DownloadAll(context.Background(), urls)

		require.Len(t, results, 2)
		assert.Equal(t, urls[0], results[0].URL)
		assert.Equal(t, []byte("bytes-of/a.jpg"), results[0].Data)
		assert.Equal(t, "image/jpeg", results[0].ContentType)
		assert.Equal(t, urls[1], results[1].URL)
		assert.Equal(t, []byte("bytes-of/b.jpg"), results[1].Data)
	})

	t.Run("isolates failures per URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "broken") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		dl := popscrapehttp.NewDownloader(popscrapehttp.WithDownloadRate(1000))
		results := dl.DownloadAll(context.Background(), []string{
			server.URL + "/good.jpg",
			server.URL + "/broken.jpg",
			server.URL + "/also-good.jpg",
		})

		require.Len(t, results, 3)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, []byte("ok"), results[0].Data)

		require.Error(t, results[1].Err)
		assert.Nil(t, results[1].Data)
		assert.Equal(t, popscrape.EUNAVAILABLE, popscrape.ErrorCode(results[1].Err))

		assert.NoError(t, results[2].Err)
	})

	t.Run("sends a browser user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		dl := popscrapehttp.NewDownloader(popscrapehttp.WithDownloadRate(1000))
		results := dl.DownloadAll(context.Background(), []string{server.URL + "/a.jpg"})

		require.Len(t, results, 1)
		require.NoError(t, results[0].Err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("empty input yields empty results", func(t *testing.T) {
		t.Parallel()

		dl := popscrapehttp.NewDownloader()
		assert.Empty(t, dl.DownloadAll(context.Background(), nil))
	})
}
