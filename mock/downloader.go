package mock

import (
	"context"

	"github.com/fwojciec/popscrape"
)

var _ popscrape.ImageDownloader = (*ImageDownloader)(nil)

// ImageDownloader is a mock implementation of popscrape.ImageDownloader.
type ImageDownloader struct {
	DownloadAllFn func(ctx context.Context, urls []string) []popscrape.ImageDownload
}

func (d *ImageDownloader) DownloadAll(ctx context.Context, urls []string) []popscrape.ImageDownload {
	return d.DownloadAllFn(ctx, urls)
}
