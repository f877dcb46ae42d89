package mirror

import (
	"context"
	"flickr-client/flickr"
	"fmt"
	"github.com/minio/minio-go/v7"
	"io"
	"log/slog"
	"os"
	"strings"
)

var maxConcurrentDownloads = 10

type Flickr interface {
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

type MinIO interface {
	FPutObject(ctx context.Context, bucketName, objectName string, filePath string, opts minio.PutObjectOptions) (info minio.UploadInfo, err error)
}

type Result struct {
	ID  string
	Key string
	Err error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.ID, r.Err)
	} else {
		return fmt.Sprintf("%s: %s", r.ID, r.Key)
	}
}

// ObjectKey is where a photo's image at size is stored in the bucket.
func ObjectKey(id, size string) string {
	return fmt.Sprintf("flickr/%s/%s.jpg", id, strings.ToLower(size))
}

// Photos copies each photo's image at size into bucket, downloading at most
// maxConcurrentDownloads at once. Results come back in the order of photos.
// It fails when more than a quarter of the photos could not be copied.
func Photos(ctx context.Context, fc Flickr, mc MinIO, bucket string, photos []*flickr.Photo, size string) ([]Result, error) {
	size = flickr.NormalizeSize(size)
	if size == "" {
		size = flickr.Medium
	}

	results := make([]Result, len(photos))
	done := make(chan struct{}, len(photos))

	sem := make(chan struct{}, maxConcurrentDownloads)
	for i := range photos {
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem }()
			p := photos[i]
			key, err := copyPhoto(ctx, fc, mc, bucket, p, size)
			results[i] = Result{ID: p.ID(), Key: key, Err: err}
			done <- struct{}{}
		}(i)
	}
	for range photos {
		<-done
	}

	var failed []Result
	for _, res := range results {
		if res.Err != nil {
			slog.Warn("mirror failed", "photo", res.ID, "err", res.Err)
			failed = append(failed, res)
		}
	}
	if len(failed) > len(photos)/4 {
		return results, fmt.Errorf("too many errors: %d/%d failed: %s", len(failed), len(photos), failed)
	}
	return results, nil
}

func copyPhoto(ctx context.Context, fc Flickr, mc MinIO, bucket string, p *flickr.Photo, size string) (string, error) {
	src, err := p.Source(ctx, size)
	if err != nil {
		return "", fmt.Errorf("source: %w", err)
	}
	if src == "" {
		return "", fmt.Errorf("no %s size", size)
	}

	f, err := os.CreateTemp("", "flickr-mirror-")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			slog.Warn("remove temp file", "err", err)
		}
	}(f.Name())
	defer f.Close()

	slog.Debug("download", "photo", p.ID(), "source", src)
	body, err := fc.Download(ctx, src)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer body.Close()
	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}

	key := ObjectKey(p.ID(), size)
	slog.Debug("upload", "key", key)
	_, err = mc.FPutObject(ctx, bucket, key, f.Name(), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	return key, nil
}
