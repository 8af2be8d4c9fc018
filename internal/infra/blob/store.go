package blob

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"atelier-app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store is the blob-store contract the handlers depend on. Put uploads an
// object and returns its public URL; Delete is best-effort by URL.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// Default is the process-wide store, set by Init (tests swap it).
var Default Store

type minioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func Init() error {
	useSSL := config.BLOB_USE_SSL != "false"

	client, err := minio.New(config.BLOB_ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(config.BLOB_ACCESS_KEY, config.BLOB_SECRET_KEY, ""),
		Secure: useSSL,
	})
	if err != nil {
		return fmt.Errorf("blob: connect %s: %w", config.BLOB_ENDPOINT, err)
	}

	publicBase := config.BLOB_PUBLIC_URL
	if publicBase == "" {
		scheme := "https"
		if !useSSL {
			scheme = "http"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, config.BLOB_ENDPOINT, config.BLOB_BUCKET)
	}

	Default = &minioStore{
		client:     client,
		bucket:     config.BLOB_BUCKET,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
	return nil
}

func (s *minioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
		// Objects are publicly readable; the bucket carries a public-read
		// policy so the returned URL works without signing.
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return "", err
	}
	return s.publicBase + "/" + key, nil
}

func (s *minioStore) Delete(ctx context.Context, fileURL string) error {
	key := objectKeyFromURL(s.publicBase, fileURL)
	if key == "" {
		return fmt.Errorf("blob: cannot resolve object key from %q", fileURL)
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// objectKeyFromURL recovers the object key from a public URL. URLs minted by
// Put are "<publicBase>/<key>"; anything else falls back to the URL path with
// a leading bucket segment stripped.
func objectKeyFromURL(publicBase, fileURL string) string {
	if publicBase != "" && strings.HasPrefix(fileURL, publicBase+"/") {
		return strings.TrimPrefix(fileURL, publicBase+"/")
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(u.Path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
