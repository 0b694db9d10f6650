package services

import (
	"api/config"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FileStore is the upload relay: it stores submission media and returns
// a reference path, and releases media when the owning record goes away.
// Handlers depend on this interface so tests can substitute a fake.
type FileStore interface {
    Save(ctx context.Context, dir string, file *multipart.FileHeader) (string, error)
    Remove(ctx context.Context, path string) error
}

// NewFileStore selects the MinIO-backed store when MINIO_ENDPOINT is
// configured and falls back to the local disk store.
func NewFileStore() FileStore {
    if config.MinioEndpoint != "" {
        store, err := NewMinioStore()
        if err != nil {
            log.Fatal("failed to connect to MinIO: ", err)
        }
        return store
    }
    return &DiskStore{Root: config.UploadDir}
}

// storedName builds a collision-free object name keeping the original
// extension so browsers pick a sensible content type.
func storedName(dir, original string) string {
    ext := strings.ToLower(filepath.Ext(original))
    return filepath.ToSlash(filepath.Join(dir, uuid.NewString()+ext))
}

// DiskStore writes uploads under Root; the same directory is served as
// static files under /uploads.
type DiskStore struct {
    Root string
}

func (s *DiskStore) Save(ctx context.Context, dir string, file *multipart.FileHeader) (string, error) {
    name := storedName(dir, file.Filename)
    target := filepath.Join(s.Root, filepath.FromSlash(name))

    if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
        return "", fmt.Errorf("failed to create upload directory: %w", err)
    }

    src, err := file.Open()
    if err != nil {
        return "", err
    }
    defer src.Close()

    dst, err := os.Create(target)
    if err != nil {
        return "", err
    }
    defer dst.Close()

    if _, err := io.Copy(dst, src); err != nil {
        os.Remove(target)
        return "", err
    }

    return name, nil
}

func (s *DiskStore) Remove(ctx context.Context, path string) error {
    return os.Remove(filepath.Join(s.Root, filepath.FromSlash(path)))
}

// MinioStore keeps uploads in an object-storage bucket instead of the
// local disk.
type MinioStore struct {
    client *minio.Client
    bucket string
}

func NewMinioStore() (*MinioStore, error) {
    client, err := minio.New(config.MinioEndpoint, &minio.Options{
        Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
        Secure: config.MinioUseSSL,
    })
    if err != nil {
        return nil, err
    }

    ctx := context.Background()
    exists, err := client.BucketExists(ctx, config.MinioBucket)
    if err != nil {
        return nil, err
    }
    if !exists {
        if err := client.MakeBucket(ctx, config.MinioBucket, minio.MakeBucketOptions{}); err != nil {
            return nil, err
        }
    }

    return &MinioStore{client: client, bucket: config.MinioBucket}, nil
}

func (s *MinioStore) Save(ctx context.Context, dir string, file *multipart.FileHeader) (string, error) {
    name := storedName(dir, file.Filename)

    src, err := file.Open()
    if err != nil {
        return "", err
    }
    defer src.Close()

    contentType := file.Header.Get("Content-Type")
    if contentType == "" {
        contentType = "application/octet-stream"
    }

    _, err = s.client.PutObject(ctx, s.bucket, name, src, file.Size, minio.PutObjectOptions{
        ContentType: contentType,
    })
    if err != nil {
        return "", err
    }

    return name, nil
}

func (s *MinioStore) Remove(ctx context.Context, path string) error {
    return s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
}
