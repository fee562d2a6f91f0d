package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chidupudi/ai-assistant/internal/config"
)

// Storage defines the interface for photo blob storage providers.
type Storage interface {
	Upload(reader io.Reader, filename string) (string, error)
	UploadBytes(data []byte, filename string) (string, error)
	Download(path string) (io.ReadCloser, error)
	Delete(path string) error
	GetPublicURL(path string) string
}

// New creates the provider named in the configuration.
func New(cfg *config.Config) (Storage, error) {
	switch strings.ToLower(cfg.Storage.Provider) {
	case "local":
		return NewLocalStorage(cfg.Storage.Path, cfg.Storage.PublicBaseURL)
	case "s3":
		return NewS3Storage(cfg.Storage.S3)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Storage.Provider)
	}
}

// LocalStorage keeps photo files on the server's disk, served by the app
// itself under the public base URL.
type LocalStorage struct {
	root      string
	publicURL string
}

// NewLocalStorage creates a local-disk storage rooted at the given path.
func NewLocalStorage(root, publicURL string) (Storage, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %v", err)
	}
	return &LocalStorage{root: root, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

// Upload writes a file under the storage root and returns its key.
func (l *LocalStorage) Upload(reader io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}
	return l.UploadBytes(data, filename)
}

// UploadBytes writes bytes under the storage root and returns the key.
func (l *LocalStorage) UploadBytes(data []byte, filename string) (string, error) {
	key := filepath.Base(filepath.Clean(filename))
	if err := os.WriteFile(filepath.Join(l.root, key), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %v", err)
	}
	return key, nil
}

// Download opens a stored file.
func (l *LocalStorage) Download(path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(l.root, filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	return f, nil
}

// Delete removes a stored file.
func (l *LocalStorage) Delete(path string) error {
	if err := os.Remove(filepath.Join(l.root, filepath.Base(path))); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

// GetPublicURL returns the URL clients use to fetch the photo.
func (l *LocalStorage) GetPublicURL(path string) string {
	return fmt.Sprintf("%s/%s", l.publicURL, path)
}

// S3Storage implements the Storage interface for AWS S3.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Storage creates a new S3 storage instance.
func NewS3Storage(s3cfg config.S3Config) (Storage, error) {
	cfg := aws.Config{
		Region: s3cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			s3cfg.AccessKeyID,
			s3cfg.SecretAccessKey,
			"",
		),
	}

	if s3cfg.Endpoint != "" {
		customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               s3cfg.Endpoint,
				SigningRegion:     s3cfg.Region,
				HostnameImmutable: true,
			}, nil
		})
		cfg.EndpointResolverWithOptions = customResolver
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = s3cfg.ForcePathStyle
	})

	return &S3Storage{
		client:    client,
		bucket:    s3cfg.BucketName,
		publicURL: s3cfg.PublicURL,
	}, nil
}

// Upload uploads a file to S3.
func (s *S3Storage) Upload(reader io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}
	return s.UploadBytes(data, filename)
}

// UploadBytes uploads bytes to S3.
func (s *S3Storage) UploadBytes(data []byte, filename string) (string, error) {
	key := filepath.Clean(filename)
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Body:   bytes.NewReader(data),
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}
	return key, nil
}

// Download downloads a file from S3.
func (s *S3Storage) Download(path string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download file from S3: %v", err)
	}
	return result.Body, nil
}

// Delete deletes a file from S3.
func (s *S3Storage) Delete(path string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}
	return nil
}

// GetPublicURL returns the public URL for a file in S3.
func (s *S3Storage) GetPublicURL(path string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, path)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, path)
}
