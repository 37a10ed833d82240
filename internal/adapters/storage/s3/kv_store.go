package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"pet-hub/internal/ports/kv"
)

const DefaultPrefix = "pethub/"

// KVStore implementa kv.Store sobre un bucket S3 compatible (AWS S3 o MinIO).
// Cada key es un objeto "<prefix><key>.json"; Set sobreescribe el objeto completo.
type KVStore struct {
	client *s3.Client
	bucket string
	prefix string
}

// Config agrupa los parámetros de construcción. Las credenciales salen de la
// cadena por defecto de AWS (env AWS_ACCESS_KEY_ID, perfiles, IMDS...).
type Config struct {
	Bucket    string
	Region    string // default us-east-1
	Endpoint  string // opcional (MinIO)
	PathStyle bool
	Prefix    string // default "pethub/"
}

func New(ctx context.Context, cfg Config) (*KVStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return newWithClient(client, cfg.Bucket, prefix), nil
}

func newWithClient(client *s3.Client, bucket, prefix string) *KVStore {
	return &KVStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *KVStore) objectKey(key string) string {
	return s.prefix + key + ".json"
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", key, err)
	}
	return string(b), nil
}

func (s *KVStore) Set(ctx context.Context, key, blob string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        strings.NewReader(blob),
		ContentType: aws.String("application/json"),
	})
	return err
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	if errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound {
		return true
	}
	return false
}
