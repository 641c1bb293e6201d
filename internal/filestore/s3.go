// Package filestore реализует объектное хранилище для загружаемых файлов
// песен поверх S3-совместимого API (MinIO). Хранилище принимает бинарный
// поток и имя файла и возвращает ключ, по которому объект можно получить.
package filestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/fitness-tracker/internal/config"
)

// Store сохраняет бинарные файлы песен в S3-совместимом бакете.
type Store struct {
	client *s3.Client
	bucket string
}

// New создает Store на основе настроек объектного хранилища.
func New(ctx context.Context, cfg config.SongStorage) (*Store, error) {
	const op = "filestore.New"
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// StorageKey генерирует уникальный ключ объекта для файла песни.
// Уникальность обеспечивает UUID, исходное имя сохраняется для читаемости.
func StorageKey(filename string) string {
	return fmt.Sprintf("songs/%s/%s", uuid.New(), filepath.Base(filename))
}

// Save загружает содержимое r под новым ключом и возвращает этот ключ.
func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	const op = "filestore.Save"
	key := StorageKey(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return key, nil
}
