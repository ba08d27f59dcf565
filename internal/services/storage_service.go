// internal/services/storage_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/wooshcafe/woosh-backend/internal/config"
)

// StorageService keeps the generated idea images somewhere the SPA can load
// them from: S3 when credentials are present, otherwise an inline data-URL
// handle so local development needs no bucket.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: config}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// StoreGeneratedImage persists PNG bytes produced by the image sub-call and
// returns an opaque handle (URL or data URL) for the idea record.
func (s *StorageService) StoreGeneratedImage(imageBytes []byte) (string, error) {
	if len(imageBytes) == 0 {
		return "", fmt.Errorf("empty image payload")
	}

	if s.s3Client == nil {
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes), nil
	}

	key := s.generateImageKey()

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(imageBytes),
		ContentType:   aws.String("image/png"),
		ContentLength: aws.Int64(int64(len(imageBytes))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.getS3URL(key), nil
}

func (s *StorageService) generateImageKey() string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("idea-images/%s_%s.png", timestamp, uuid.New().String()[:8])
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
