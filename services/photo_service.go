package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoService issues presigned S3 URLs for profile photo uploads and reads.
type PhotoService struct {
	Client *s3.Client
	Bucket string
}

// NewPhotoService builds the service from the ambient AWS configuration and
// the S3_BUCKET_NAME environment variable.
func NewPhotoService() *PhotoService {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config for S3: %v", err)
	}
	return &PhotoService{
		Client: s3.NewFromConfig(cfg),
		Bucket: os.Getenv("S3_BUCKET_NAME"),
	}
}

// GenerateUploadURL returns a presigned PUT URL and the object key the photo
// will live under.
func (ps *PhotoService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	if fileName == "" || fileType == "" {
		return "", "", fmt.Errorf("fileName and fileType are required: %w", ErrValidation)
	}
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName

	presigner := s3.NewPresignClient(ps.Client)
	presigned, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presigned.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for a stored photo key.
func (ps *PhotoService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required: %w", ErrValidation)
	}

	presigner := s3.NewPresignClient(ps.Client)
	presigned, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ps.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
