package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"Local-Flavor-Backend/internal/utils"
	"Local-Flavor-Backend/internal/utils/logging"
)

const (
	MaxUploadSize  = 5 << 20
	requestTimeout = 30 * time.Second
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

var (
	ErrFileTooLarge     = errors.New("file exceeds the 5MB upload limit")
	ErrFileTypeNotAllow = errors.New("file type is not allowed")
	ErrStorageDisabled  = errors.New("object storage is not configured")
)

type (
	AwsS3 interface {
		UploadFile(name string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client  *s3.Client
		bucket  string
		baseURL string
	}
)

// NewAwsS3 builds a client from the AWS_* settings. Without a bucket the
// returned storage rejects every upload with ErrStorageDisabled.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfigDefault("AWS_S3_REGION", "ap-southeast-1")
	endpoint := utils.GetConfig("AWS_S3_ENDPOINT")

	if bucket == "" {
		logging.Warn().Msg("AWS_S3_BUCKET not set, photo uploads disabled")
		return &awsS3{}
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		logging.Error().Err(err).Msg("failed to load aws config, photo uploads disabled")
		return &awsS3{}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	if endpoint != "" {
		baseURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	}

	return &awsS3{client: client, bucket: bucket, baseURL: baseURL}
}

func (a *awsS3) UploadFile(name string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	if a.client == nil {
		return "", ErrStorageDisabled
	}
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, _ := src.Read(head)
	contentType := http.DetectContentType(head[:n])
	if len(allowed) > 0 && !contains(allowed, contentType) {
		return "", ErrFileTypeNotAllow
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	if name == "" {
		name = uuid.New().String()
	}
	objectKey := path.Join(folder, name+extension(contentType))

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	if a.client == nil {
		return ErrStorageDisabled
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.baseURL + "/" + objectKey
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	if a.baseURL == "" || !strings.HasPrefix(link, a.baseURL+"/") {
		return ""
	}
	return strings.TrimPrefix(link, a.baseURL+"/")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
