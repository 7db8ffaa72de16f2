package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/rs/zerolog/log"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

var (
	ErrFileTypeNotAllowed = domain.NewValidationError("file type not allowed")
	ErrStorageUnavailable = errors.New("file storage unavailable")
)

type (
	AwsS3 interface {
		UploadFile(name string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load aws config")
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// ObjectKey builds "<folder>/<name><ext>" and rejects extensions outside allowed.
func ObjectKey(name string, filename string, folder string, allowed ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(allowed) > 0 {
		ok := false
		for _, a := range allowed {
			if a == ext {
				ok = true
				break
			}
		}
		if !ok {
			return "", ErrFileTypeNotAllowed
		}
	}
	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), name, ext), nil
}

func (a *awsS3) UploadFile(name string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	if a.client == nil || a.bucket == "" {
		return "", ErrStorageUnavailable
	}

	objectKey, err := ObjectKey(name, file.Filename, folder, allowed...)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
