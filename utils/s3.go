package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3(region string) error {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// parseDataURL splits "data:image/jpeg;base64,<payload>" into its content
// type and raw base64 payload.
func parseDataURL(dataURL string) (contentType, payload string, err error) {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || payload == "" {
		return "", "", fmt.Errorf("invalid base64 image")
	}
	_, mediaType, ok := strings.Cut(meta, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid data URL header")
	}
	contentType = strings.SplitN(mediaType, ";", 2)[0]
	if contentType == "" {
		return "", "", fmt.Errorf("data URL has no content type")
	}
	return contentType, payload, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}

// UploadBase64ImageToS3 stores a data-URL image and returns its public URL.
func UploadBase64ImageToS3(base64Data, keyPrefix string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("s3 client not initialized")
	}

	contentType, data, err := parseDataURL(base64Data)
	if err != nil {
		return "", err
	}
	ext := extensionFor(contentType)

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	key := fmt.Sprintf("%s/%d%s", keyPrefix, time.Now().UnixNano(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}
