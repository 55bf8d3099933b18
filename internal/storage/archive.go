package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"meowscope/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/google/uuid"
)

// Archive keeps a copy of submitted recordings.
type Archive interface {
	// Put stores audio and returns its object key.
	Put(ctx context.Context, userID, contentType string, audio []byte) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive stores recordings in a Supabase storage bucket through its S3 API.
type S3Archive struct {
	client objectPutter
	bucket string
	newID  func() uuid.UUID
	now    func() time.Time
}

// NewS3Client builds an S3 client for the Supabase storage endpoint in cfg.
func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	s3Config, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		return nil, fmt.Errorf("load S3 config: %w", err)
	}
	return s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	}), nil
}

// NewS3Archive creates an archive writing to bucket.
func NewS3Archive(client objectPutter, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, newID: uuid.New, now: time.Now}
}

func (a *S3Archive) Put(ctx context.Context, userID, contentType string, audio []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := ObjectKey(userID, a.newID(), a.now(), contentType)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(audio),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(audio))),
	})
	if err != nil {
		return "", fmt.Errorf("put recording %s: %w", key, err)
	}
	return key, nil
}

// ObjectKey lays recordings out as recordings/{user}/{yyyy}/{mm}/{dd}/{id}{ext}.
// Anonymous uploads go under "anonymous".
func ObjectKey(userID string, id uuid.UUID, at time.Time, contentType string) string {
	owner := userID
	if owner == "" {
		owner = "anonymous"
	}
	at = at.UTC()
	return path.Join("recordings", owner, at.Format("2006"), at.Format("01"), at.Format("02"), id.String()+extensionFor(contentType))
}

var audioExtensions = map[string]string{
	"audio/webm":  ".webm",
	"audio/ogg":   ".ogg",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/wave":  ".wav",
	"audio/mpeg":  ".mp3",
	"audio/mp4":   ".m4a",
	"audio/x-m4a": ".m4a",
	"audio/aac":   ".aac",
	"audio/flac":  ".flac",
	"video/webm":  ".webm",
}

func extensionFor(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")
	if ext, ok := audioExtensions[strings.ToLower(strings.TrimSpace(base))]; ok {
		return ext
	}
	return ".bin"
}

// removeDisableGzip is a workaround for S3 signature errors with some S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
