package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/civichub/community-go/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func Init() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

// Upload stores a file under a fresh key "<prefix>/<uuid><ext>" and returns
// the key. The original filename only contributes its extension.
func Upload(ctx context.Context, prefix, filename string, r io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))
	_, err := Client.PutObject(ctx, BucketName, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// PresignedURL returns a short-lived download link for a stored object.
func PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := Client.PresignedGetObject(ctx, BucketName, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
