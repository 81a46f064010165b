package storage

import (
	"bytes"
	"clinicadmin_go/config"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Asset folders the dashboard may upload into. Anything else is rejected at
// the controller so S3 key space stays predictable.
const (
	FolderDoctors    = "doctors"
	FolderServices   = "services"
	FolderCategories = "categories"
	FolderBanners    = "banners"
	FolderAvatars    = "avatars"
	FolderGeneral    = "uploads"
)

var allowedFolders = map[string]bool{
	FolderDoctors:    true,
	FolderServices:   true,
	FolderCategories: true,
	FolderBanners:    true,
	FolderAvatars:    true,
	FolderGeneral:    true,
}

// IsAllowedFolder reports whether folder is one of the known asset folders.
func IsAllowedFolder(folder string) bool {
	return allowedFolders[folder]
}

// Dashboard assets are images plus the occasional PDF (price lists,
// qualification scans). Audio/video never appears in this product.
var contentTypes = map[string]string{
	"webp": "image/webp",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"pdf":  "application/pdf",
}

var convertibleImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// StorageService uploads dashboard assets (doctor photos, service and banner
// images) to S3, converting images to WebP when the cwebp tool is available.
type StorageService struct {
	s3Client *s3.S3
	bucket   string
}

// NewStorageService creates a new storage service
func NewStorageService() (*StorageService, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AppConfig.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			config.AppConfig.AWSAccessKeyID,
			config.AppConfig.AWSSecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		bucket:   config.AppConfig.S3BucketName,
	}, nil
}

// UploadFile stores an asset under folder and returns its public URL.
// Convertible images are re-encoded to WebP first.
func (s *StorageService) UploadFile(file *multipart.FileHeader, folder string, userID uint) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	ext := fileExtension(file.Filename)
	finalBytes := fileBytes
	if convertibleImageExts[ext] {
		webpBytes, err := s.convertToWebP(fileBytes)
		if err != nil {
			return "", fmt.Errorf("failed to convert to WebP: %v", err)
		}
		finalBytes = webpBytes
		ext = "webp"
	}

	// Key layout: folder/uploader/year/month/day/random.ext
	now := time.Now()
	randomID := uuid.New().String()[:16]
	key := fmt.Sprintf("%s/%d/%d/%02d/%02d/%s.%s",
		folder,
		userID,
		now.Year(),
		now.Month(),
		now.Day(),
		randomID,
		ext,
	)

	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(finalBytes),
		ContentType: aws.String(contentTypeFor(ext)),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.bucket,
		config.AppConfig.AWSRegion,
		key,
	)

	return url, nil
}

// DeleteFile deletes an asset from S3 given its public URL
func (s *StorageService) DeleteFile(fileURL string) error {
	key := keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("invalid file URL")
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	return err
}

// convertToWebP re-encodes an image using the external cwebp tool when
// available; without it the original bytes pass through unchanged.
func (s *StorageService) convertToWebP(imageBytes []byte) ([]byte, error) {
	cwebpPath, err := exec.LookPath("cwebp")
	if err != nil {
		return imageBytes, nil
	}

	inFile, err := os.CreateTemp("", "img-input-*")
	if err != nil {
		return imageBytes, nil
	}
	defer func() {
		inFile.Close()
		os.Remove(inFile.Name())
	}()

	if _, err := inFile.Write(imageBytes); err != nil {
		return imageBytes, nil
	}

	outFile, err := os.CreateTemp("", "img-out-*.webp")
	if err != nil {
		return imageBytes, nil
	}
	outFile.Close()
	defer os.Remove(outFile.Name())

	cmd := exec.Command(cwebpPath, "-q", "80", inFile.Name(), "-o", outFile.Name())
	if err := cmd.Run(); err != nil {
		return imageBytes, nil
	}

	outBytes, err := os.ReadFile(outFile.Name())
	if err != nil {
		return imageBytes, nil
	}

	return outBytes, nil
}

func fileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 1 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

func contentTypeFor(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// keyFromURL extracts the S3 key from a public URL
func keyFromURL(url string) string {
	parts := strings.Split(url, ".amazonaws.com/")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
