package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/lumispa/salon-api/internal/config"
)

// Imagens de serviços, especialistas e posts: reencodadas em webp e
// guardadas num bucket compatível com S3 (o storage do backend gerenciado).
const (
	maxImageWidth = 1600
	webpQuality   = 82
)

type Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewStorage(cfg *config.Config) *Storage {
	if !cfg.StorageEnabled() {
		return nil
	}

	client := s3.New(s3.Options{
		Region:       cfg.StorageRegion,
		BaseEndpoint: aws.String(cfg.StorageEndpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		UsePathStyle: true,
	})

	publicURL := cfg.StoragePublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.StorageEndpoint, "/"), cfg.StorageBucket)
	}

	return &Storage{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *Storage) Enabled() bool {
	return s != nil
}

// UploadImage decodifica, redimensiona se necessário, converte para webp e
// envia. Retorna a URL pública do objeto.
func (s *Storage) UploadImage(ctx context.Context, folder string, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return src
	}

	ratio := float64(maxImageWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
