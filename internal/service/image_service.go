package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
)

// ImageHost is the remote image store. infra.CloudinaryHost implements it.
type ImageHost interface {
	Upload(ctx context.Context, r io.Reader) (url, publicID string, err error)
	Destroy(ctx context.Context, publicID string) error
}

type UploadedImage struct {
	URL      string
	PublicID string
}

type ImageService interface {
	// Upload checks type and size locally before any network call and never retries.
	Upload(ctx context.Context, r io.Reader, size int64, mimeType, filename string) (*UploadedImage, error)
	// Delete succeeds for ids the host does not know.
	Delete(ctx context.Context, publicID string) error
}

type imageService struct {
	host     ImageHost
	breaker  *infra.CircuitBreaker
	maxBytes int64
}

// NewImageService accepts a nil host; every call then fails with ErrConfiguration.
func NewImageService(host ImageHost, breaker *infra.CircuitBreaker, maxBytes int64) ImageService {
	if breaker == nil {
		breaker = infra.NewCircuitBreaker(infra.DefaultImageHostBreaker())
	}
	return &imageService{host: host, breaker: breaker, maxBytes: maxBytes}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, size int64, mimeType, filename string) (*UploadedImage, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrUnsupportedMediaType
	}
	if size > s.maxBytes {
		return nil, ErrPayloadTooLarge
	}
	// The declared size comes from the client; never buffer more than the limit.
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrPayloadTooLarge
	}
	if !contentMatches(mimeType, data) {
		return nil, ErrUnsupportedMediaType
	}
	if s.host == nil {
		log.Error().Msg("upload rejected: image host credentials not configured")
		return nil, ErrConfiguration
	}

	var url, publicID string
	err = s.breaker.Execute(func() error {
		var uploadErr error
		url, publicID, uploadErr = s.host.Upload(ctx, bytes.NewReader(data))
		return uploadErr
	})
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Int("bytes", len(data)).Msg("image upload failed")
		return nil, hostErr(err)
	}

	log.Info().Str("public_id", publicID).Int("bytes", len(data)).Msg("image uploaded")
	return &UploadedImage{URL: url, PublicID: publicID}, nil
}

func (s *imageService) Delete(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return &ValidationError{Fields: map[string]string{"public_id": "es obligatorio"}}
	}
	if s.host == nil {
		log.Error().Msg("image delete rejected: image host credentials not configured")
		return ErrConfiguration
	}
	err := s.breaker.Execute(func() error { return s.host.Destroy(ctx, publicID) })
	if err != nil {
		log.Error().Err(err).Str("public_id", publicID).Msg("image delete failed")
		return hostErr(err)
	}
	return nil
}

func hostErr(err error) error {
	if errors.Is(err, infra.ErrCircuitOpen) {
		return fmt.Errorf("%w: servicio de imágenes no disponible", ErrUploadFailed)
	}
	return fmt.Errorf("%w: %v", ErrUploadFailed, err)
}

// contentMatches rejects files whose bytes are clearly not an image even
// though the client declared an image type. Formats the sniffer does not know
// (HEIC, AVIF) come back as octet-stream and are left to the host.
func contentMatches(declared string, data []byte) bool {
	sniffed := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(sniffed, "image/"):
		return true
	case sniffed == "application/octet-stream":
		return true
	case declared == "image/svg+xml":
		return strings.HasPrefix(sniffed, "text/xml") || strings.HasPrefix(sniffed, "text/plain")
	default:
		return false
	}
}
