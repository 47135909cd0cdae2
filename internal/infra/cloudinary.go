package infra

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageTransformation is applied by the host on upload: fit inside 800x800
// without upscaling, automatic quality and automatic format.
const ImageTransformation = "c_limit,w_800,h_800/q_auto/f_auto"

// CloudinaryHost stores catalog images in a single Cloudinary folder.
type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryHost(cloudName, apiKey, apiSecret, folder string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryHost{cld: cld, folder: folder}, nil
}

// Upload sends the image and returns its HTTPS delivery URL and public id.
func (h *CloudinaryHost) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	res, err := h.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         h.folder,
		ResourceType:   "image",
		Transformation: ImageTransformation,
	})
	if err != nil {
		return "", "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return res.SecureURL, res.PublicID, nil
}

// Destroy removes an image. A "not found" result counts as success.
func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) error {
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	switch res.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("cloudinary destroy: unexpected result %q", res.Result)
	}
}
