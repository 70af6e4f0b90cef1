// Package preview turns the selected file into a data URL and back into a
// thumbnail image for the preview region.
package preview

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/ytget/image-predictor/internal/model"
)

const (
	dataURLPrefix      = "data:"
	base64Marker       = ";base64,"
	defaultContentType = "application/octet-stream"
)

// ErrNotDataURL is returned when a string is not a base64 data URL
var ErrNotDataURL = errors.New("not a base64 data URL")

// Loader reads a selected file as a data URL
type Loader interface {
	DataURL(ctx context.Context, file *model.SelectedFile) (string, error)
}

// FileLoader encodes the in-memory file contents
type FileLoader struct{}

// NewFileLoader creates a new data URL loader
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// DataURL encodes the file off the calling goroutine and waits for the result
// or for ctx to be done.
func (l *FileLoader) DataURL(ctx context.Context, file *model.SelectedFile) (string, error) {
	if file == nil {
		return "", errors.New("no file to preview")
	}

	done := make(chan string, 1)
	go func() {
		done <- Encode(file)
	}()

	select {
	case url := <-done:
		return url, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Encode returns "data:<content type>;base64,<data>" for the file
func Encode(file *model.SelectedFile) string {
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	var b strings.Builder
	b.Grow(len(dataURLPrefix) + len(contentType) + len(base64Marker) + base64.StdEncoding.EncodedLen(len(file.Data)))
	b.WriteString(dataURLPrefix)
	b.WriteString(contentType)
	b.WriteString(base64Marker)
	b.WriteString(base64.StdEncoding.EncodeToString(file.Data))
	return b.String()
}

// Decode splits a base64 data URL into its content type and payload
func Decode(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return "", nil, ErrNotDataURL
	}
	meta, payload, found := strings.Cut(dataURL[len(dataURLPrefix):], base64Marker)
	if !found {
		return "", nil, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL payload: %w", err)
	}
	return meta, data, nil
}

// Thumbnail decodes the image behind a data URL and scales it to fit within
// maxSize×maxSize, preserving the aspect ratio. Smaller images are returned unchanged.
func Thumbnail(dataURL string, maxSize uint) (image.Image, error) {
	_, data, err := Decode(dataURL)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode preview image: %w", err)
	}

	if maxSize == 0 {
		return img, nil
	}

	return resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3), nil
}
