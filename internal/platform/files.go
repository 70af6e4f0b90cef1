package platform

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytget/image-predictor/internal/model"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// Directory names
const (
	PicturesDirName     = "Pictures"
	AndroidPicturesDir  = "/sdcard/Pictures"
	contentSniffLength  = 512
	fallbackContentType = "application/octet-stream"
)

// ImageExtensions lists the file extensions offered by the file picker
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}

// extraMIMETypes covers extensions missing from minimal mime tables
var extraMIMETypes = map[string]string{
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// IsImageFile reports whether the name has one of ImageExtensions
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range ImageExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// DetectContentType returns the MIME type for a file, preferring the extension
// and falling back to sniffing the first bytes.
func DetectContentType(name string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != "" {
		if contentType := mime.TypeByExtension(ext); contentType != "" {
			if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
				return mediaType
			}
			return contentType
		}
		if contentType, ok := extraMIMETypes[ext]; ok {
			return contentType
		}
	}

	if len(data) == 0 {
		return fallbackContentType
	}
	if len(data) > contentSniffLength {
		data = data[:contentSniffLength]
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return fallbackContentType
	}
	return mediaType
}

// NewSelectedFile builds the upload model for in-memory file contents
func NewSelectedFile(name string, data []byte) *model.SelectedFile {
	return &model.SelectedFile{
		Name:        filepath.Base(name),
		ContentType: DetectContentType(name, data),
		Data:        data,
	}
}

// ReadImageFile reads a file from disk as the file to upload
func ReadImageFile(path string) (*model.SelectedFile, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return NewSelectedFile(path, data), nil
}

// GetHomePicturesDir returns the standard Pictures directory for the user,
// or the home directory when no Pictures folder exists.
func GetHomePicturesDir() (string, error) {
	// Fyne Android apps run as libdist.so
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"

	if isAndroid {
		return AndroidPicturesDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	picturesDir := filepath.Join(homeDir, PicturesDirName)
	if !IsDirectory(picturesDir) {
		return homeDir, nil
	}
	return picturesDir, nil
}

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
