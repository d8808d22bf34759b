package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/spritesandbox/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"
)

// RequiredFields lists the metadata keys every spritesheet must carry.
var RequiredFields = []string{"frameWidth", "frameHeight", "frameCount", "columns", "rows", "fps"}

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrInvalidMeta     = errors.New("invalid metadata")
	ErrSheetTooSmall   = errors.New("image smaller than frame grid")
)

// MissingFieldError reports a required metadata key that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %q in metadata", e.Field)
}

// Sheet is a decoded atlas and its validated metadata.
type Sheet struct {
	Meta      animations.Meta
	Image     *ebiten.Image
	Width     int
	Height    int
	ImageName string
	MetaName  string
}

// IsImageFile reports whether name has an extension the decoder accepts.
func IsImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}

// IsMetaFile reports whether name is JSON or YAML metadata.
func IsMetaFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// ParseMeta decodes JSON or YAML metadata, chosen by the file extension, and
// checks the required fields.
func ParseMeta(name string, data []byte) (animations.Meta, error) {
	var (
		meta animations.Meta
		raw  map[string]any
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return meta, fmt.Errorf("parse %s: %w", name, err)
		}
		if err := json.Unmarshal(data, &meta); err != nil {
			return meta, fmt.Errorf("parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return meta, fmt.Errorf("parse %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return meta, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		return meta, fmt.Errorf("%s: %w", name, ErrUnsupportedFile)
	}

	for _, field := range RequiredFields {
		if _, ok := raw[field]; !ok {
			return meta, &MissingFieldError{Field: field}
		}
	}

	switch {
	case meta.FrameWidth <= 0, meta.FrameHeight <= 0:
		return meta, fmt.Errorf("frame size %dx%d: %w", meta.FrameWidth, meta.FrameHeight, ErrInvalidMeta)
	case meta.Columns <= 0, meta.Rows <= 0:
		return meta, fmt.Errorf("grid %dx%d: %w", meta.Columns, meta.Rows, ErrInvalidMeta)
	case meta.FrameCount <= 0 || meta.FrameCount > meta.Columns*meta.Rows:
		return meta, fmt.Errorf("frameCount %d for %dx%d grid: %w", meta.FrameCount, meta.Columns, meta.Rows, ErrInvalidMeta)
	case meta.FPS < 0:
		return meta, fmt.Errorf("fps %v: %w", meta.FPS, ErrInvalidMeta)
	}

	return meta, nil
}

// DecodeImage decodes PNG, JPEG, GIF, BMP or WebP data.
func DecodeImage(name string, data []byte) (image.Image, error) {
	if !IsImageFile(name) {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFile)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// CheckBounds verifies the frame grid fits inside the image.
func CheckBounds(meta animations.Meta, bounds image.Rectangle) error {
	gridW, gridH := meta.FrameWidth*meta.Columns, meta.FrameHeight*meta.Rows
	if gridW > bounds.Dx() || gridH > bounds.Dy() {
		return fmt.Errorf("grid %dx%d, image %dx%d: %w", gridW, gridH, bounds.Dx(), bounds.Dy(), ErrSheetTooSmall)
	}
	return nil
}

// parseSheet validates both files without touching the GPU.
func parseSheet(imageName string, imageData []byte, metaName string, metaData []byte) (animations.Meta, image.Image, error) {
	meta, err := ParseMeta(metaName, metaData)
	if err != nil {
		return meta, nil, err
	}
	img, err := DecodeImage(imageName, imageData)
	if err != nil {
		return meta, nil, err
	}
	if err := CheckBounds(meta, img.Bounds()); err != nil {
		return meta, nil, err
	}
	return meta, img, nil
}

// NewSheet validates the pair and uploads the atlas.
func NewSheet(imageName string, imageData []byte, metaName string, metaData []byte) (*Sheet, error) {
	meta, img, err := parseSheet(imageName, imageData, metaName, metaData)
	if err != nil {
		return nil, err
	}
	return &Sheet{
		Meta:      meta,
		Image:     ebiten.NewImageFromImage(img),
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		ImageName: imageName,
		MetaName:  metaName,
	}, nil
}

// LoadSheet reads an image and its metadata from fsys.
func LoadSheet(fsys fs.FS, imagePath, metaPath string) (*Sheet, error) {
	imageData, err := fs.ReadFile(fsys, imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	metaData, err := fs.ReadFile(fsys, metaPath)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	return NewSheet(filepath.Base(imagePath), imageData, filepath.Base(metaPath), metaData)
}

// ReadSheet loads an image and its metadata from disk paths, which may live
// in different directories.
func ReadSheet(imagePath, metaPath string) (*Sheet, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	metaData, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	return NewSheet(filepath.Base(imagePath), imageData, filepath.Base(metaPath), metaData)
}
