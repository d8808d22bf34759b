package assets

import (
	"fmt"
	"path/filepath"
)

// DropPairing collects one image and one metadata file, in either order,
// from drag-and-drop or the command line.
type DropPairing struct {
	imageName string
	imageData []byte
	metaName  string
	metaData  []byte
}

// Add stores a dropped file and returns a status line for the user.
// Metadata is validated as soon as it arrives; a bad file is not kept.
func (p *DropPairing) Add(name string, data []byte) (string, error) {
	base := filepath.Base(name)
	switch {
	case IsImageFile(base):
		p.imageName, p.imageData = base, data
	case IsMetaFile(base):
		if _, err := ParseMeta(base, data); err != nil {
			return "", err
		}
		p.metaName, p.metaData = base, data
	default:
		return "", fmt.Errorf("%s: %w", base, ErrUnsupportedFile)
	}
	return p.Status(), nil
}

// Status describes what is loaded and what is still missing.
func (p *DropPairing) Status() string {
	switch {
	case p.Ready():
		return fmt.Sprintf("Loaded %s + %s", p.imageName, p.metaName)
	case p.imageName != "":
		return fmt.Sprintf("Image %s loaded, waiting for metadata (.json / .yaml)", p.imageName)
	case p.metaName != "":
		return fmt.Sprintf("Metadata %s loaded, waiting for the spritesheet image", p.metaName)
	}
	return "Drop a spritesheet image and its metadata file"
}

// Ready reports whether both files are present.
func (p *DropPairing) Ready() bool {
	return p.imageData != nil && p.metaData != nil
}

// Build validates the pair and uploads the atlas. The pairing is cleared on
// success so the next drop starts fresh.
func (p *DropPairing) Build() (*Sheet, error) {
	if !p.Ready() {
		return nil, fmt.Errorf("pairing incomplete: %s", p.Status())
	}
	sheet, err := NewSheet(p.imageName, p.imageData, p.metaName, p.metaData)
	if err != nil {
		return nil, err
	}
	p.Reset()
	return sheet, nil
}

// Reset forgets both files.
func (p *DropPairing) Reset() {
	*p = DropPairing{}
}
