package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// PlatformGroup is the object group holding collision rectangles.
const PlatformGroup = "Platforms"

// Load parses a TMX file and returns its platforms in file order. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != PlatformGroup {
			continue
		}
		for _, o := range og.Objects {
			p := PlatformRect{
				X: o.X,
				Y: o.Y,
				W: o.Width,
				H: o.Height,
			}
			if hex := o.Properties.GetString("color"); hex != "" {
				c, err := ParseHexColor(hex)
				if err != nil {
					return nil, fmt.Errorf("platform %d in %s: %w", o.ID, tmxPath, err)
				}
				p.Color = c
				p.HasColor = true
			}
			p.Floating = o.Properties.GetString("floating") == "true"
			p.Travel = float64(o.Properties.GetInt("travel"))
			data.Platforms = append(data.Platforms, p)
		}
	}

	if len(data.Platforms) == 0 {
		return nil, fmt.Errorf("load TMX %s: no objects in %q group", tmxPath, PlatformGroup)
	}

	return data, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
