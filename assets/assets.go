package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/spritesandbox/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Level is a scrolling sandbox level: platforms in draw and collision order.
type Level struct {
	Name      string
	Width     int
	Height    int
	Platforms []leveldata.PlatformRect
}

type LevelLoader struct {
	cache map[string]*Level
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{cache: make(map[string]*Level)}
}

// LoadLevel parses levels/<name>.tmx from the embedded filesystem.
func (l *LevelLoader) LoadLevel(name string) (*Level, error) {
	if lvl, ok := l.cache[name]; ok {
		return lvl, nil
	}

	data, err := leveldata.Load(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	lvl := &Level{
		Name:      data.Name,
		Width:     data.MapWidth,
		Height:    data.MapHeight,
		Platforms: data.Platforms,
	}
	l.cache[name] = lvl
	return lvl, nil
}

// MustLoadLevel panics when an embedded level is missing or malformed.
func (l *LevelLoader) MustLoadLevel(name string) *Level {
	lvl, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return lvl
}

var levelLoader = NewLevelLoader()

// GetLevel returns a cached embedded level.
func GetLevel(name string) *Level {
	return levelLoader.MustLoadLevel(name)
}
