package scenes

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/spritesandbox/assets"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/fonts"
	"github.com/automoto/spritesandbox/mapper"
	"github.com/hajimehoshi/ebiten/v2"
)

// LandingScene waits for a spritesheet image and its metadata, dropped on
// the window in either order.
type LandingScene struct {
	sceneChanger SceneChanger
	opts         Options
	session      *mapper.Session // kept across sheets, nil before the first
	pairing      assets.DropPairing
	status       string
	errMsg       string
	once         sync.Once
}

// NewLandingScene creates the drop screen. session carries the form values
// of a previous sheet and may be nil.
func NewLandingScene(sc SceneChanger, opts Options, session *mapper.Session) *LandingScene {
	return &LandingScene{sceneChanger: sc, opts: opts, session: session}
}

func (ls *LandingScene) Update() {
	ls.once.Do(ls.configure)

	if dropped := ebiten.DroppedFiles(); dropped != nil {
		ls.addDropped(dropped)
	}
	if ls.pairing.Ready() {
		sheet, err := ls.pairing.Build()
		if err != nil {
			ls.pairing.Reset()
			ls.fail(err)
			return
		}
		ls.open(sheet, Options{Scrolling: ls.opts.Scrolling, Scale: ls.opts.Scale})
	}
}

func (ls *LandingScene) configure() {
	ls.status = ls.pairing.Status()
	if !ls.opts.hasFiles() {
		return
	}

	sheet, err := assets.ReadSheet(ls.opts.ImagePath, ls.opts.MetaPath)
	if err != nil {
		ls.fail(err)
		return
	}
	ls.open(sheet, ls.opts)
}

func (ls *LandingScene) addDropped(dropped fs.FS) {
	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		ls.fail(err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(dropped, entry.Name())
		if err != nil {
			ls.fail(err)
			continue
		}
		status, err := ls.pairing.Add(entry.Name(), data)
		if err != nil {
			ls.fail(err)
			continue
		}
		ls.status, ls.errMsg = status, ""
	}
}

func (ls *LandingScene) fail(err error) {
	log.Printf("Load failed: %v", err)
	ls.errMsg = err.Error()
	ls.status = ls.pairing.Status()
}

func (ls *LandingScene) open(sheet *assets.Sheet, opts Options) {
	log.Printf("Loaded %s + %s (%dx%d)", sheet.ImageName, sheet.MetaName, sheet.Width, sheet.Height)
	if ls.session == nil {
		ls.session = mapper.NewSession(sheet.Meta)
		if opts.Scale > 0 {
			ls.session.Scale = opts.Scale
		}
	} else {
		ls.session.Prefill(sheet.Meta)
	}
	ls.sceneChanger.ChangeScene(NewMapperScene(ls.sceneChanger, opts, sheet, ls.session))
}

func (ls *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.PanelColor)

	x := float64(cfg.C.Width)/2 - 260
	y := float64(cfg.C.Height)/2 - 80
	drawText(screen, "Sprite Sandbox", fonts.Title.Face(), x, y, cfg.White)
	drawText(screen, "Drop a spritesheet image (.png .jpg .gif .bmp .webp)", fonts.Regular.Face(), x, y+50, cfg.LightGray)
	drawText(screen, "and its metadata (.json .yaml) onto this window.", fonts.Regular.Face(), x, y+72, cfg.LightGray)
	drawText(screen, ls.status, fonts.Regular.Face(), x, y+120, cfg.LightGreen)
	if ls.errMsg != "" {
		drawText(screen, ls.errMsg, fonts.Regular.Face(), x, y+144, cfg.LightRed)
	}
}
