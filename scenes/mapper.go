package scenes

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/spritesandbox/assets"
	"github.com/automoto/spritesandbox/assets/animations"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/fonts"
	"github.com/automoto/spritesandbox/mapper"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/automoto/spritesandbox/ui"
	"github.com/automoto/spritesandbox/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapperScene is the main screen: the mapping form, a preview of one
// animation, the atlas frame grid and the live sandbox.
type MapperScene struct {
	sceneChanger SceneChanger
	opts         Options
	sheet        *assets.Sheet
	session      *mapper.Session
	world        *world.World
	mapperUI     *ui.MapperUI
	watcher      *assets.Watcher

	canvas  *ebiten.Image // world view, drawn at cfg.Mapper.WorldX/WorldY
	preview *animations.Player
	grid    mapper.Grid
	thumbs  map[int]*ebiten.Image

	lastFrame    time.Time
	once         sync.Once
	shouldGoBack bool
}

func NewMapperScene(sc SceneChanger, opts Options, sheet *assets.Sheet, session *mapper.Session) *MapperScene {
	return &MapperScene{sceneChanger: sc, opts: opts, sheet: sheet, session: session}
}

func (ms *MapperScene) configure() {
	ms.canvas = ebiten.NewImage(cfg.World.ViewWidth, cfg.World.ViewHeight)
	ms.world = world.New(world.Options{
		Meta:      ms.sheet.Meta,
		Catalog:   ms.session.Catalog(),
		Atlas:     ms.sheet.Image,
		Scale:     ms.session.Scale,
		Scrolling: ms.opts.Scrolling,
	})
	ms.mapperUI = ui.NewMapperUI(ms.session, ms.selectPreview, ms.stepScale, func() {
		ms.shouldGoBack = true
	})

	if ms.opts.Watch && ms.opts.hasFiles() {
		w, err := assets.NewWatcher(ms.opts.ImagePath, ms.opts.MetaPath)
		if err != nil {
			log.Printf("Warning: Could not watch sheet files: %v", err)
		} else {
			ms.watcher = w
		}
	}

	ms.applySheet()
}

// applySheet rebuilds everything that depends on the atlas.
func (ms *MapperScene) applySheet() {
	ms.grid = mapper.NewGrid(ms.sheet.Meta)
	ms.thumbs = make(map[int]*ebiten.Image)
	ms.world.SetSheet(ms.sheet.Meta, ms.sheet.Image)
	ms.mapperUI.Load(ms.session)
	ms.changed()
}

// changed pushes the form into the world and the preview.
func (ms *MapperScene) changed() {
	ms.session.Sync(ms.world)
	ms.refreshPreview()
	ms.mapperUI.UpdateUI(ms.session)
}

func (ms *MapperScene) refreshPreview() {
	target, ok := ms.session.PreviewTarget()
	if !ok {
		ms.preview = nil
		return
	}
	ms.preview = animations.NewPlayer(ms.sheet.Meta, ms.session.Catalog(), ms.sheet.Image)
	ms.preview.SetAnimation(target)
}

func (ms *MapperScene) selectPreview(name animations.Name) {
	ms.session.ActivePreview = name
	ms.refreshPreview()
	ms.mapperUI.UpdateUI(ms.session)
}

func (ms *MapperScene) stepScale(steps int) {
	ms.session.StepScale(steps)
	ms.changed()
}

func (ms *MapperScene) Update() {
	ms.once.Do(ms.configure)

	ms.drainWatcher()

	ms.world.PollInput()
	if ms.world.JustPressed(cfg.ActionBack) {
		ms.shouldGoBack = true
	}

	ms.mapperUI.UI.Update()
	if ms.mapperUI.Collect(ms.session) {
		ms.mapperUI.SetStatus("")
		ms.changed()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ms.clickGrid(ebiten.CursorPosition())
	}

	if ms.shouldGoBack {
		ms.leave()
		return
	}

	now := time.Now()
	if !ms.lastFrame.IsZero() && ms.preview != nil {
		ms.preview.Update(gamemath.ClampDelta(now.Sub(ms.lastFrame).Seconds(), cfg.World.MaxDelta))
	}
	ms.lastFrame = now
	ms.world.Tick(now)
}

func (ms *MapperScene) clickGrid(mx, my int) {
	scale := ms.grid.Fit(cfg.Mapper.GridW, cfg.Mapper.GridH)
	gx := (float64(mx) - cfg.Mapper.GridX) / scale
	gy := (float64(my) - cfg.Mapper.GridY) / scale
	if gx < 0 || gy < 0 {
		return
	}
	frame, ok := ms.grid.FrameAt(int(gx), int(gy))
	if !ok {
		return
	}
	name, field, ok := ms.session.FillFirstEmpty(frame)
	if !ok {
		ms.mapperUI.SetStatus("Every field is filled; clear one to use the grid")
		return
	}
	ms.mapperUI.SetField(name, field, ms.session.Get(name, field))
	ms.changed()
}

// drainWatcher reloads the sheet when a watched file changed. It never
// blocks the frame.
func (ms *MapperScene) drainWatcher() {
	if ms.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-ms.watcher.Events:
			if !ok {
				ms.watcher = nil
				return
			}
			reload = true
			continue
		case err, ok := <-ms.watcher.Errors:
			if !ok {
				ms.watcher = nil
				return
			}
			log.Printf("Watch error: %v", err)
			continue
		default:
		}
		break
	}
	if !reload {
		return
	}

	sheet, err := assets.ReadSheet(ms.opts.ImagePath, ms.opts.MetaPath)
	if err != nil {
		log.Printf("Reload failed: %v", err)
		ms.mapperUI.SetStatus(err.Error())
		return
	}
	log.Printf("Reloaded %s + %s", sheet.ImageName, sheet.MetaName)
	ms.sheet = sheet
	ms.session.Prefill(sheet.Meta)
	ms.applySheet()
	ms.mapperUI.SetStatus("Reloaded " + sheet.ImageName)
}

func (ms *MapperScene) leave() {
	ms.world.Stop()
	if ms.watcher != nil {
		if err := ms.watcher.Close(); err != nil {
			log.Printf("Warning: Could not close watcher: %v", err)
		}
		ms.watcher = nil
	}
	ms.sceneChanger.ChangeScene(NewLandingScene(ms.sceneChanger, Options{Scrolling: ms.opts.Scrolling}, ms.session))
}

func (ms *MapperScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.PanelColor)

	if ms.world == nil {
		return
	}

	ms.drawWorld(screen)
	ms.drawPreview(screen)
	ms.drawGrid(screen)

	ms.mapperUI.UI.Draw(screen)
}

func (ms *MapperScene) drawWorld(screen *ebiten.Image) {
	x, y := cfg.Mapper.WorldX, cfg.Mapper.WorldY
	if !ms.world.Running() {
		vector.FillRect(screen, float32(x), float32(y), float32(cfg.World.ViewWidth), float32(cfg.World.ViewHeight), cfg.BoxColor, false)
		drawText(screen, "Define the idle animation to start the sandbox", fonts.Regular.Face(), x+20, y+float64(cfg.World.ViewHeight)/2, cfg.Gray)
		return
	}

	ms.canvas.Clear()
	ms.world.Draw(ms.canvas)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(ms.canvas, op)
}

func (ms *MapperScene) drawPreview(screen *ebiten.Image) {
	x, y := cfg.Mapper.PreviewX, cfg.Mapper.PreviewY
	w, h := cfg.Mapper.PreviewW, cfg.Mapper.PreviewH
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.BoxColor, false)
	if ms.preview == nil {
		return
	}

	scale := mapper.FitScale(ms.sheet.Meta, w, h)
	dx, dy := mapper.Centered(ms.sheet.Meta, scale, w, h)
	ms.preview.Draw(screen, x+dx, y+dy, scale)
}

func (ms *MapperScene) thumb(frame int) *ebiten.Image {
	img, ok := ms.thumbs[frame]
	if !ok {
		img = ms.sheet.Image.SubImage(ms.sheet.Meta.FrameRect(frame)).(*ebiten.Image)
		ms.thumbs[frame] = img
	}
	return img
}

func (ms *MapperScene) drawGrid(screen *ebiten.Image) {
	x, y := cfg.Mapper.GridX, cfg.Mapper.GridY
	vector.FillRect(screen, float32(x), float32(y), float32(cfg.Mapper.GridW), float32(cfg.Mapper.GridH), cfg.BoxColor, false)

	scale := ms.grid.Fit(cfg.Mapper.GridW, cfg.Mapper.GridH)
	frameScale := mapper.ThumbScale(ms.sheet.Meta) * scale
	small := fonts.Small.Face()

	for _, row := range ms.grid.Rows {
		drawText(screen, row.Label, small, x+4*scale, y+float64(row.Y)*scale, cfg.Gray)
	}

	op := &ebiten.DrawImageOptions{}
	for _, c := range ms.grid.Cells {
		cx := x + float64(c.Rect.Min.X)*scale
		cy := y + float64(c.Rect.Min.Y)*scale
		size := float32(mapper.ThumbSize * scale)
		vector.FillRect(screen, float32(cx), float32(cy), size, size, cfg.PanelColor, false)

		dx, dy := mapper.Centered(ms.sheet.Meta, frameScale, mapper.ThumbSize*scale, mapper.ThumbSize*scale)
		op.GeoM.Reset()
		op.GeoM.Scale(frameScale, frameScale)
		op.GeoM.Translate(cx+dx, cy+dy)
		screen.DrawImage(ms.thumb(c.Frame), op)

		drawText(screen, fmt.Sprint(c.Frame), small, cx+3, cy+1, cfg.LightGray)
	}
}
