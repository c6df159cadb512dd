package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/asib/platformer/assets"
	"github.com/asib/platformer/common"
	"github.com/asib/platformer/obj"
	"github.com/asib/platformer/prefabs"
	"github.com/asib/platformer/tiled"
)

// Game owns the per-tick pipeline: input sample, player integration,
// animation advance, camera recenter, culled draw.
type Game struct {
	cfg     Config
	log     *zap.Logger
	running bool
	debug   bool
	frames  int

	input   *obj.Input
	player  *obj.Player
	camera  *obj.Camera
	level   *obj.Map
	watcher *prefabs.Watcher
}

func NewGame(cfg Config, log *zap.Logger, debug bool) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("load player spec: %w", err)
	}

	sheet, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load sprite sheet %s: %w", spec.Sheet, err)
	}

	player, err := spec.BuildPlayer(obj.NewTextureHandle(sheet))
	if err != nil {
		return nil, fmt.Errorf("build player: %w", err)
	}

	camera := obj.NewCamera(cfg.Width, cfg.Height, deadZoneRect(cfg.Width, cfg.Height, cfg.DeadZonePad))

	g := &Game{
		cfg:     cfg,
		log:     log,
		running: true,
		debug:   debug,
		input:   obj.NewInput(),
		player:  player,
		camera:  camera,
	}

	lvl, err := loadLevel(cfg.Map)
	if err != nil {
		return nil, err
	}
	g.SetActiveMap(lvl)

	// Hot reload is best-effort: without a prefabs/ dir on disk the
	// embedded tuning simply stays fixed.
	if w, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = w
	} else {
		log.Warn("prefab watcher disabled", zap.Error(err))
	}

	return g, nil
}

// deadZoneRect centers the camera's dead zone within the viewport,
// inset by pad pixels on every side.
func deadZoneRect(viewW, viewH, pad int) common.Rect {
	if 2*pad >= viewW || 2*pad >= viewH {
		pad = 0
	}
	return common.Rect{X: pad, Y: pad, Width: viewW - 2*pad, Height: viewH - 2*pad}
}

// loadLevel decodes a Tiled map (embedded asset, or a disk path when
// one exists) and resolves its first layer against its first tileset.
func loadLevel(name string) (*obj.Map, error) {
	var (
		doc *tiled.Map
		err error
	)
	if _, statErr := os.Stat(name); statErr == nil {
		doc, err = tiled.Load(name)
	} else {
		b, readErr := assets.LoadFile(name)
		if readErr != nil {
			return nil, fmt.Errorf("map %s: %w", name, readErr)
		}
		doc, err = tiled.Decode(b)
	}
	if err != nil {
		return nil, err
	}

	desc := doc.Tilesets[0]
	texture, err := loadTilesetImage(name, desc.Image)
	if err != nil {
		return nil, fmt.Errorf("tileset image %s: %w", desc.Image, err)
	}

	tileset, err := obj.NewTileset(desc, texture)
	if err != nil {
		return nil, err
	}

	ids, err := doc.LayerData(0)
	if err != nil {
		return nil, err
	}

	return obj.NewMap(ids, doc.Layers[0].Width, doc.Layers[0].Height, tileset)
}

func loadTilesetImage(mapName, img string) (*ebiten.Image, error) {
	if tex, err := assets.LoadImage(img); err == nil {
		return tex, nil
	}
	// tileset paths in Tiled documents are relative to the map file
	disk := filepath.Join(filepath.Dir(mapName), img)
	b, err := os.ReadFile(disk)
	if err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(decoded), nil
}

// SetActiveMap swaps the level the camera and player are bound to. A
// nil map means no level is loaded and the player is clamped to the
// bare viewport instead.
func (g *Game) SetActiveMap(m *obj.Map) {
	g.level = m
}

func (g *Game) bounds() (w, h int) {
	if g.level != nil {
		return g.level.PixelWidth(), g.level.PixelHeight()
	}
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.Quit {
		g.running = false
	}
	if !g.running {
		return ebiten.Termination
	}

	g.pollTuning()

	w, h := g.bounds()
	g.player.Update(g.input, w, h)

	if g.level != nil {
		g.camera.Update(g.player.CollisionRect(), g.level)
	}

	return nil
}

// pollTuning drains prefab watcher events and re-applies edited player
// tuning in place, keeping position and direction.
func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Info("prefab changed", zap.String("file", name))
			changed = true
		default:
			if !changed {
				return
			}
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				g.log.Warn("reload player spec", zap.Error(err))
				return
			}
			anim, err := spec.BuildAnimation()
			if err != nil {
				g.log.Warn("reload player animation", zap.Error(err))
				return
			}
			g.player.Anim = anim
			g.player.Phys = obj.PhysicsParams{
				Gravity:        spec.Physics.Gravity,
				MoveImpulse:    spec.Physics.MoveImpulse,
				JumpVelocity:   spec.Physics.JumpVelocity,
				VelocityDecay:  spec.Physics.VelocityDecay,
				VelocityCutoff: spec.Physics.VelocityCutoff,
				AccelDecay:     spec.Physics.AccelDecay,
				AccelCutoff:    spec.Physics.AccelCutoff,
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.level != nil {
		g.level.Draw(screen, g.camera)
	}
	g.player.Draw(screen, g.camera)

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Frames: %d  FPS: %.2f  pos=(%d,%d) v=(%.2f,%.2f) dir=%s",
		g.frames, ebiten.ActualFPS(),
		g.player.Pos.X, g.player.Pos.Y,
		g.player.Vel.X, g.player.Vel.Y,
		g.player.Dir,
	))

	cr := g.player.CollisionRect()
	vector.StrokeRect(screen,
		float32(cr.X-g.camera.Pos.X), float32(cr.Y-g.camera.Pos.Y),
		float32(cr.Width), float32(cr.Height),
		1, colornames.Crimson, false)

	dz := g.camera.DeadZone
	vector.StrokeRect(screen,
		float32(dz.X), float32(dz.Y),
		float32(dz.Width), float32(dz.Height),
		1, colornames.Lightgrey, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
