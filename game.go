package main

import (
	"errors"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/thirdperson/controls"
	"github.com/milk9111/thirdperson/controls/device"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/ecs/system/debugdraw"
	"github.com/milk9111/thirdperson/prefabs"
	"github.com/milk9111/thirdperson/session"
	"go.uber.org/zap"
)

type GameOptions struct {
	Debug  bool
	Watch  bool
	Script string
	Log    *zap.Logger
}

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	session  *session.Session
	source   component.InputSource
	renderer *debugdraw.RenderSystem
	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI
	log      *zap.Logger
}

func NewGame(opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var source component.InputSource = device.NewEbitenSource()
	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("game: load script: %w", err)
		}
		script, err := controls.NewScriptSource(opts.Script, src)
		if err != nil {
			return nil, err
		}
		source = script
	}

	s, err := session.New(session.Config{
		Source: source,
		Log:    log,
		OnTransition: func(evt ecs.LocomotionEvent) {
			log.Info("locomotion",
				zap.Uint64("tick", evt.Tick),
				zap.Stringer("from", evt.From),
				zap.Stringer("to", evt.To),
			)
		},
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    opts.Debug,
		session:  s,
		source:   source,
		renderer: debugdraw.NewRenderSystem(),
		log:      log,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.applyChanges()
	g.session.Step()

	if script, ok := g.source.(*controls.ScriptSource); ok && script.Err() != nil {
		g.log.Error("script failed, switching to keyboard", zap.Error(script.Err()))
		g.source = device.NewEbitenSource()
		g.session.SetSource(g.source)
	}
	return nil
}

// applyChanges reloads prefabs the watcher saw change since the last tick.
func (g *Game) applyChanges() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Pending() {
		next, err := g.session.Reload(name, g.source)
		switch {
		case errors.Is(err, session.ErrRestartRequired):
			g.log.Warn("prefab changed", zap.String("file", name), zap.Error(err))
		case err != nil:
			g.log.Error("prefab reload failed", zap.String("file", name), zap.Error(err))
		default:
			g.source = next
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("prefab watcher error", zap.Error(err))
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.session.World
	g.renderer.Draw(w, screen)

	if g.debug {
		debugdraw.DrawPhysicsDebug(w, screen)
		debugdraw.DrawPlayerStateDebug(w, screen, g.session.Transitions)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Size is the camera viewport, which is also the logical screen size.
func (g *Game) Size() (int, int) {
	if view := g.session.Scene.View; view != nil && view.Width > 0 && view.Height > 0 {
		return view.Width, view.Height
	}
	return 960, 540
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

// ResetPlayer rebuilds the player from its prefab.
func (g *Game) ResetPlayer() {
	if _, err := g.session.Reload(prefabs.PlayerFile, g.source); err != nil {
		g.log.Error("player reset failed", zap.Error(err))
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
