// Command replay runs the game without a window, driving the player from a
// tengo script and logging every locomotion transition.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/thirdperson/controls"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/logger"
	"github.com/milk9111/thirdperson/prefabs"
	"github.com/milk9111/thirdperson/session"
	"go.uber.org/zap"
)

func main() {
	script := flag.String("script", "patrol.tengo", "tengo script in prefabs/scripts")
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	logLevel := flag.String("log-level", "info", "log level")
	logFormat := flag.String("log-format", "console", "log encoding (json or console)")
	flag.Parse()

	cfg := logger.DefaultConfig()
	cfg.Level = *logLevel
	cfg.Format = *logFormat
	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	if err := run(zlog, *script, *ticks); err != nil {
		zlog.Error("replay failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger, scriptName string, ticks int) error {
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return err
	}
	source, err := controls.NewScriptSource(scriptName, src)
	if err != nil {
		return err
	}

	s, err := session.New(session.Config{
		Source: source,
		Log:    log.Named("session"),
		OnTransition: func(evt ecs.LocomotionEvent) {
			log.Info("transition",
				zap.Uint64("tick", evt.Tick),
				zap.Stringer("entity", evt.Entity),
				zap.Stringer("from", evt.From),
				zap.Stringer("to", evt.To),
			)
		},
	})
	if err != nil {
		return err
	}

	for i := 0; i < ticks; i++ {
		s.Step()
		if err := source.Err(); err != nil {
			return err
		}
	}

	fields := []zap.Field{
		zap.String("script", scriptName),
		zap.Uint64("ticks", s.World.Ticks()),
		zap.Int("transitions", s.Transitions.Total()),
	}
	if tf, ok := ecs.Get(s.World, s.Scene.Player, component.TransformComponent); ok {
		fields = append(fields,
			zap.Float64("x", tf.Position.X()),
			zap.Float64("y", tf.Position.Y()),
			zap.Float64("z", tf.Position.Z()),
			zap.Float64("yaw", tf.Yaw),
		)
	}
	if loco, ok := ecs.Get(s.World, s.Scene.Player, component.LocomotionComponent); ok {
		fields = append(fields, zap.Stringer("state", loco.State))
	}
	log.Info("replay finished", fields...)
	return nil
}
