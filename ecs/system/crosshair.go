package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"go.uber.org/zap"
)

// CrosshairTracker moves the aim marker entity and looks for targets along
// the pointer ray using the world's physics shapes.
type CrosshairTracker struct {
	world  *ecs.World
	marker ecs.Entity
	log    *zap.Logger
}

var _ component.Crosshair = (*CrosshairTracker)(nil)

func NewCrosshairTracker(w *ecs.World, marker ecs.Entity, log *zap.Logger) *CrosshairTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &CrosshairTracker{world: w, marker: marker, log: log}
}

// Marker returns the entity the tracker moves.
func (c *CrosshairTracker) Marker() ecs.Entity {
	return c.marker
}

func (c *CrosshairTracker) MoveTo(point mgl64.Vec3) {
	if c == nil || !c.world.IsAlive(c.marker) {
		return
	}
	if transform, ok := ecs.Get(c.world, c.marker, component.TransformComponent); ok {
		transform.Position = point
	}
}

func (c *CrosshairTracker) DetectTargets(ray common.Ray) {
	if c == nil || !c.world.IsAlive(c.marker) {
		return
	}
	state, ok := ecs.Get(c.world, c.marker, component.CrosshairStateComponent)
	if !ok {
		return
	}

	hit, found := c.world.PhysicsWorld().TargetAlongRay(ray)
	if found && !c.world.IsAlive(hit.Entity) {
		found = false
	}

	switch {
	case found && (!state.HasTarget || state.Target != uint64(hit.Entity)):
		name := ""
		if target, ok := ecs.Get(c.world, hit.Entity, component.TargetComponent); ok {
			name = target.Name
		}
		c.log.Debug("crosshair acquired target",
			zap.Stringer("entity", hit.Entity),
			zap.String("name", name),
		)
	case !found && state.HasTarget:
		c.log.Debug("crosshair lost target", zap.Uint64("entity", state.Target))
	}

	state.HasTarget = found
	if !found {
		state.Target = 0
		state.Hit = mgl64.Vec3{}
		return
	}
	state.Target = uint64(hit.Entity)
	state.Hit = hit.Point
}
