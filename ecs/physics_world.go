package ecs

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs/component"
)

// Chipmunk runs on the horizontal plane: cp X is world X, cp Y is world Z.
// Heights are resolved analytically against the floor.
const (
	categoryCharacter uint = 1 << iota
	categoryWall
	categoryTarget
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
	collisionTypeTarget
)

const (
	boundsThickness   = 0.5
	depenetrateRounds = 4
	targetRayLength   = 1000.0
)

// Bounds is the playable rectangle on the XZ plane.
type Bounds struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

type targetShape struct {
	entity Entity
	baseY  float64
	topY   float64
}

// PhysicsWorld owns the Chipmunk space and static collision shapes.
type PhysicsWorld struct {
	space  *cp.Space
	floorY float64
	bounds Bounds

	targets map[*cp.Shape]targetShape
}

// NewPhysicsWorld creates a physics world with a floor and boundary walls.
// A zero Bounds leaves the arena open.
func NewPhysicsWorld(bounds Bounds, floorY float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20

	pw := &PhysicsWorld{
		space:   space,
		floorY:  floorY,
		bounds:  bounds,
		targets: make(map[*cp.Shape]targetShape),
	}
	pw.buildBounds()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// FloorY is the height characters stand on.
func (pw *PhysicsWorld) FloorY() float64 {
	if pw == nil {
		return 0
	}
	return pw.floorY
}

func wallFilter() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, categoryWall, cp.ALL_CATEGORIES)
}

func (pw *PhysicsWorld) buildBounds() {
	b := pw.bounds
	if b.MaxX <= b.MinX || b.MaxZ <= b.MinZ {
		return
	}
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: b.MinX, Y: b.MinZ}, b: cp.Vector{X: b.MaxX, Y: b.MinZ}},
		{a: cp.Vector{X: b.MinX, Y: b.MaxZ}, b: cp.Vector{X: b.MaxX, Y: b.MaxZ}},
		{a: cp.Vector{X: b.MinX, Y: b.MinZ}, b: cp.Vector{X: b.MinX, Y: b.MaxZ}},
		{a: cp.Vector{X: b.MaxX, Y: b.MinZ}, b: cp.Vector{X: b.MaxX, Y: b.MaxZ}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(wallFilter())
		pw.space.AddShape(shape)
	}
}

// AddWall adds a solid axis-aligned box spanning [minX,maxX]×[minZ,maxZ].
func (pw *PhysicsWorld) AddWall(minX, minZ, maxX, maxZ float64) {
	if pw == nil || pw.space == nil || maxX <= minX || maxZ <= minZ {
		return
	}
	shape := cp.NewBox2(pw.space.StaticBody, cp.BB{L: minX, B: minZ, R: maxX, T: maxZ}, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(wallFilter())
	pw.space.AddShape(shape)
}

// AddTarget registers an upright cylinder the crosshair can acquire.
// Targets do not block characters.
func (pw *PhysicsWorld) AddTarget(e Entity, base mgl64.Vec3, radius, height float64) {
	if pw == nil || pw.space == nil || radius <= 0 {
		return
	}
	shape := cp.NewCircle(pw.space.StaticBody, radius, cp.Vector{X: base.X(), Y: base.Z()})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeTarget)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryTarget, cp.ALL_CATEGORIES))
	pw.space.AddShape(shape)
	pw.targets[shape] = targetShape{entity: e, baseY: base.Y(), topY: base.Y() + height}
}

// TargetHit is the first target found along a ray.
type TargetHit struct {
	Entity Entity
	Point  mgl64.Vec3
}

// TargetAlongRay walks the ray down to the floor and returns the first
// target it crosses. Walls block the search.
func (pw *PhysicsWorld) TargetAlongRay(ray common.Ray) (TargetHit, bool) {
	if pw == nil || pw.space == nil || len(pw.targets) == 0 {
		return TargetHit{}, false
	}
	length := targetRayLength
	if t, ok := common.HorizontalPlane(pw.floorY).Raycast(ray); ok {
		length = t
	}
	end3 := ray.Point(length)
	start := cp.Vector{X: ray.Origin.X(), Y: ray.Origin.Z()}
	end := cp.Vector{X: end3.X(), Y: end3.Z()}

	type hit struct {
		shape *cp.Shape
		alpha float64
	}
	var hits []hit
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryWall|categoryTarget)
	pw.space.SegmentQuery(start, end, 0, filter, func(shape *cp.Shape, _, _ cp.Vector, alpha float64, _ interface{}) {
		hits = append(hits, hit{shape: shape, alpha: alpha})
	}, nil)
	sort.Slice(hits, func(i, j int) bool { return hits[i].alpha < hits[j].alpha })

	for _, h := range hits {
		info, ok := pw.targets[h.shape]
		if !ok {
			return TargetHit{}, false
		}
		p := ray.Point(h.alpha * length)
		if p.Y() >= info.baseY && p.Y() <= info.topY {
			return TargetHit{Entity: info.entity, Point: p}, true
		}
	}

	// a steep ray can enter a target through its top cap; the tallest cap is
	// reached first, ties go to the lowest entity
	var (
		best  targetShape
		found bool
	)
	for shape, info := range pw.targets {
		if shape.PointQuery(end).Distance >= 0 || info.topY < pw.floorY {
			continue
		}
		if !found || info.topY > best.topY || (info.topY == best.topY && info.entity < best.entity) {
			best = info
			found = true
		}
	}
	if !found {
		return TargetHit{}, false
	}
	top := end3
	if t, ok := common.HorizontalPlane(best.topY).Raycast(ray); ok && t <= length {
		top = ray.Point(t)
	}
	return TargetHit{Entity: best.entity, Point: top}, true
}

// CharacterBody is a kinematic circle that slides along walls and stands on
// the floor. It implements component.CharacterBody.
type CharacterBody struct {
	world    *PhysicsWorld
	body     *cp.Body
	shape    *cp.Shape
	radius   float64
	y        float64
	grounded bool
}

var _ component.CharacterBody = (*CharacterBody)(nil)

// NewCharacterBody places a character of the given radius at pos.
func (pw *PhysicsWorld) NewCharacterBody(pos mgl64.Vec3, radius float64) *CharacterBody {
	if pw == nil || pw.space == nil || radius <= 0 {
		return nil
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryCharacter, categoryWall))
	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	y := pos.Y()
	grounded := y <= pw.floorY
	if grounded {
		y = pw.floorY
	}
	return &CharacterBody{
		world:    pw,
		body:     body,
		shape:    shape,
		radius:   radius,
		y:        y,
		grounded: grounded,
	}
}

// IsGrounded reports whether the last move ended on the floor.
func (c *CharacterBody) IsGrounded() bool {
	return c != nil && c.grounded
}

// Position returns the character's base position.
func (c *CharacterBody) Position() mgl64.Vec3 {
	if c == nil || c.body == nil {
		return mgl64.Vec3{}
	}
	p := c.body.Position()
	return mgl64.Vec3{p.X, c.y, p.Y}
}

// Move slides the body horizontally against walls, then resolves height
// against the floor.
func (c *CharacterBody) Move(delta mgl64.Vec3) bool {
	if c == nil || c.body == nil {
		return false
	}
	horizontal := cp.Vector{X: delta.X(), Y: delta.Z()}
	if length := horizontal.Length(); length > 0 {
		// sub-step so a long move cannot tunnel through a thin wall
		steps := int(math.Ceil(length / c.radius))
		if steps < 1 {
			steps = 1
		}
		step := horizontal.Mult(1 / float64(steps))
		pos := c.body.Position()
		for i := 0; i < steps; i++ {
			pos = pos.Add(step)
			c.body.SetPosition(pos)
			pos = c.depenetrate()
		}
	}

	c.y += delta.Y()
	c.grounded = false
	if c.y <= c.world.floorY {
		c.y = c.world.floorY
		c.grounded = true
	}
	return c.grounded
}

// Remove takes the body out of the physics space.
func (c *CharacterBody) Remove() {
	if c == nil || c.body == nil {
		return
	}
	space := c.world.space
	if c.shape != nil {
		space.RemoveShape(c.shape)
	}
	space.RemoveBody(c.body)
	c.body = nil
	c.shape = nil
}

func (c *CharacterBody) depenetrate() cp.Vector {
	pos := c.body.Position()
	for round := 0; round < depenetrateRounds; round++ {
		var correction cp.Vector
		c.world.space.ShapeQuery(c.shape, func(other *cp.Shape, points *cp.ContactPointSet) {
			if other.Sensor() || points.Count == 0 {
				return
			}
			deepest := points.Points[0].Distance
			for i := 1; i < points.Count; i++ {
				if points.Points[i].Distance < deepest {
					deepest = points.Points[i].Distance
				}
			}
			if deepest < 0 {
				correction = correction.Add(points.Normal.Mult(deepest))
			}
		})
		if correction.LengthSq() == 0 {
			break
		}
		pos = pos.Add(correction)
		c.body.SetPosition(pos)
	}
	return pos
}
