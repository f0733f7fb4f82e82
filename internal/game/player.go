package game

import (
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/collision"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/config"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/fixed"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/world"
)

// playerBoxSize is the side of the player's square collision box in world
// units. A quarter tile keeps the view out of wall corners without making
// doorway-width gaps impassable.
const playerBoxSize = 16

// Player carries the first-person pose: an integer position in world
// units and a heading in angle units. Movement resolves against the tile
// grid with wall sliding.
type Player struct {
	X       int
	Y       int
	Heading fixed.Angle

	moveSpeed int
	turnSpeed int
	collider  *collision.System
}

// tileBlocker adapts the level map to the collision system.
type tileBlocker struct {
	m *world.Map
}

func (tb tileBlocker) IsTileBlocking(tileX, tileY int) bool {
	return tb.m.Solid(tileX, tileY)
}

// NewPlayer spawns a player at the level's spawn point, facing +X.
func NewPlayer(cfg *config.Config, level *world.Map) *Player {
	x, y := level.SpawnWorld(cfg.GetTileSize())
	return &Player{
		X:         x,
		Y:         y,
		Heading:   fixed.AngleRight,
		moveSpeed: cfg.GetMoveSpeed(),
		turnSpeed: cfg.GetTurnSpeed(),
		collider:  collision.NewSystem(tileBlocker{level}, cfg.GetTileSize()),
	}
}

// MoveForward steps along the heading; dir is +1 forward, -1 backward.
func (p *Player) MoveForward(dir int) {
	sin, cos, _, _ := fixed.Lookup(p.Heading)
	dx := int(fixed.MulInt(cos, int32(dir*p.moveSpeed)))
	dy := int(fixed.MulInt(sin, int32(dir*p.moveSpeed)))
	p.move(dx, dy)
}

// Strafe steps perpendicular to the heading; dir is +1 left, -1 right.
func (p *Player) Strafe(dir int) {
	side := p.Heading.Add(fixed.AngleUnits / 4)
	sin, cos, _, _ := fixed.Lookup(side)
	dx := int(fixed.MulInt(cos, int32(dir*p.moveSpeed)))
	dy := int(fixed.MulInt(sin, int32(dir*p.moveSpeed)))
	p.move(dx, dy)
}

// Turn rotates the heading; dir is +1 counter-clockwise, -1 clockwise.
func (p *Player) Turn(dir int) {
	p.Heading = p.Heading.Add(dir * p.turnSpeed)
}

func (p *Player) move(dx, dy int) {
	box := collision.NewBoundingBox(p.X, p.Y, playerBoxSize, playerBoxSize)
	p.X, p.Y = p.collider.SlideMove(box, dx, dy)
}

// Pose returns the position and heading in the pipeline's types.
func (p *Player) Pose() (uint16, uint16, fixed.Angle) {
	return uint16(p.X), uint16(p.Y), p.Heading
}
