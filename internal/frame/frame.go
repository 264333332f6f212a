// internal/frame/frame.go
package frame

import (
	"go-missile-command/internal/component"
	"go-missile-command/internal/types"
)

// TargetState is a ground target as seen by a renderer.
type TargetState struct {
	ID   types.EntityID `msgpack:"id"`
	Kind component.Kind `msgpack:"kind"`
	X    float64        `msgpack:"x"`
	Y    float64        `msgpack:"y"`
	W    float64        `msgpack:"w"`
	H    float64        `msgpack:"h"`
}

// ProjectileState carries the origin so the trail can be drawn.
type ProjectileState struct {
	ID      types.EntityID `msgpack:"id"`
	OriginX float64        `msgpack:"ox"`
	OriginY float64        `msgpack:"oy"`
	X       float64        `msgpack:"x"`
	Y       float64        `msgpack:"y"`
}

// InterceptorState is a trail while traveling and a circle once exploded.
type InterceptorState struct {
	ID       types.EntityID `msgpack:"id"`
	OriginX  float64        `msgpack:"ox"`
	OriginY  float64        `msgpack:"oy"`
	X        float64        `msgpack:"x"`
	Y        float64        `msgpack:"y"`
	Exploded bool           `msgpack:"exploded"`
	Radius   float64        `msgpack:"r"`
}

// Frame is a value snapshot of one session after a tick. It shares no
// memory with the simulation.
type Frame struct {
	Tick      uint64            `msgpack:"tick"`
	Level     int               `msgpack:"level"`
	Spawned   int               `msgpack:"spawned"`
	Destroyed int               `msgpack:"destroyed"`
	Quota     int               `msgpack:"quota"`
	Outcome   component.Outcome `msgpack:"outcome"`
	Paused    bool              `msgpack:"paused"`

	// Advisory level data, shown but never enforced.
	RocketCount int     `msgpack:"rocketCount"`
	AttackRate  float64 `msgpack:"attackRate"`
	Timer       int     `msgpack:"timer"`

	Targets      []TargetState      `msgpack:"targets"`
	Projectiles  []ProjectileState  `msgpack:"projectiles"`
	Interceptors []InterceptorState `msgpack:"interceptors"`
}
