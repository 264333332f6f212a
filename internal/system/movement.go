// internal/system/movement.go
package system

import (
	"go-missile-command/internal/entity"
	"go-missile-command/internal/types"
)

// MovementSystem advances every projectile and interceptor by one tick.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update moves all entities and returns the interceptors that detonated this tick.
func (s *MovementSystem) Update(projectiles []entity.Projectile, interceptors []entity.Interceptor) []types.EntityID {
	for _, p := range projectiles {
		p.Update()
	}

	var detonated []types.EntityID
	for _, i := range interceptors {
		wasExploded := i.Exploded()
		i.Update()
		if !wasExploded && i.Exploded() {
			detonated = append(detonated, i.ID)
		}
	}
	return detonated
}
