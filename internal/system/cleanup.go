package system

import (
	"go-missile-command/internal/entity"
	"go-missile-command/internal/types"
)

// CleanupSystem finds interceptors whose blast has collapsed.
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

// Update returns the ids to prune; the caller removes them after the scan.
func (s *CleanupSystem) Update(interceptors []entity.Interceptor) []types.EntityID {
	var spent []types.EntityID
	for _, i := range interceptors {
		if i.Spent() {
			spent = append(spent, i.ID)
		}
	}
	return spent
}
