package mcexecutor

import (
	"admin-dashboard-backend/lib/envelope"
	"admin-dashboard-backend/models"

	"github.com/pkg/errors"
)

// Provider applies a decoded change against the authoritative store of one
// entity type. Mutations must tolerate at-least-once delivery: a retried
// Create on an existing natural key and a retried Delete of a missing row
// are both successes.
type Provider interface {
	Create(spaceID string, fields envelope.FieldMap) error
	Update(spaceID, targetID string, fields envelope.FieldMap) error
	Delete(spaceID, targetID string) error
}

// Registry is the entity-type dispatch table. The engine resolves executors
// here and stays ignorant of entity-specific logic; supporting a new entity
// type is a Register call, not an engine change.
type Registry struct {
	executors map[models.EntityType]Provider
}

func NewRegistry() *Registry {
	return &Registry{
		executors: map[models.EntityType]Provider{},
	}
}

func (r *Registry) Register(entityType models.EntityType, executor Provider) {
	r.executors[entityType] = executor
}

func (r *Registry) Get(entityType models.EntityType) (Provider, error) {
	executor, ok := r.executors[entityType]
	if !ok {
		return nil, errors.Errorf("no executor registered for entity type %q", entityType)
	}
	return executor, nil
}
