// Package memory holds the in-process state kept by the runtime while
// deliveries are in progress. History lives elsewhere, outside this core.
package memory

import (
	"context"
	"sort"
	"sync"

	"courierd/internal/domain/entity"
	"courierd/internal/domain/repository"

	"github.com/google/uuid"
)

type assignmentRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entity.DeliveryAssignment
}

// NewAssignmentRepository creates the in-memory assignment store.
func NewAssignmentRepository() repository.AssignmentRepository {
	return &assignmentRepository{
		records: make(map[uuid.UUID]*entity.DeliveryAssignment),
	}
}

// Upsert stores or replaces the record for the assignment's id. The store
// keeps its own copy so a single id never has two structurally different
// records alive at once.
func (r *assignmentRepository) Upsert(ctx context.Context, assignment *entity.DeliveryAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[assignment.ID] = assignment.Clone()

	return nil
}

// FindByID retrieves a copy of the assignment by its unique ID.
func (r *assignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, repository.ErrAssignmentNotFound
	}

	return record.Clone(), nil
}

// List retrieves copies of all assignments, most urgent first with id as a
// deterministic tie breaker.
func (r *assignmentRepository) List(ctx context.Context) ([]*entity.DeliveryAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignments := make([]*entity.DeliveryAssignment, 0, len(r.records))
	for _, record := range r.records {
		assignments = append(assignments, record.Clone())
	}

	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Priority.Weight() != assignments[j].Priority.Weight() {
			return assignments[i].Priority.Weight() > assignments[j].Priority.Weight()
		}

		return assignments[i].ID.String() < assignments[j].ID.String()
	})

	return assignments, nil
}

// Remove deletes the assignment from the active set.
func (r *assignmentRepository) Remove(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return repository.ErrAssignmentNotFound
	}
	delete(r.records, id)

	return nil
}

// CountActive returns how many assignments are currently being executed.
func (r *assignmentRepository) CountActive(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, record := range r.records {
		if record.IsActive() {
			count++
		}
	}

	return count, nil
}
