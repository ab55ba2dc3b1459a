package channel

import (
	"sync"

	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"
)

// listenerRegistry is the bounded per-kind listener table behind the
// manager's event surface. Unsubscribe removes exactly the registration it
// was created for, so screen lifecycles in the caller layer cannot leak
// handlers.
type listenerRegistry struct {
	mu     sync.Mutex
	nextID int

	newAssignment    map[int]func(*entity.DeliveryAssignment)
	assignmentUpdate map[int]func(*service.AssignmentUpdateEvent)
	notification     map[int]func(*service.NotificationEvent)
	phaseChange      map[int]func(entity.ConnectionState)
	forcedLogout     map[int]func()
}

func (r *listenerRegistry) addNewAssignment(fn func(*entity.DeliveryAssignment)) service.Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.newAssignment == nil {
		r.newAssignment = make(map[int]func(*entity.DeliveryAssignment))
	}
	id := r.nextID
	r.nextID++
	r.newAssignment[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.newAssignment, id)
	}
}

func (r *listenerRegistry) addAssignmentUpdate(fn func(*service.AssignmentUpdateEvent)) service.Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.assignmentUpdate == nil {
		r.assignmentUpdate = make(map[int]func(*service.AssignmentUpdateEvent))
	}
	id := r.nextID
	r.nextID++
	r.assignmentUpdate[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.assignmentUpdate, id)
	}
}

func (r *listenerRegistry) addNotification(fn func(*service.NotificationEvent)) service.Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.notification == nil {
		r.notification = make(map[int]func(*service.NotificationEvent))
	}
	id := r.nextID
	r.nextID++
	r.notification[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.notification, id)
	}
}

func (r *listenerRegistry) addPhaseChange(fn func(entity.ConnectionState)) service.Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phaseChange == nil {
		r.phaseChange = make(map[int]func(entity.ConnectionState))
	}
	id := r.nextID
	r.nextID++
	r.phaseChange[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.phaseChange, id)
	}
}

func (r *listenerRegistry) addForcedLogout(fn func()) service.Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedLogout == nil {
		r.forcedLogout = make(map[int]func())
	}
	id := r.nextID
	r.nextID++
	r.forcedLogout[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.forcedLogout, id)
	}
}

// Inbound event emits run synchronously on the read loop so server pushes
// are observed in arrival order.

func (r *listenerRegistry) emitNewAssignment(assignment *entity.DeliveryAssignment) {
	for _, fn := range r.snapshotNewAssignment() {
		fn(assignment)
	}
}

func (r *listenerRegistry) emitAssignmentUpdate(update *service.AssignmentUpdateEvent) {
	for _, fn := range r.snapshotAssignmentUpdate() {
		fn(update)
	}
}

func (r *listenerRegistry) emitNotification(notification *service.NotificationEvent) {
	for _, fn := range r.snapshotNotification() {
		fn(notification)
	}
}

// emitPhaseChange notifies asynchronously: it fires while the manager holds
// its state lock, so listeners are free to call back into the manager.
func (r *listenerRegistry) emitPhaseChange(state entity.ConnectionState) {
	for _, fn := range r.snapshotPhaseChange() {
		go fn(state)
	}
}

func (r *listenerRegistry) emitForcedLogout() {
	r.mu.Lock()
	listeners := make([]func(), 0, len(r.forcedLogout))
	for _, fn := range r.forcedLogout {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (r *listenerRegistry) snapshotNewAssignment() []func(*entity.DeliveryAssignment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listeners := make([]func(*entity.DeliveryAssignment), 0, len(r.newAssignment))
	for _, fn := range r.newAssignment {
		listeners = append(listeners, fn)
	}

	return listeners
}

func (r *listenerRegistry) snapshotAssignmentUpdate() []func(*service.AssignmentUpdateEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listeners := make([]func(*service.AssignmentUpdateEvent), 0, len(r.assignmentUpdate))
	for _, fn := range r.assignmentUpdate {
		listeners = append(listeners, fn)
	}

	return listeners
}

func (r *listenerRegistry) snapshotNotification() []func(*service.NotificationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listeners := make([]func(*service.NotificationEvent), 0, len(r.notification))
	for _, fn := range r.notification {
		listeners = append(listeners, fn)
	}

	return listeners
}

func (r *listenerRegistry) snapshotPhaseChange() []func(entity.ConnectionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listeners := make([]func(entity.ConnectionState), 0, len(r.phaseChange))
	for _, fn := range r.phaseChange {
		listeners = append(listeners, fn)
	}

	return listeners
}
