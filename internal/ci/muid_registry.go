package ci

import "github.com/puzpuzpuz/xsync/v4"

// MUIDRegistry is a concurrent "known devices" cache shared across
// Dispatcher instances: a lock-free map from MUID to the group it was last
// seen on, used to build a check_muid callback without requiring external
// synchronization (mirroring the teacher's xsync.Map-backed session
// registries in internal/dmr/hub/subscription_manager.go).
type MUIDRegistry struct {
	known *xsync.Map[uint32, uint8]
}

// NewMUIDRegistry returns an empty registry.
func NewMUIDRegistry() *MUIDRegistry {
	return &MUIDRegistry{known: xsync.NewMap[uint32, uint8]()}
}

// Observe records that muid was last seen on group.
func (r *MUIDRegistry) Observe(group uint8, muid uint32) {
	r.known.Store(muid, group)
}

// Forget removes a MUID, e.g. on receipt of an InvalidateMUID message.
func (r *MUIDRegistry) Forget(muid uint32) {
	r.known.Delete(muid)
}

// CheckMUID reports whether muid is known on group. Use this as the
// check_muid callback passed to NewDispatcher; the broadcast MUID is always
// accepted by the dispatcher before this is ever consulted.
func (r *MUIDRegistry) CheckMUID(group uint8, muid uint32) bool {
	seenGroup, ok := r.known.Load(muid)
	return ok && seenGroup == group
}
