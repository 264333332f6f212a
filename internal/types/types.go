package types

// EntityID identifies a live entity for the lifetime of a session.
type EntityID uint64
