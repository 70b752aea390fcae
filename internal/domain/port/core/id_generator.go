package core

// IDGenerator supplies opaque identifiers for new rows.
// Identifiers must be unique within the process lifetime even across
// rapid successive calls.
type IDGenerator interface {
	NewID() string
}
