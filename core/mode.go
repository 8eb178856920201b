package core

// AppMode is the top-level application state. Exactly one mode is active
// at a time; transitions happen only in the controller loop.
type AppMode uint8

const (
	ModeMatrix AppMode = iota
	ModePaused
	ModeConfig
)
