//go:build !race

package internal

// IsRace reports whether the race detector is enabled.
const IsRace = false
