package io

// Contains the minimal data needed to compute a single row of the height field
type WorkUnit struct {
	Row int
}
