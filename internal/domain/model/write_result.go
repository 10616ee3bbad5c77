package model

// WriteResult reports the outcome of a batch variant write. Errors holds
// per-variant failures; the batch itself keeps going past them.
type WriteResult struct {
	Created []string
	Updated []string
	Errors  []string
}
