// package store holds the process-wide application state.
//
// [Store] owns the normalized word/track lists, the resolved user
// identity, and the current filter/sort selections. All reads return
// freshly-built values, so callers can never mutate store state through
// a returned projection. The single bulk load entry point,
// [Store.LoadAppData], coalesces concurrent callers onto one in-flight
// fetch and falls back to embedded fixture data only when every backend
// source fails.
//
// The derived view functions in views.go are pure: given the same lists
// and selection they always produce equal output, so the UI layers call
// them on every render.
package store
