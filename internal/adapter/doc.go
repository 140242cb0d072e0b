// Package adapter lowers the high-level presentation model to wire
// messages, and lifts the handful of wire types callers inspect back
// into model types.
//
// Lowering is total: every model presentation becomes a complete wire
// document with the styling scaffolding the host application expects
// (unit rectangle paths, disabled fills and strokes, full-width line
// masks). Lifting is intentionally partial. Read paths only need
// metadata and geometry; round-tripping a full document goes through
// package rv directly so unmodeled fields survive.
package adapter
