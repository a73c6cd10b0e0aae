// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Renderer is a pure function of its inputs: it never touches the
// network or the filesystem, and it reports listed repositories through
// the returned domain.ListedSet rather than mutating shared records.
package services
