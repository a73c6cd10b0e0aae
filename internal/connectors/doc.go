// Package connectors holds the implementations of the star, list and
// membership sources. Each subpackage talks to one hosting service.
package connectors
