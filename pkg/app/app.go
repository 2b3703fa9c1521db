// Package app defines the runtime contract the cmd/* binaries start.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
