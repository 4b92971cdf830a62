// Package service manages the lifecycle of front-end infrastructure: terminal screen, audio output
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources the simulation itself never touches
//
// Lifecycle:
//  1. Construction (via the owning package)
//  2. Init() - acquire resources (open devices, allocate screens)
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Init acquires resources
	Init() error

	// Start begins service operation (launches goroutines if any)
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
