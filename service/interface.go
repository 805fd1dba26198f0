package service

// Service defines the lifecycle of a long-lived infrastructure subsystem
// (audio device, terminal screen)
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags and environment
//  3. Start() - acquire devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - release resources; idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
