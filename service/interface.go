package service

import "github.com/lixenwraith/chainburst/engine"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the audio speaker, the config watcher
//
// Lifecycle:
//  1. Construction
//  2. Init() - resolve configuration, open nothing long-lived
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error

	// Start begins service operation, called after every service initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// ResourceContributor is implemented by services that expose APIs to the ECS layer
// Optional interface - services not implementing it are skipped during contribution
type ResourceContributor interface {
	Contribute(w *engine.World)
}
