// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO; the only third-party imports are
// regexp2 for term matching and uuid for draft IDs.
package services
