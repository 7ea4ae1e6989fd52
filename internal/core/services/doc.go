// Package services implements the driving port interfaces.
// Services contain the core business logic: exhaustive combination
// search and deterministic tie-breaking.
//
// Services are pure Go with no CGO or external dependencies.
package services
