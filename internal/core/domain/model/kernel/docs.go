// Package kernel contains shared value objects used across the domain model.
// These are small, immutable types with no dependencies on other domain packages.
package kernel
