// Package services contains stateless domain services that implement logic
// spanning an aggregate and auxiliary domain concepts.
package services
