// Package utils provides small helpers shared across the application:
// JSON response writing, the REST client wrapper, session token claims and
// identifier generation.
package utils
