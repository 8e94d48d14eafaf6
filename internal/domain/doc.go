// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, identity, contacts) and contracts (interfaces) only.
package domain
