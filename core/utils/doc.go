// Package utils provides common utility functions for the equipment tracker.
// It includes type coercion helpers for the loosely-typed numeric fields of
// the write API and other shared logic that doesn't fit into
// domain-specific packages.
package utils
