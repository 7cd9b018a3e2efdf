// Package storage defines the persistence interfaces for the atlas model.
//
// It describes what a run hands to a store and what a store reports back.
// Implementations live in subpackages; sqlite is the only one.
package storage
