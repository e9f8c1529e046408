// Package mocks provides in-memory implementations of the store
// interfaces for use in tests.
package mocks
