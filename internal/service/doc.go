// Package service implements the task and user business logic: precondition
// checks against the persistence gateway followed by at most one write per
// call. Services are stateless between calls.
package service
