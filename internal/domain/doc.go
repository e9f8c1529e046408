// Package domain defines the core business entities (Task, User) and the
// validation rules that guard them before any persistence call is made.
package domain
