// Package store defines the persistence gateway contracts consumed by the
// service layer, along with the error taxonomy shared by all store
// implementations.
package store
