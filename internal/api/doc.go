// Package api exposes the task and user services over HTTP. Handlers
// validate request payloads, delegate to the service layer and translate
// the domain/store error taxonomy into HTTP status codes.
package api
