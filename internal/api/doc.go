// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP to the planner and textbook services:
// handlers decode JSON, call a service, and map service and domain errors to
// status codes and safe messages (see errors.go).
package api
