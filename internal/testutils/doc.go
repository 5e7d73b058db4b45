// Package testutils provides shared helpers for tests that exercise the API
// end to end: a test configuration, a fixed clock, and HTTP helpers for
// issuing JSON requests and checking error responses.
package testutils
