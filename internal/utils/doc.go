// Package utils provides small helpers shared by the client packages:
// the resty HTTP client wrapper, bearer token parsing and run id
// generation.
package utils
