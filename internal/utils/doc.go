// Package utils provides general-purpose helpers shared by the server and
// the command-line tool: identifier generation, JSON response writing and
// the HTTP client wrapper.
package utils
