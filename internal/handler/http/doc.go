// Package http implements the REST transport of the csv-keeper server.
//
// It wires the chi router, decodes JSON request bodies, maps service errors
// to HTTP status codes and hosts the cross-cutting middleware: request
// tracing, access logging, gzip compression and panic recovery. Passwords
// arrive in request bodies and are never written to logs.
package http
