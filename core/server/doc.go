// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines the
// settings it reads: the listen port, the API key protecting every route and the
// request read timeout.
package server
