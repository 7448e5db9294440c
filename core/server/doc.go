// Package server holds the HTTP server configuration.
//
// The configuration covers the listen port and the optional API key used by
// the auth middleware. Defaults are declared through struct tags and loaded
// by the core/config package.
package server
