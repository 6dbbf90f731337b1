// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application; this package only defines
// the settings it needs: the listen port, the API key protecting every grid
// route and the request body limit.
package server
