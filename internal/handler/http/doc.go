// Package http implements the REST transport of the intake server.
//
// Routes list the catalog forms, accept and list submissions, serve the
// geography table and report the server version. Trace ids, access logging
// and gzip compression are handled by middleware before requests reach the
// service layer. Error bodies are plain text taken from package app.
package http
