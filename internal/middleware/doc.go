// Package middleware provides the HTTP middleware wrapped around the Holocron
// API router.
//
//   - RequestID: propagates a well-formed X-Request-ID or assigns a UUID
//   - Logger: one slog record per request, leveled by status
//   - Recovery: turns panics into the internal error envelope
//   - CORS: origin allow-list and preflight answers; "*" allows any origin
//   - StripSlashes: serves /user/ like /user
//   - Compress: gzip for clients that accept it
//
// Chain composes them; the first middleware listed is the outermost:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// RequestAttrs returns the method, path and request_id attributes that every
// request-scoped log record starts with.
package middleware
