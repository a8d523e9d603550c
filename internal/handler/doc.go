// Package handler provides HTTP request handlers for the Holocron API.
//
// Each handler struct wraps the service for one resource. Handler methods
// return an error instead of writing failures themselves; Wrap adapts them to
// http.HandlerFunc, maps the error through MapServiceError and writes the
// {"message": ...} envelope.
//
// # Response Format
//
//   - List:   {"message": "OK", "total_records": n, "results": [...]}
//   - Item:   {"message": "OK", "result": {...}}
//   - Create: the submitted JSON body, echoed verbatim
//   - Error:  {"message": "..."} with the status on the response line
//
// # Example Usage
//
//	users := NewUserHandler(userService)
//	mux.HandleFunc("GET /user/{id}", Wrap(users.Get))
package handler
