// Package server runs the temporary loopback HTTP server that completes
// the sign-in flow.
//
// # Sign-in callback
//
// The backend's Google OAuth flow ends with a redirect to a local
// address carrying either a ?token= or an ?error= query parameter.
// [SignInHandler] receives that redirect, renders a minimal "return to
// the terminal" page, and delivers exactly one [SignInResult] on its
// result channel. Only the first callback is processed.
//
// [WaitForSignIn] ties it together: it starts the server on a loopback
// address, waits for the callback or context cancellation, and shuts the
// server down before returning.
//
// # Router infrastructure
//
// [Router] and [Middleware] provide routing with a middleware stack.
// [BasicRouter] wraps [http.ServeMux] with method filtering; middleware
// is applied in reverse order, following the standard Go pattern.
// [LogRequests] is the one middleware the sign-in server uses.
package server
