// Package server provides the development favorites API: routing, middleware and the SQLite backed handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns, so one path can serve several methods and
// wildcard segments are read with [http.Request.PathValue].
//
// # Endpoints
//
//	POST   /api/v1/login                            → user and bearer token
//	GET    /api/v1/movies                           → movie catalog
//	GET    /api/v1/users/{id}/favorites             → favorite movie IDs (auth)
//	POST   /api/v1/users/{id}/favorites             → create favorite, idempotent (auth)
//	DELETE /api/v1/users/{id}/favorites/{movie_id}  → delete favorite (auth)
//	GET    /health                                  → database ping
//
// Authenticated routes go through [RequireAuth] and only serve the token's own user. Errors are JSON bodies of the
// form {"error": "..."}.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
// [HealthHandler] is registered this way.
//
// # Seeding
//
// [Seed] loads a small catalog and a demo account (demo@example.com / password) so the client has something to
// talk to.
package server
