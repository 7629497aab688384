// Package repositories implements SQLite persistence for the favorites client and the development API server.
//
// Key Implementations:
//   - [SessionRepository] : the client's cached login, a single row
//   - [UserRepository] : server accounts with email lookups and soft deletes
//   - [MovieRepository] : the movie catalog served by the API
//   - [FavoriteRepository] : user-movie associations, idempotent on create
//   - [TokenRepository] : bearer tokens issued at login
//
// [UserRepository] and [FavoriteRepository] implement [models.Repository].
package repositories
