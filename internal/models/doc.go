// Package models defines domain entities and persistence interfaces for moviefav.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): plain structs exchanged with the favorites API and the local store
//   - [Movie] : A movie with display metadata, keyed by movie_id
//   - [User] : The logged in user and the ordered IDs of their favorite movies
//
// 2. Persistent Entities: Database-backed records
//   - [Favorite] : A user-movie association held by the favorites API
//   - [Session] : The client's cached login (user, token, favorite IDs)
//   - [Account] : A server side user with a password hash
//
// Persistent entities implement the [Model] interface, and [Repository] describes standard CRUD access.
package models
