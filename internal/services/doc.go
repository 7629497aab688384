// Package services defines the [Remote] and [FavoritesService] interfaces for the favorites API and implements
// them with [APIService].
//
// # Remote
//
// [Remote] is the narrow collaborator the favorite toggle needs: create or delete a favorite record by movie ID.
// Callers don't inspect the outcome beyond logging it.
//
// # APIService
//
// [APIService] speaks JSON over HTTP. The raw [APIService.Get], [APIService.Post] and [APIService.Delete] methods
// return an [APIResponse] and back both the typed methods and the `moviefav api` debugging commands.
//
// [APIService.WithSession] binds a user and token. Requests then carry the token as a bearer credential through an
// [oauth2.Transport] built from [oauth2.StaticTokenSource].
//
// # Error Handling
//
// Typed methods use errors from the shared package:
//   - [shared.ErrAPIRequest] : transport failure or non-2xx response
//   - [shared.ErrNotAuthenticated] : 401 response, or a session method called without a session
//   - [shared.ErrFavoriteNotFound] : 404 on delete
package services
