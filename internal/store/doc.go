// Package store holds the client's global state and the only way to change it.
//
// [State] is owned by a [Store]. Changes arrive as [Command] values, a closed set of variants
// ([AddFavorite], [RemoveFavorite], [SetMovies], [SetUser], [ClearUser], [SetShowAllMovies], [Navigate]),
// and are folded into the state by the pure reducer [Apply]. The store serializes dispatches and notifies
// subscribers after each one.
//
// Components never read the whole state. [ProjectReadState] extracts the read-only view a movie list needs,
// and [ProjectWriteOperations] binds the two local favorite mutations to a dispatch function.
//
// [History] is the navigation history; routes are appended with [History.Push].
package store
