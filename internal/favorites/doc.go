// Package favorites decides what a favorite toggle does and carries it out.
//
// # Decision
//
// [Decide] is pure. Given a movie and the current user it returns one of three outcomes:
//
//  1. [Redirect] : no session, so the caller is sent to the login route
//  2. [Remove] : the movie's ID is in the user's favorites
//  3. [Add] : it is not
//
// # Effects
//
// [Toggler.Toggle] takes an explicit [Input] (movie, user, navigation history and the local write operations) and
// applies the decision. A redirect only appends "/login" to the history. Remove and add first mutate local state and
// then issue the matching remote call.
//
// Remote calls are fire-and-forget. Each runs on its own goroutine behind a rate limiter, its outcome is logged,
// and a [Result] is offered to the optional results channel without blocking. [Toggler.Wait] blocks until every
// in-flight call finishes.
//
// A failed remote call does not roll back the local mutation.
//
// # Serialized Toggles
//
// With serialization enabled the toggler keeps a set of movie IDs whose remote call is still running, and
// [Toggler.Toggle] rejects a second toggle for such a movie with [shared.ErrToggleInFlight] before any effect.
package favorites
