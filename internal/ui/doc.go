// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [MovieListView] : browse movies, toggle favorites, flip between favorites and the whole catalog
//  2. [LoginView] : email and password form
//
// The view is derived from the store's navigation history: when the last route is "/login" the login form is shown.
// A favorite toggle without a session lands there the same way any other caller of the toggler would.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Remote favorite results flow through a channel from the toggler and surface as warnings when a call fails.
//
// Keyboard navigation uses vim-style bindings (j/k, f/enter, a, l, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
