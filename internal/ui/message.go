package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moviefav/internal/favorites"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/services"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgMoviesFetched MsgKind = iota
	MsgLoginResult
	MsgToggleResult
)

type moviesFetched struct {
	movies []models.Movie
	err    error
}

type loginResult struct {
	result *services.LoginResult
	err    error
}

// moviesFetchedMsg is the constructor for [MsgMoviesFetched]
func moviesFetchedMsg(movies []models.Movie, err error) Msg {
	return Msg{kind: MsgMoviesFetched, data: moviesFetched{movies, err}}
}

// loginResultMsg is the constructor for [MsgLoginResult]
func loginResultMsg(result *services.LoginResult, err error) Msg {
	return Msg{kind: MsgLoginResult, data: loginResult{result, err}}
}

// toggleResultMsg is the constructor for [MsgToggleResult]
func toggleResultMsg(r favorites.Result) Msg {
	return Msg{kind: MsgToggleResult, data: r}
}
