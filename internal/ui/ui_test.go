package ui

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moviefav/internal/favorites"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
	tu "github.com/desertthunder/moviefav/internal/testing"
)

type fakeBackend struct {
	movies   []models.Movie
	err      error
	login    *services.LoginResult
	loginErr error
}

func (f *fakeBackend) Movies(ctx context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return f.login, f.loginErr
}

var testMovies = []models.Movie{
	{ID: 1, Title: "Spirited Away", ReleaseDate: "2001-07-20"},
	{ID: 2, Title: "Heat"},
	{ID: 4, Title: "Paddington 2"},
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type harness struct {
	model   *Model
	store   *store.Store
	remote  *tu.MockRemote
	toggler *favorites.Toggler
	backend *fakeBackend
}

func newHarness(t *testing.T, initial store.State) *harness {
	t.Helper()

	logger := shared.NewLogger(&bytes.Buffer{})
	remote := &tu.MockRemote{}
	results := make(chan favorites.Result, 8)
	toggler := favorites.NewToggler(favorites.TogglerOpts{
		Remote:    remote,
		Logger:    logger,
		Serialize: true,
		RateLimit: 1000,
		Burst:     10,
		Results:   results,
	})
	s := store.New(initial, nil)
	backend := &fakeBackend{movies: testMovies}

	m := NewModel(context.Background(), ModelOpts{
		Store:   s,
		Backend: backend,
		Toggler: toggler,
		Results: results,
		Logger:  logger,
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	return &harness{model: m, store: s, remote: remote, toggler: toggler, backend: backend}
}

func TestModel(t *testing.T) {
	t.Run("Movies Fetched", func(t *testing.T) {
		h := newHarness(t, store.State{ShowAllMovies: true})

		msg := h.model.fetchMovies()()
		h.model.Update(msg)

		if got := h.store.State().Movies; len(got) != len(testMovies) {
			t.Fatalf("expected %d movies in store, got %d", len(testMovies), len(got))
		}
		if got := len(h.model.movieList.Items()); got != len(testMovies) {
			t.Errorf("expected %d list items, got %d", len(testMovies), got)
		}
	})

	t.Run("Movies Fetch Error", func(t *testing.T) {
		h := newHarness(t, store.State{})
		h.backend.err = errors.New("offline")

		h.model.Update(h.model.fetchMovies()())

		if h.model.err == nil {
			t.Fatal("expected error to be stored")
		}
		if !strings.Contains(h.model.View(), "offline") {
			t.Errorf("expected error in view, got:\n%s", h.model.View())
		}
	})

	t.Run("Toggle Without User Opens Login", func(t *testing.T) {
		h := newHarness(t, store.State{Movies: testMovies, ShowAllMovies: true})
		h.model.refreshItems()

		h.model.Update(keyPress("f"))
		h.toggler.Wait()

		if h.model.ViewState() != LoginView {
			t.Errorf("expected LoginView, got %v", h.model.ViewState())
		}
		if got := h.store.State().History; !slices.Equal(got, store.History{store.LoginRoute}) {
			t.Errorf("expected history [/login], got %v", got)
		}
		if calls := h.remote.Calls(); len(calls) != 0 {
			t.Errorf("expected no remote calls, got %v", calls)
		}
		if !strings.Contains(h.model.View(), "Log in") {
			t.Errorf("expected login form, got:\n%s", h.model.View())
		}
	})

	t.Run("Toggle Existing Favorite Removes It", func(t *testing.T) {
		h := newHarness(t, store.State{
			Movies:        testMovies,
			ShowAllMovies: true,
			User:          &models.User{ID: 4, Name: "Alan", Favorites: []int{1, 4}},
		})
		h.model.refreshItems()

		h.model.Update(keyPress("f"))
		h.toggler.Wait()

		if got := h.store.State().User.Favorites; !slices.Equal(got, []int{4}) {
			t.Errorf("expected favorites [4], got %v", got)
		}
		want := []tu.RemoteCall{{Method: "delete", MovieID: 1}}
		if calls := h.remote.Calls(); !slices.Equal(calls, want) {
			t.Errorf("expected %v, got %v", want, calls)
		}
		if !strings.Contains(h.model.status, "Removed") {
			t.Errorf("expected removal status, got %q", h.model.status)
		}
	})

	t.Run("Toggle New Favorite Adds It", func(t *testing.T) {
		h := newHarness(t, store.State{
			Movies:        testMovies,
			ShowAllMovies: true,
			User:          &models.User{ID: 4, Name: "Alan", Favorites: []int{4}},
		})
		h.model.refreshItems()

		h.model.Update(keyPress("enter"))
		h.toggler.Wait()

		if got := h.store.State().User.Favorites; !slices.Equal(got, []int{4, 1}) {
			t.Errorf("expected favorites [4 1], got %v", got)
		}
		want := []tu.RemoteCall{{Method: "create", MovieID: 1}}
		if calls := h.remote.Calls(); !slices.Equal(calls, want) {
			t.Errorf("expected %v, got %v", want, calls)
		}
	})

	t.Run("Remote Failure Shows Warning", func(t *testing.T) {
		h := newHarness(t, store.State{})

		h.model.Update(toggleResultMsg(favorites.Result{Decision: favorites.Add, MovieID: 2, Err: errors.New("boom")}))

		if !h.model.warn || !strings.Contains(h.model.status, "boom") {
			t.Errorf("expected warning status, got %q (warn=%v)", h.model.status, h.model.warn)
		}
	})

	t.Run("Show All Flips", func(t *testing.T) {
		h := newHarness(t, store.State{Movies: testMovies, User: &models.User{ID: 4, Favorites: []int{4}}})
		h.model.refreshItems()

		if got := len(h.model.movieList.Items()); got != 1 {
			t.Fatalf("expected 1 favorite displayed, got %d", got)
		}

		h.model.Update(keyPress("a"))

		if !h.store.State().ShowAllMovies {
			t.Error("expected ShowAllMovies to be set")
		}
		if got := len(h.model.movieList.Items()); got != len(testMovies) {
			t.Errorf("expected %d movies displayed, got %d", len(testMovies), got)
		}
	})

	t.Run("Quit", func(t *testing.T) {
		h := newHarness(t, store.State{})
		_, cmd := h.model.Update(keyPress("q"))
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})
}

func TestLoginView(t *testing.T) {
	t.Run("Open And Go Back", func(t *testing.T) {
		h := newHarness(t, store.State{})

		h.model.Update(keyPress("l"))
		if h.model.ViewState() != LoginView {
			t.Fatalf("expected LoginView, got %v", h.model.ViewState())
		}

		h.model.Update(keyPress("esc"))
		if h.model.ViewState() != MovieListView {
			t.Errorf("expected MovieListView after esc, got %v", h.model.ViewState())
		}
	})

	t.Run("Empty Submit Is Rejected", func(t *testing.T) {
		h := newHarness(t, store.State{})
		h.model.Update(keyPress("l"))

		h.model.Update(keyPress("enter"))
		_, cmd := h.model.Update(keyPress("enter"))

		if cmd != nil {
			t.Error("expected no login command")
		}
		if !errors.Is(h.model.login.err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", h.model.login.err)
		}
	})

	t.Run("Submit Logs In", func(t *testing.T) {
		h := newHarness(t, store.State{Movies: testMovies})
		h.backend.login = &services.LoginResult{
			User:  models.User{ID: 4, Name: "Alan", Favorites: []int{1, 4}},
			Token: "tok",
		}

		h.model.Update(keyPress("l"))
		h.model.Update(keyPress("alan@example.com"))
		h.model.Update(keyPress("tab"))
		h.model.Update(keyPress("secret"))

		_, cmd := h.model.Update(keyPress("enter"))
		if cmd == nil {
			t.Fatal("expected login command")
		}
		h.model.Update(cmd())

		state := h.store.State()
		if state.User == nil || state.User.ID != 4 {
			t.Fatalf("expected user 4 in store, got %+v", state.User)
		}
		if h.model.ViewState() != MovieListView {
			t.Errorf("expected MovieListView after login, got %v", h.model.ViewState())
		}
		if got := len(h.model.movieList.Items()); got != 2 {
			t.Errorf("expected 2 favorites displayed, got %d", got)
		}
	})

	t.Run("Failed Login Stays", func(t *testing.T) {
		h := newHarness(t, store.State{})
		h.backend.loginErr = shared.ErrAuthFailed

		h.model.Update(keyPress("l"))
		h.model.Update(keyPress("a@b.c"))
		h.model.Update(keyPress("tab"))
		h.model.Update(keyPress("x"))
		_, cmd := h.model.Update(keyPress("enter"))
		h.model.Update(cmd())

		if h.model.ViewState() != LoginView {
			t.Errorf("expected LoginView, got %v", h.model.ViewState())
		}
		if !strings.Contains(h.model.View(), "Invalid email or password") {
			t.Errorf("expected auth error in view, got:\n%s", h.model.View())
		}
	})
}
