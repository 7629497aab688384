package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/moviefav/internal/favorites"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MovieListView ViewState = iota
	LoginView
)

// Backend is the part of the favorites API the TUI calls directly.
type Backend interface {
	Movies(ctx context.Context) ([]models.Movie, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

// ModelOpts contains the dependencies of a [Model].
type ModelOpts struct {
	Store   *store.Store
	Backend Backend
	Toggler *favorites.Toggler
	Results <-chan favorites.Result // the toggler's result channel
	Logger  *log.Logger
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	store     *store.Store
	backend   Backend
	toggler   *favorites.Toggler
	results   <-chan favorites.Result
	logger    *log.Logger
	width     int
	height    int
	movieList list.Model
	login     loginForm
	status    string
	warn      bool
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts ModelOpts) *Model {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	m := &Model{
		ctx:       ctx,
		store:     opts.Store,
		backend:   opts.Backend,
		toggler:   opts.Toggler,
		results:   opts.Results,
		logger:    opts.Logger,
		movieList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		login:     newLoginForm(),
		help:      help.New(),
		keys:      newKeyMap(),
	}
	m.refreshItems()
	return m
}

// Init fetches the movie catalog and starts listening for remote toggle results.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchMovies(), m.waitForResult())
}

// ViewState returns the view selected by the store's current route.
func (m *Model) ViewState() ViewState {
	if m.store.State().Route() == store.LoginRoute {
		return LoginView
	}
	return MovieListView
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.movieList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.ViewState() {
		case LoginView:
			return m.handleLoginKeys(msg)
		default:
			return m.handleMovieListKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateViews(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgMoviesFetched:
		data := msg.data.(moviesFetched)
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.err = nil
		m.store.Dispatch(store.SetMovies{Movies: data.movies})
		m.refreshItems()
		return m, nil

	case MsgLoginResult:
		data := msg.data.(loginResult)
		m.login.submitting = false
		if data.err != nil {
			m.login.err = data.err
			return m, nil
		}
		user := data.result.User
		m.store.Dispatch(store.SetUser{User: &user})
		m.store.Dispatch(store.Navigate{Route: store.HomeRoute})
		m.login.reset()
		m.setStatus(fmt.Sprintf("Logged in as %s", user.Name), false)
		m.refreshItems()
		return m, nil

	case MsgToggleResult:
		r := msg.data.(favorites.Result)
		if r.Err != nil {
			m.setStatus(fmt.Sprintf("Could not save favorite %d (%s): %v", r.MovieID, r.Decision, r.Err), true)
		}
		return m, m.waitForResult()
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.ViewState() {
	case LoginView:
		return m.renderLogin()
	default:
		return m.renderMovieList()
	}
}

func (m *Model) handleMovieListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.movieList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.movieList, cmd = m.movieList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggle):
		return m.toggleSelected()
	case key.Matches(msg, m.keys.showAll):
		m.store.Dispatch(store.SetShowAllMovies{ShowAll: !m.store.State().ShowAllMovies})
		m.refreshItems()
		return m, nil
	case key.Matches(msg, m.keys.login):
		m.store.Dispatch(store.Navigate{Route: store.LoginRoute})
		return m, m.login.focus(0)
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

// toggleSelected runs the favorite toggle for the highlighted movie.
func (m *Model) toggleSelected() (tea.Model, tea.Cmd) {
	item, ok := m.movieList.SelectedItem().(movieItem)
	if !ok {
		return m, nil
	}

	decision, err := m.toggler.Toggle(m.ctx, favorites.Input{
		Movie:   item.movie,
		User:    m.store.ReadState().User,
		History: m.store.Navigator(),
		Ops:     m.store.WriteOperations(),
	})
	if err != nil {
		if errors.Is(err, shared.ErrToggleInFlight) {
			m.setStatus(fmt.Sprintf("Still saving %s", item.movie.Title), true)
		} else {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}

	switch decision {
	case favorites.Redirect:
		return m, m.login.focus(0)
	case favorites.Remove:
		m.setStatus(fmt.Sprintf("Removed %s from favorites", item.movie.Title), false)
	case favorites.Add:
		m.setStatus(fmt.Sprintf("Added %s to favorites", item.movie.Title), false)
	}
	m.refreshItems()
	return m, nil
}

func (m *Model) updateViews(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ViewState() {
	case LoginView:
		cmd = m.login.update(msg)
	default:
		m.movieList, cmd = m.movieList.Update(msg)
	}
	return m, cmd
}

// refreshItems rebuilds the list from the store's displayed movies.
func (m *Model) refreshItems() {
	state := m.store.State()
	displayed := state.Displayed()

	items := make([]list.Item, len(displayed))
	for i, movie := range displayed {
		items[i] = movieItem{movie: movie, favorite: state.User.HasFavorite(movie.ID)}
	}
	m.movieList.SetItems(items)

	title := "Favorite Movies"
	if state.ShowAllMovies {
		title = "All Movies"
	}
	if state.User != nil {
		title = fmt.Sprintf("%s · %s", title, state.User.Name)
	}
	m.movieList.Title = title
}

func (m *Model) setStatus(s string, warn bool) {
	m.status = s
	m.warn = warn
	if warn {
		m.logger.Warn(s)
	}
}

func (m *Model) fetchMovies() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.backend.Movies(m.ctx)
		return moviesFetchedMsg(movies, err)
	}
}

func (m *Model) waitForResult() tea.Cmd {
	if m.results == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-m.results
		if !ok {
			return nil
		}
		return toggleResultMsg(r)
	}
}

func (m *Model) renderMovieList() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	body := m.movieList.View()
	if len(m.movieList.Items()) == 0 {
		empty := "No favorites yet. Press a to browse every movie."
		if m.store.State().ShowAllMovies {
			empty = "No movies."
		}
		body = fmt.Sprintf("%s\n\n%s", styles.title.Render(m.movieList.Title), styles.help.Render(empty))
	}

	helpKeys := []key.Binding{m.keys.toggle, m.keys.showAll, m.keys.login, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", body, m.renderStatus(), helpView)
}

func (m *Model) renderStatus() string {
	switch {
	case m.status == "":
		return ""
	case m.warn:
		return styles.warn.Render(m.status)
	default:
		return styles.ok.Render(m.status)
	}
}
