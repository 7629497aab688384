package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit = 5.0
	defaultBurst     = 2
)

// Input is everything a toggle needs, assembled by the caller.
type Input struct {
	Movie   models.Movie
	User    *models.User
	History store.Navigator
	Ops     store.WriteOperations
}

// Result reports how a remote favorite call finished.
type Result struct {
	Decision Decision
	MovieID  int
	Err      error
}

// TogglerOpts contains configuration options for creating a [Toggler].
type TogglerOpts struct {
	Remote    services.Remote
	Logger    *log.Logger
	Serialize bool          // reject toggles for a movie with a remote call in flight
	RateLimit float64       // remote calls per second (default: 5)
	Burst     int           // limiter burst (default: 2)
	Results   chan<- Result // optional; sends never block
}

// Toggler applies favorite toggles.
type Toggler struct {
	remote    services.Remote
	logger    *log.Logger
	limiter   *rate.Limiter
	serialize bool
	results   chan<- Result

	mu       sync.Mutex
	inFlight map[int]struct{}
	wg       sync.WaitGroup
}

// NewToggler creates a new [Toggler] with the provided options.
func NewToggler(opts TogglerOpts) *Toggler {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}

	return &Toggler{
		remote:    opts.Remote,
		logger:    opts.Logger,
		limiter:   rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
		serialize: opts.Serialize,
		results:   opts.Results,
		inFlight:  make(map[int]struct{}),
	}
}

// Toggle flips the favorite status of in.Movie for in.User.
//
// Without a user it appends [store.LoginRoute] to in.History and does nothing else. Otherwise it applies the local
// mutation through in.Ops and starts the matching remote call without waiting for it.
func (t *Toggler) Toggle(ctx context.Context, in Input) (Decision, error) {
	decision := Decide(in.Movie, in.User)

	if decision == Redirect {
		if in.History == nil {
			return decision, fmt.Errorf("%w: navigation history is required", shared.ErrInvalidInput)
		}
		in.History.Push(store.LoginRoute)
		t.logger.Info("toggle without session, redirecting", "movie_id", in.Movie.ID, "route", store.LoginRoute)
		return decision, nil
	}

	if in.Ops.AddLocalFavorite == nil || in.Ops.DeleteLocalFavorite == nil {
		return decision, fmt.Errorf("%w: local write operations are required", shared.ErrInvalidInput)
	}
	if t.remote == nil {
		return decision, fmt.Errorf("%w: remote favorites API not initialized", shared.ErrServiceUnavailable)
	}

	if !t.acquire(in.Movie.ID) {
		t.logger.Warn("toggle rejected", "movie_id", in.Movie.ID, "reason", shared.ErrToggleInFlight)
		return decision, fmt.Errorf("%w: movie %d", shared.ErrToggleInFlight, in.Movie.ID)
	}

	switch decision {
	case Remove:
		in.Ops.DeleteLocalFavorite(in.Movie)
	case Add:
		in.Ops.AddLocalFavorite(in.Movie)
	}

	t.logger.Info("favorite toggled", "movie_id", in.Movie.ID, "decision", decision, "user_id", in.User.ID)

	t.wg.Add(1)
	go t.persist(ctx, decision, in.Movie.ID)

	return decision, nil
}

// persist issues the remote call for decision and reports its outcome.
func (t *Toggler) persist(ctx context.Context, decision Decision, movieID int) {
	defer t.wg.Done()
	defer t.release(movieID)

	err := t.limiter.Wait(ctx)
	if err == nil {
		switch decision {
		case Remove:
			err = t.remote.DeleteFavorite(ctx, movieID)
		case Add:
			err = t.remote.CreateFavorite(ctx, movieID)
		}
	}

	if err != nil {
		t.logger.Error("remote favorite call failed", "movie_id", movieID, "decision", decision, "error", err)
	} else {
		t.logger.Debug("remote favorite call succeeded", "movie_id", movieID, "decision", decision)
	}

	t.sendResult(Result{Decision: decision, MovieID: movieID, Err: err})
}

// sendResult offers r to the results channel without blocking.
func (t *Toggler) sendResult(r Result) {
	if t.results == nil {
		return
	}
	select {
	case t.results <- r:
	default:
	}
}

// acquire marks movieID as in flight. It fails only when serializing and the movie is already in flight.
func (t *Toggler) acquire(movieID int) bool {
	if !t.serialize {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.inFlight[movieID]; busy {
		return false
	}
	t.inFlight[movieID] = struct{}{}
	return true
}

func (t *Toggler) release(movieID int) {
	if !t.serialize {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, movieID)
}

// InFlight reports whether a serialized remote call for movieID is still running.
func (t *Toggler) InFlight(movieID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.inFlight[movieID]
	return busy
}

// Wait blocks until every remote call started so far has finished.
func (t *Toggler) Wait() {
	t.wg.Wait()
}
