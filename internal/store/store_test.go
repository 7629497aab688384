package store

import (
	"reflect"
	"sync"
	"testing"

	"github.com/desertthunder/moviefav/internal/models"
)

func TestApply(t *testing.T) {
	movie := models.Movie{ID: 1, Title: "Heat"}

	t.Run("AddFavorite Appends Once", func(t *testing.T) {
		s := State{User: &models.User{ID: 4, Favorites: []int{4}}}

		s = Apply(s, NewAddFavorite(movie))
		s = Apply(s, NewAddFavorite(movie))

		if !reflect.DeepEqual(s.User.Favorites, []int{4, 1}) {
			t.Errorf("expected favorites [4 1], got %v", s.User.Favorites)
		}
	})

	t.Run("RemoveFavorite", func(t *testing.T) {
		s := State{User: &models.User{ID: 4, Favorites: []int{1, 4}}}

		s = Apply(s, NewRemoveFavorite(movie))

		if !reflect.DeepEqual(s.User.Favorites, []int{4}) {
			t.Errorf("expected favorites [4], got %v", s.User.Favorites)
		}
	})

	t.Run("RemoveFavorite Of Absent Movie Is A No-op", func(t *testing.T) {
		user := &models.User{ID: 4, Favorites: []int{4}}
		s := Apply(State{User: user}, NewRemoveFavorite(movie))

		if s.User != user {
			t.Error("expected user to be unchanged")
		}
	})

	t.Run("Favorite Commands Without User Are No-ops", func(t *testing.T) {
		s := Apply(State{}, NewAddFavorite(movie))
		if s.User != nil {
			t.Error("expected no user to be created")
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		user := &models.User{ID: 4, Favorites: []int{1, 4}}
		before := State{User: user}

		_ = Apply(before, NewRemoveFavorite(movie))

		if !reflect.DeepEqual(user.Favorites, []int{1, 4}) {
			t.Errorf("expected input favorites untouched, got %v", user.Favorites)
		}
	})

	t.Run("Navigate Does Not Alias History", func(t *testing.T) {
		base := State{History: make(History, 1, 4)}
		base.History[0] = "/"

		a := Apply(base, Navigate{Route: "/login"})
		b := Apply(base, Navigate{Route: "/favorites"})

		if a.Route() != "/login" || b.Route() != "/favorites" {
			t.Errorf("expected independent histories, got %v and %v", a.History, b.History)
		}
	})

	t.Run("Session Commands", func(t *testing.T) {
		s := Apply(State{}, SetUser{User: &models.User{ID: 9}})
		if s.User == nil || s.User.ID != 9 {
			t.Fatalf("expected user 9, got %+v", s.User)
		}

		s = Apply(s, ClearUser{})
		if s.User != nil {
			t.Error("expected user to be cleared")
		}
	})

	t.Run("SetShowAllMovies And SetMovies", func(t *testing.T) {
		movies := []models.Movie{movie, {ID: 2, Title: "Ronin"}}
		s := Apply(State{}, SetMovies{Movies: movies})
		s = Apply(s, SetShowAllMovies{ShowAll: true})

		if !s.ShowAllMovies || len(s.Movies) != 2 {
			t.Errorf("unexpected state %+v", s)
		}
	})
}

func TestState(t *testing.T) {
	movies := []models.Movie{{ID: 1}, {ID: 2}, {ID: 3}}
	user := &models.User{ID: 4, Favorites: []int{2}}

	t.Run("Displayed Shows All Movies", func(t *testing.T) {
		s := State{Movies: movies, ShowAllMovies: true, User: user}
		if len(s.Displayed()) != 3 {
			t.Errorf("expected 3 movies, got %d", len(s.Displayed()))
		}
	})

	t.Run("Displayed Shows Favorites", func(t *testing.T) {
		s := State{Movies: movies, User: user}
		got := s.Displayed()
		if len(got) != 1 || got[0].ID != 2 {
			t.Errorf("expected only movie 2, got %+v", got)
		}
	})

	t.Run("Route Defaults To Home", func(t *testing.T) {
		if got := (State{}).Route(); got != HomeRoute {
			t.Errorf("expected %q, got %q", HomeRoute, got)
		}
	})
}

func TestProjectReadState(t *testing.T) {
	movies := []models.Movie{{ID: 1}}
	user := &models.User{Name: "oscar", ID: 4, Favorites: []int{1, 4}}
	s := State{
		Movies:        movies,
		ShowAllMovies: true,
		User:          user,
		History:       History{"/", "/login"},
	}

	got := ProjectReadState(s)
	want := ReadState{Movies: movies, ShowAllMovies: true, User: user}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectReadState() = %+v, want %+v", got, want)
	}
}

func TestProjectWriteOperations(t *testing.T) {
	movie := models.Movie{ID: 1}

	t.Run("AddLocalFavorite", func(t *testing.T) {
		var dispatched []Command
		ops := ProjectWriteOperations(func(c Command) { dispatched = append(dispatched, c) })

		ops.AddLocalFavorite(movie)

		if len(dispatched) != 1 {
			t.Fatalf("expected exactly one dispatch, got %d", len(dispatched))
		}
		if !reflect.DeepEqual(dispatched[0], NewAddFavorite(movie)) {
			t.Errorf("expected %+v, got %+v", NewAddFavorite(movie), dispatched[0])
		}
	})

	t.Run("DeleteLocalFavorite", func(t *testing.T) {
		var dispatched []Command
		ops := ProjectWriteOperations(func(c Command) { dispatched = append(dispatched, c) })

		ops.DeleteLocalFavorite(movie)

		if len(dispatched) != 1 {
			t.Fatalf("expected exactly one dispatch, got %d", len(dispatched))
		}
		if !reflect.DeepEqual(dispatched[0], NewRemoveFavorite(movie)) {
			t.Errorf("expected %+v, got %+v", NewRemoveFavorite(movie), dispatched[0])
		}
		if dispatched[0].Kind() != KindRemoveFavorite {
			t.Errorf("expected kind %s, got %s", KindRemoveFavorite, dispatched[0].Kind())
		}
	})
}

func TestHistory(t *testing.T) {
	var h History
	h.Push(LoginRoute)

	if !reflect.DeepEqual(h, History{"/login"}) {
		t.Errorf("expected [/login], got %v", h)
	}
}

func TestStore(t *testing.T) {
	t.Run("Dispatch Notifies Subscribers", func(t *testing.T) {
		st := New(State{User: &models.User{ID: 4}}, nil)

		var got []CommandKind
		st.Subscribe(func(cmd Command, s State) {
			got = append(got, cmd.Kind())
		})

		st.WriteOperations().AddLocalFavorite(models.Movie{ID: 7})
		st.Navigator().Push(LoginRoute)

		if !reflect.DeepEqual(got, []CommandKind{KindAddFavorite, KindNavigate}) {
			t.Errorf("unexpected notifications %v", got)
		}
		if !st.State().User.HasFavorite(7) {
			t.Error("expected movie 7 to be a favorite")
		}
		if st.State().Route() != LoginRoute {
			t.Errorf("expected route %s, got %s", LoginRoute, st.State().Route())
		}
	})

	t.Run("Concurrent Dispatch", func(t *testing.T) {
		st := New(State{User: &models.User{ID: 4}}, nil)
		ops := st.WriteOperations()

		var wg sync.WaitGroup
		for i := 1; i <= 50; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				ops.AddLocalFavorite(models.Movie{ID: id})
			}(i)
		}
		wg.Wait()

		if n := len(st.State().User.Favorites); n != 50 {
			t.Errorf("expected 50 favorites, got %d", n)
		}
	})

	t.Run("ReadState", func(t *testing.T) {
		st := New(State{ShowAllMovies: true, History: History{"/"}}, nil)
		if !st.ReadState().ShowAllMovies {
			t.Error("expected show all movies")
		}
	})
}
