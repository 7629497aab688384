package models

import "testing"

func TestUser(t *testing.T) {
	t.Run("HasFavorite", func(t *testing.T) {
		user := &User{ID: 4, Name: "oscar", Favorites: []int{1, 4}}

		if !user.HasFavorite(1) {
			t.Error("expected movie 1 to be a favorite")
		}
		if user.HasFavorite(2) {
			t.Error("expected movie 2 not to be a favorite")
		}
	})

	t.Run("HasFavorite On Nil User", func(t *testing.T) {
		var user *User
		if user.HasFavorite(1) {
			t.Error("expected nil user to have no favorites")
		}
	})

	t.Run("Clone Does Not Share Favorites", func(t *testing.T) {
		user := &User{ID: 4, Favorites: []int{1}}
		clone := user.Clone()
		clone.Favorites[0] = 99

		if user.Favorites[0] != 1 {
			t.Error("expected original favorites to be untouched")
		}
	})
}

func TestFilterFavorites(t *testing.T) {
	movies := []Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}
	user := &User{ID: 1, Favorites: []int{3, 1}}

	got := FilterFavorites(movies, user)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("expected movies 1 and 3 in display order, got %+v", got)
	}

	if got := FilterFavorites(movies, nil); len(got) != 0 {
		t.Errorf("expected no favorites without a user, got %+v", got)
	}
}

func TestMovie(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		if err := (Movie{ID: 1, Title: "Heat"}).Validate(); err != nil {
			t.Errorf("expected valid movie, got %v", err)
		}
		if err := (Movie{ID: 0, Title: "Heat"}).Validate(); err == nil {
			t.Error("expected error for zero id")
		}
		if err := (Movie{ID: 1}).Validate(); err == nil {
			t.Error("expected error for missing title")
		}
	})

	t.Run("Year", func(t *testing.T) {
		if got := (Movie{ReleaseDate: "1995-12-15"}).Year(); got != "1995" {
			t.Errorf("expected 1995, got %q", got)
		}
		if got := (Movie{}).Year(); got != "" {
			t.Errorf("expected empty year, got %q", got)
		}
	})
}
