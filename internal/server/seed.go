package server

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/repositories"
	"github.com/desertthunder/moviefav/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// Demo credentials created by [Seed].
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
	DemoName     = "Demo User"
)

// DemoMovies is the catalog [Seed] loads.
var DemoMovies = []models.Movie{
	{ID: 1, Title: "Spirited Away", ReleaseDate: "2001-07-20", VoteAverage: 8.5,
		Overview: "A girl wanders into a world of spirits and must work in a bathhouse to free her parents."},
	{ID: 2, Title: "Heat", ReleaseDate: "1995-12-15", VoteAverage: 7.9,
		Overview: "A detective pursues a crew of professional thieves across Los Angeles."},
	{ID: 3, Title: "Arrival", ReleaseDate: "2016-11-10", VoteAverage: 7.6,
		Overview: "A linguist is recruited to communicate with visitors who have landed around the world."},
	{ID: 4, Title: "Paddington 2", ReleaseDate: "2017-11-10", VoteAverage: 7.6,
		Overview: "A bear takes odd jobs to buy a pop-up book and is framed for its theft."},
	{ID: 5, Title: "The Thing", ReleaseDate: "1982-06-25", VoteAverage: 8.1,
		Overview: "An Antarctic research team is hunted by a shape-shifting organism."},
	{ID: 6, Title: "Moonlight", ReleaseDate: "2016-10-21", VoteAverage: 7.4,
		Overview: "Three chapters in the life of a young man growing up in Miami."},
}

// Seed loads [DemoMovies] and a demo account whose favorites are movies 1 and 4. Running it twice is harmless.
func Seed(db *sql.DB) error {
	movies := repositories.NewMovieRepository(db)
	for _, m := range DemoMovies {
		if err := movies.Upsert(m); err != nil {
			return fmt.Errorf("failed to seed movie %d: %w", m.ID, err)
		}
	}

	users := repositories.NewUserRepository(db)
	account, err := users.GetByEmail(DemoEmail)
	if errors.Is(err, shared.ErrUserNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		account = models.NewAccount(DemoEmail, DemoName, string(hash))
		if err := users.Create(account); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	} else if err != nil {
		return err
	}

	favorites := repositories.NewFavoriteRepository(db)
	for _, id := range []int{1, 4} {
		if err := favorites.Create(models.NewFavorite(account.ID, id)); err != nil {
			return fmt.Errorf("failed to seed favorite %d: %w", id, err)
		}
	}

	return nil
}
