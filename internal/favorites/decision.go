package favorites

import "github.com/desertthunder/moviefav/internal/models"

// Decision is the outcome of a favorite toggle.
type Decision int

const (
	Redirect Decision = iota
	Remove
	Add
)

func (d Decision) String() string {
	switch d {
	case Redirect:
		return "redirect"
	case Remove:
		return "remove"
	case Add:
		return "add"
	default:
		return ""
	}
}

// Decide returns what toggling movie does for user. A nil user means no session.
func Decide(movie models.Movie, user *models.User) Decision {
	switch {
	case user == nil:
		return Redirect
	case user.HasFavorite(movie.ID):
		return Remove
	default:
		return Add
	}
}
