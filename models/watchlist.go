package models

// Movie is the nested movie object carried inside a watchlist entry.
// Timestamps stay raw strings: the page only displays them and deployed
// trackers are not consistent about their exact format.
type Movie struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Overview    string `json:"overview,omitempty"`
	PosterPath  string `json:"posterPath,omitempty"`
}

// WatchlistEntry represents a single item of a user's movie watchlist.
// The nested movie object is optional on the wire.
type WatchlistEntry struct {
	Movie   *Movie `json:"movie,omitempty"`
	AddedAt string `json:"addedAt,omitempty"`
}

// ReleaseYear returns the four-digit year prefix of the release date,
// or an empty string when the date is too short to carry one.
func (m Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}
