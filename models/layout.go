package models

// Layout maps attributes to column positions for one source.
// Optional fields are set to -1 when the source does not have them.
type Layout struct {
	Name     int
	Category int
	Genre    int
	Price    int
	Rating   int
	Reviews  int
	Installs int

	// FreeValues lists the values of the Price field that mark a free app.
	FreeValues []string
}

// AppStoreLayout describes AppleStore.csv, including its leading unnamed
// index column.
var AppStoreLayout = Layout{
	Name:       2,  // track_name
	Category:   12, // prime_genre
	Genre:      -1,
	Price:      5,  // price
	Rating:     8,  // user_rating
	Reviews:    6,  // rating_count_tot
	Installs:   -1,
	FreeValues: []string{"0", "0.0"},
}

// GooglePlayLayout describes googleplaystore.csv.
var GooglePlayLayout = Layout{
	Name:       0, // App
	Category:   1, // Category
	Genre:      9, // Genres
	Price:      6, // Type
	Rating:     2, // Rating
	Reviews:    3, // Reviews
	Installs:   5, // Installs
	FreeValues: []string{"Free"},
}

// GroupField returns the column used for per-group averages and install
// distributions: the genre when the source has one, else the category.
func (l Layout) GroupField() int {
	if l.Genre >= 0 {
		return l.Genre
	}
	return l.Category
}

// IsFree reports whether price is one of the layout's free values.
func (l Layout) IsFree(price string) bool {
	for _, v := range l.FreeValues {
		if price == v {
			return true
		}
	}
	return false
}
