package catalog

// Book is one entry in the collection.
type Book struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Author        string   `yaml:"author" json:"author"`
	ISBN          string   `yaml:"isbn,omitempty" json:"isbn,omitempty"`
	Genre         string   `yaml:"genre" json:"genre"`
	Status        Status   `yaml:"status" json:"status"`
	Rating        int      `yaml:"rating,omitempty" json:"rating,omitempty"` // 0 = not rated, else 1..5
	DateAdded     string   `yaml:"date_added" json:"date_added"`             // YYYY-MM-DD
	DateCompleted string   `yaml:"date_completed,omitempty" json:"date_completed,omitempty"`
	Notes         string   `yaml:"notes,omitempty" json:"notes,omitempty"`
	CoverURL      string   `yaml:"cover_url,omitempty" json:"cover_url,omitempty"`
	Publisher     string   `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	PublishedYear int      `yaml:"published_year,omitempty" json:"published_year,omitempty"`
	PageCount     int      `yaml:"page_count,omitempty" json:"page_count,omitempty"`
	Format        Format   `yaml:"format" json:"format"`
	Location      string   `yaml:"location,omitempty" json:"location,omitempty"` // physical books only
	Tags          []string `yaml:"tags" json:"tags"`
	Language      string   `yaml:"language,omitempty" json:"language,omitempty"`
}

// Status is the reading status of a book.
type Status string

const (
	StatusUnread    Status = "unread"
	StatusReading   Status = "reading"
	StatusCompleted Status = "completed"
	StatusWishlist  Status = "wishlist"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusUnread, StatusReading, StatusCompleted, StatusWishlist}

// Label returns the display form of s.
func (s Status) Label() string {
	switch s {
	case StatusUnread:
		return "Unread"
	case StatusReading:
		return "Currently Reading"
	case StatusCompleted:
		return "Completed"
	case StatusWishlist:
		return "Wishlist"
	}
	return string(s)
}

// Format is the physical form of a book.
type Format string

const (
	FormatPhysical  Format = "physical"
	FormatEbook     Format = "ebook"
	FormatAudiobook Format = "audiobook"
)

// Formats lists every format in display order.
var Formats = []Format{FormatPhysical, FormatEbook, FormatAudiobook}

// Label returns the display form of f.
func (f Format) Label() string {
	switch f {
	case FormatPhysical:
		return "Physical"
	case FormatEbook:
		return "E-book"
	case FormatAudiobook:
		return "Audiobook"
	}
	return string(f)
}

// Stars renders a 0..5 rating as filled and empty stars.
func Stars(rating int) string {
	out := make([]rune, 5)
	for i := range out {
		if i < rating {
			out[i] = '★'
		} else {
			out[i] = '☆'
		}
	}
	return string(out)
}
