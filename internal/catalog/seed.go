package catalog

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"time"
)

//go:embed seed.yml
var seedYAML []byte

// SampleCount is the number of generated books Seed appends after the
// curated ones.
const SampleCount = 42

// Seed returns the built-in collection: the curated books followed by
// generated sample books numbered 9 through 50. The samples are the same on
// every call.
func Seed() []Book {
	books, err := Parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return append(books, samples(len(books)+1, SampleCount)...)
}

// Vocabularies offered by the add form before any book uses them.
var (
	SuggestedGenres = []string{
		"Fiction", "Non-Fiction", "Science Fiction", "Fantasy", "Mystery", "Romance",
		"Biography", "History", "Self-Help", "Thriller", "Horror", "Poetry",
		"Drama", "Adventure", "Comedy", "Philosophy", "Science", "Technology",
	}
	SuggestedPublishers = []string{
		"Penguin Random House", "HarperCollins", "Macmillan", "Simon & Schuster",
		"Hachette", "Scholastic", "Wiley", "Oxford University Press", "Cambridge University Press",
		"Pearson", "McGraw-Hill", "Springer", "Elsevier",
	}
	SuggestedLanguages = []string{
		"English", "Spanish", "French", "German", "Italian", "Portuguese", "Russian",
		"Chinese", "Japanese", "Korean", "Arabic", "Hindi", "Dutch", "Swedish",
	}
	SuggestedTags = []string{
		"bestseller", "classic", "award-winner", "contemporary", "historical",
		"young-adult", "children", "educational", "reference", "cookbook",
		"travel", "health", "business", "psychology", "philosophy",
	}
	// SuggestedCategories backs the standalone picker demo.
	SuggestedCategories = []string{
		"Fiction", "Non-Fiction", "Science", "History", "Biography",
		"Technology", "Art", "Travel",
	}
)

var sampleGenres = SuggestedGenres[:10]

func samples(first, n int) []Book {
	rng := rand.New(rand.NewPCG(2024, uint64(n)))
	out := make([]Book, 0, n)
	for i := first; i < first+n; i++ {
		added := time.Date(2024, time.Month(rng.IntN(12)+1), rng.IntN(28)+1, 0, 0, 0, 0, time.UTC)
		out = append(out, Book{
			ID:            fmt.Sprint(i),
			Title:         fmt.Sprintf("Sample Book %d", i),
			Author:        fmt.Sprintf("Author %d", i),
			Genre:         sampleGenres[rng.IntN(len(sampleGenres))],
			Status:        Statuses[rng.IntN(len(Statuses))],
			Rating:        rng.IntN(5) + 1,
			DateAdded:     added.Format(DateLayout),
			Format:        Formats[rng.IntN(len(Formats))],
			Tags:          []string{"sample", "test"},
			PageCount:     rng.IntN(500) + 100,
			PublishedYear: 2000 + rng.IntN(24),
		})
	}
	return out
}
