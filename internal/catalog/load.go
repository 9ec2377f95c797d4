package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML book list from disk.
func Load(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading book list: %w", err)
	}
	books, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return books, nil
}

// Parse decodes a YAML book list. Books without a status, format or genre
// get the same defaults the add form uses; duplicate IDs are rejected.
func Parse(data []byte) ([]Book, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Book{}, nil
	}
	var books []Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing book list YAML: %w", err)
	}

	seen := make(map[string]bool, len(books))
	for i := range books {
		b := &books[i]
		if b.ID == "" {
			return nil, fmt.Errorf("book %d (%q): missing id", i+1, b.Title)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate book id %q", b.ID)
		}
		seen[b.ID] = true
		normalize(b)
	}
	if books == nil {
		return []Book{}, nil
	}
	return books, nil
}

// Marshal encodes a book list to YAML bytes.
func Marshal(books []Book) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("encoding book list: %w", err)
	}
	return buf.Bytes(), nil
}

func normalize(b *Book) {
	if b.Status == "" {
		b.Status = StatusUnread
	}
	if b.Format == "" {
		b.Format = FormatPhysical
	}
	if b.Genre == "" {
		b.Genre = DefaultGenre
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
}
