// Package catalog defines the library catalog records administered by
// shelfctl and the per-entity page adapters the UI is driven by.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ref is a foreign-key reference to another catalog record.
//
// The API is not consistent about how it ships these: a reference may arrive
// as a JSON number, a numeric string, or an option-shaped object such as
// {"value": 7, "text": "Orwell"} or {"id": 7, "name": "Orwell"}. Ref accepts
// all of them and always marshals back to a plain number. The zero value
// means the reference is unset.
type Ref int64

// Int64 returns the referenced id.
func (r Ref) Int64() int64 { return int64(r) }

// String renders the id as a decimal string, empty when unset.
func (r Ref) String() string {
	if r == 0 {
		return ""
	}
	return strconv.FormatInt(int64(r), 10)
}

// MarshalJSON writes the reference as a plain JSON number.
func (r Ref) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(r), 10)), nil
}

// UnmarshalJSON accepts a number, a numeric string, null, or an object
// carrying the id under "value" or "id".
func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*r = 0
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Value json.RawMessage `json:"value"`
			ID    json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("catalog: invalid reference object: %w", err)
		}
		raw := obj.Value
		if len(raw) == 0 {
			raw = obj.ID
		}
		if len(raw) == 0 {
			*r = 0
			return nil
		}
		return r.UnmarshalJSON(raw)
	}

	id, err := parseRefScalar(trimmed)
	if err != nil {
		return err
	}
	*r = Ref(id)
	return nil
}

func parseRefScalar(s string) (int64, error) {
	s = strings.Trim(s, `"`)
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("catalog: invalid reference %q: %w", s, err)
	}
	return id, nil
}

// Book is one catalog book. The *_name fields are denormalized by the read
// API and never submitted back.
type Book struct {
	ID          int64  `json:"book_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorID    Ref    `json:"author_id"`
	CategoryID  Ref    `json:"category_id"`
	PublisherID Ref    `json:"publisher_id"`

	AuthorName    string `json:"author_name,omitempty"`
	CategoryName  string `json:"category_name,omitempty"`
	PublisherName string `json:"publisher_name,omitempty"`
}

// Author is one catalog author.
type Author struct {
	ID      int64  `json:"author_id,omitempty"`
	Name    string `json:"author_name"`
	Country string `json:"country"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Publisher is one catalog publisher.
type Publisher struct {
	ID      int64  `json:"publisher_id,omitempty"`
	Name    string `json:"publisher_name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Category is one catalog category.
type Category struct {
	ID          int64  `json:"category_id,omitempty"`
	Name        string `json:"category_name"`
	Description string `json:"description"`
}

// Option is one entry of a server-supplied selection list. Values arrive as
// numbers for entity dropdowns and as strings for the country list, so both
// are accepted and normalized to a string.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// UnmarshalJSON coerces numeric option values to their decimal string form.
func (o *Option) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value json.RawMessage `json:"value"`
		Text  string          `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.Text = raw.Text
	o.Value = strings.Trim(strings.TrimSpace(string(raw.Value)), `"`)
	if o.Value == "null" {
		o.Value = ""
	}
	return nil
}
