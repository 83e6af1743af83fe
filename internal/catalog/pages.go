package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Item is one list row as the UI consumes it: the rendered cells, the
// lowercased text the search filter matches against, and the raw field
// values used to seed the edit form.
type Item struct {
	ID         int64
	Cells      []string
	SearchText string
	Values     map[string]string
}

// FieldKind selects the input control for a form field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldTextarea
	FieldSelect
)

// Field describes one create/edit form field: schema plus the seeded value.
type Field struct {
	Key      string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []Option // select fields only
	Value    string
}

// Page is the uniform contract one entity screen is built from. The list
// and form views are generic; everything entity-specific lives behind this
// interface.
type Page interface {
	// Title is the plural screen heading, e.g. "Books".
	Title() string
	// Singular names one record for prompts and toasts, e.g. "book".
	Singular() string
	// Columns are the list table headers.
	Columns() []string
	// Fetch loads the full collection mapped to display items.
	Fetch(ctx context.Context) ([]Item, error)
	// Fields returns the form schema seeded from item, or blank when item
	// is nil (create mode). Options may be partially populated alongside a
	// non-nil error when an option list failed to load.
	Fields(ctx context.Context, item *Item) ([]Field, error)
	// Save creates (id == 0) or updates (id != 0) from trimmed form values.
	Save(ctx context.Context, id int64, values map[string]string) error
	// Delete removes one record.
	Delete(ctx context.Context, id int64) error
}

// Pages returns the four entity screens in display order.
func Pages(s *Services) []Page {
	return []Page{
		&BookPage{s: s},
		&AuthorPage{s: s},
		&PublisherPage{s: s},
		&CategoryPage{s: s},
	}
}

// PageByName resolves an entity name as used on the CLI.
func PageByName(s *Services, name string) (Page, error) {
	switch strings.ToLower(name) {
	case "books", "book":
		return &BookPage{s: s}, nil
	case "authors", "author":
		return &AuthorPage{s: s}, nil
	case "publishers", "publisher":
		return &PublisherPage{s: s}, nil
	case "categories", "category":
		return &CategoryPage{s: s}, nil
	}
	return nil, fmt.Errorf("unknown entity %q (want books, authors, publishers or categories)", name)
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func searchText(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

// BookPage administers books. The three reference fields are selected from
// dropdown option lists, never typed.
type BookPage struct {
	s *Services
}

func (p *BookPage) Title() string    { return "Books" }
func (p *BookPage) Singular() string { return "book" }

func (p *BookPage) Columns() []string {
	return []string{"ID", "Title", "Description", "Author", "Category", "Publisher"}
}

func (p *BookPage) Fetch(ctx context.Context) ([]Item, error) {
	books, err := p.s.Books.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(books))
	for _, b := range books {
		items = append(items, Item{
			ID: b.ID,
			Cells: []string{
				formatID(b.ID), b.Title, b.Description,
				b.AuthorName, b.CategoryName, b.PublisherName,
			},
			SearchText: searchText(b.Title, b.Description, b.AuthorName, b.CategoryName, b.PublisherName),
			Values: map[string]string{
				"title":        b.Title,
				"description":  b.Description,
				"author_id":    b.AuthorID.String(),
				"category_id":  b.CategoryID.String(),
				"publisher_id": b.PublisherID.String(),
			},
		})
	}
	return items, nil
}

func (p *BookPage) Fields(ctx context.Context, item *Item) ([]Field, error) {
	authors, err := p.s.Dropdowns.Authors(ctx)
	categories, cerr := p.s.Dropdowns.Categories(ctx)
	if err == nil {
		err = cerr
	}
	publishers, perr := p.s.Dropdowns.Publishers(ctx)
	if err == nil {
		err = perr
	}

	fields := []Field{
		{Key: "title", Label: "Book Title", Kind: FieldText, Required: true},
		{Key: "author_id", Label: "Author", Kind: FieldSelect, Options: authors},
		{Key: "category_id", Label: "Category", Kind: FieldSelect, Options: categories},
		{Key: "publisher_id", Label: "Publisher", Kind: FieldSelect, Options: publishers},
		{Key: "description", Label: "Description", Kind: FieldTextarea},
	}
	seedFields(fields, item)
	return fields, err
}

func (p *BookPage) Save(ctx context.Context, id int64, values map[string]string) error {
	b := Book{
		ID:          id,
		Title:       values["title"],
		Description: values["description"],
		AuthorID:    parseRef(values["author_id"]),
		CategoryID:  parseRef(values["category_id"]),
		PublisherID: parseRef(values["publisher_id"]),
	}
	if id == 0 {
		_, err := p.s.Books.Create(ctx, b)
		return err
	}
	_, err := p.s.Books.Update(ctx, id, b)
	return err
}

func (p *BookPage) Delete(ctx context.Context, id int64) error {
	return p.s.Books.Delete(ctx, id)
}

// AuthorPage administers authors.
type AuthorPage struct {
	s *Services
}

func (p *AuthorPage) Title() string    { return "Authors" }
func (p *AuthorPage) Singular() string { return "author" }

func (p *AuthorPage) Columns() []string {
	return []string{"ID", "Name", "Country", "Address", "Phone", "Email"}
}

func (p *AuthorPage) Fetch(ctx context.Context) ([]Item, error) {
	authors, err := p.s.Authors.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(authors))
	for _, a := range authors {
		items = append(items, Item{
			ID:         a.ID,
			Cells:      []string{formatID(a.ID), a.Name, a.Country, a.Address, a.Phone, a.Email},
			SearchText: searchText(a.Name, a.Country, a.Address, a.Email),
			Values: map[string]string{
				"author_name": a.Name,
				"country":     a.Country,
				"address":     a.Address,
				"phone":       a.Phone,
				"email":       a.Email,
			},
		})
	}
	return items, nil
}

func (p *AuthorPage) Fields(ctx context.Context, item *Item) ([]Field, error) {
	countries, err := p.s.Dropdowns.Countries(ctx)

	fields := []Field{
		{Key: "author_name", Label: "Author Name", Kind: FieldText, Required: true},
		{Key: "country", Label: "Country", Kind: FieldSelect, Options: countries},
		{Key: "address", Label: "Address", Kind: FieldTextarea},
		{Key: "phone", Label: "Phone", Kind: FieldText},
		{Key: "email", Label: "Email", Kind: FieldText},
	}
	seedFields(fields, item)
	return fields, err
}

func (p *AuthorPage) Save(ctx context.Context, id int64, values map[string]string) error {
	a := Author{
		ID:      id,
		Name:    values["author_name"],
		Country: values["country"],
		Address: values["address"],
		Phone:   values["phone"],
		Email:   values["email"],
	}
	if id == 0 {
		_, err := p.s.Authors.Create(ctx, a)
		return err
	}
	_, err := p.s.Authors.Update(ctx, id, a)
	return err
}

func (p *AuthorPage) Delete(ctx context.Context, id int64) error {
	return p.s.Authors.Delete(ctx, id)
}

// PublisherPage administers publishers.
type PublisherPage struct {
	s *Services
}

func (p *PublisherPage) Title() string    { return "Publishers" }
func (p *PublisherPage) Singular() string { return "publisher" }

func (p *PublisherPage) Columns() []string {
	return []string{"ID", "Name", "Address", "Phone", "Email"}
}

func (p *PublisherPage) Fetch(ctx context.Context) ([]Item, error) {
	publishers, err := p.s.Publishers.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(publishers))
	for _, pub := range publishers {
		items = append(items, Item{
			ID:         pub.ID,
			Cells:      []string{formatID(pub.ID), pub.Name, pub.Address, pub.Phone, pub.Email},
			SearchText: searchText(pub.Name, pub.Address, pub.Email),
			Values: map[string]string{
				"publisher_name": pub.Name,
				"address":        pub.Address,
				"phone":          pub.Phone,
				"email":          pub.Email,
			},
		})
	}
	return items, nil
}

func (p *PublisherPage) Fields(_ context.Context, item *Item) ([]Field, error) {
	fields := []Field{
		{Key: "publisher_name", Label: "Publisher Name", Kind: FieldText, Required: true},
		{Key: "address", Label: "Address", Kind: FieldTextarea},
		{Key: "phone", Label: "Phone", Kind: FieldText},
		{Key: "email", Label: "Email", Kind: FieldText},
	}
	seedFields(fields, item)
	return fields, nil
}

func (p *PublisherPage) Save(ctx context.Context, id int64, values map[string]string) error {
	pub := Publisher{
		ID:      id,
		Name:    values["publisher_name"],
		Address: values["address"],
		Phone:   values["phone"],
		Email:   values["email"],
	}
	if id == 0 {
		_, err := p.s.Publishers.Create(ctx, pub)
		return err
	}
	_, err := p.s.Publishers.Update(ctx, id, pub)
	return err
}

func (p *PublisherPage) Delete(ctx context.Context, id int64) error {
	return p.s.Publishers.Delete(ctx, id)
}

// CategoryPage administers categories.
type CategoryPage struct {
	s *Services
}

func (p *CategoryPage) Title() string    { return "Categories" }
func (p *CategoryPage) Singular() string { return "category" }

func (p *CategoryPage) Columns() []string {
	return []string{"ID", "Name", "Description"}
}

func (p *CategoryPage) Fetch(ctx context.Context) ([]Item, error) {
	categories, err := p.s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(categories))
	for _, c := range categories {
		items = append(items, Item{
			ID:         c.ID,
			Cells:      []string{formatID(c.ID), c.Name, c.Description},
			SearchText: searchText(c.Name, c.Description),
			Values: map[string]string{
				"category_name": c.Name,
				"description":   c.Description,
			},
		})
	}
	return items, nil
}

func (p *CategoryPage) Fields(_ context.Context, item *Item) ([]Field, error) {
	fields := []Field{
		{Key: "category_name", Label: "Category Name", Kind: FieldText, Required: true},
		{Key: "description", Label: "Description", Kind: FieldTextarea},
	}
	seedFields(fields, item)
	return fields, nil
}

func (p *CategoryPage) Save(ctx context.Context, id int64, values map[string]string) error {
	c := Category{
		ID:          id,
		Name:        values["category_name"],
		Description: values["description"],
	}
	if id == 0 {
		_, err := p.s.Categories.Create(ctx, c)
		return err
	}
	_, err := p.s.Categories.Update(ctx, id, c)
	return err
}

func (p *CategoryPage) Delete(ctx context.Context, id int64) error {
	return p.s.Categories.Delete(ctx, id)
}

func seedFields(fields []Field, item *Item) {
	if item == nil {
		return
	}
	for i := range fields {
		fields[i].Value = item.Values[fields[i].Key]
	}
}

func parseRef(s string) Ref {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return Ref(id)
}
