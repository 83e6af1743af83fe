package demo

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfctl/internal/api"
	"shelfctl/internal/catalog"
)

// newCatalog serves a fresh demo server over httptest and returns the
// services the real client builds against it.
func newCatalog(t *testing.T) *catalog.Services {
	t.Helper()
	srv := httptest.NewServer(NewServer().Handler())
	t.Cleanup(srv.Close)
	return catalog.NewServices(api.NewClient(srv.URL + "/api"))
}

func TestAuthorLifecycle(t *testing.T) {
	s := newCatalog(t)
	ctx := context.Background()

	seeded, err := s.Authors.List(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	created, err := s.Authors.Create(ctx, catalog.Author{Name: "Ursula K. Le Guin", Country: "United States"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID, "server assigns the id")

	listed, err := s.Authors.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 4)

	created.Country = "USA"
	updated, err := s.Authors.Update(ctx, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "USA", updated.Country)

	got, err := s.Authors.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "USA", got.Country)

	require.NoError(t, s.Authors.Delete(ctx, created.ID))

	_, err = s.Authors.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "author not found", api.DisplayMessage(err, "fallback"))

	err = s.Authors.Delete(ctx, created.ID)
	require.Error(t, err, "deleting twice reports not found")
}

func TestCreateValidation(t *testing.T) {
	s := newCatalog(t)

	_, err := s.Authors.Create(context.Background(), catalog.Author{Country: "France"})
	require.Error(t, err)

	apiErr, ok := err.(*api.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "author_name is required", apiErr.Message)
}

func TestBookReadsAreDenormalized(t *testing.T) {
	s := newCatalog(t)

	books, err := s.Books.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, books)

	for _, b := range books {
		assert.NotEmpty(t, b.AuthorName, "book %q", b.Title)
		assert.NotEmpty(t, b.CategoryName, "book %q", b.Title)
		assert.NotEmpty(t, b.PublisherName, "book %q", b.Title)
	}
}

func TestBookCreateLinksReferences(t *testing.T) {
	s := newCatalog(t)
	ctx := context.Background()

	created, err := s.Books.Create(ctx, catalog.Book{
		Title:       "Homage to Catalonia",
		AuthorID:    1,
		CategoryID:  6,
		PublisherID: 4,
	})
	require.NoError(t, err)

	got, err := s.Books.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", got.AuthorName)
	assert.Equal(t, "Secker & Warburg", got.PublisherName)
}

func TestEntityDropdownsShipNumericValues(t *testing.T) {
	s := newCatalog(t)

	authors, err := s.Dropdowns.Authors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 3)

	// Numeric wire values are normalized to decimal strings client-side.
	assert.Equal(t, catalog.Option{Value: "1", Text: "George Orwell"}, authors[0])

	categories, err := s.Dropdowns.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 3)
}

func TestCountryDropdown(t *testing.T) {
	s := newCatalog(t)

	countries, err := s.Dropdowns.Countries(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, countries)

	for _, c := range countries {
		assert.Equal(t, c.Text, c.Value, "country options carry the name in both fields")
	}
}

func TestInvalidID(t *testing.T) {
	s := newCatalog(t)

	err := s.Books.Delete(context.Background(), -1)
	require.Error(t, err, "ids outside the collection report not found")
}
