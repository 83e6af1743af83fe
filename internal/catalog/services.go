package catalog

import (
	"context"
	"net/http"

	"shelfctl/internal/api"
)

// Services bundles the per-entity resources and the read-only dropdown
// service, all sharing one configured client.
type Services struct {
	Books      api.Resource[Book]
	Authors    api.Resource[Author]
	Publishers api.Resource[Publisher]
	Categories api.Resource[Category]
	Dropdowns  Dropdowns
}

// NewServices wires the standard catalog endpoints onto the client.
func NewServices(c *api.Client) *Services {
	return &Services{
		Books:      api.NewResource[Book](c, "/books"),
		Authors:    api.NewResource[Author](c, "/authors"),
		Publishers: api.NewResource[Publisher](c, "/publishers"),
		Categories: api.NewResource[Category](c, "/categories"),
		Dropdowns:  Dropdowns{client: c},
	}
}

// Dropdowns fetches the server-supplied option lists used to populate
// selection fields. Read-only.
type Dropdowns struct {
	client *api.Client
}

func (d Dropdowns) options(ctx context.Context, name string) ([]Option, error) {
	var out []Option
	if err := d.client.Do(ctx, http.MethodGet, "/dropdown/"+name, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories lists the category options.
func (d Dropdowns) Categories(ctx context.Context) ([]Option, error) {
	return d.options(ctx, "categories")
}

// Authors lists the author options.
func (d Dropdowns) Authors(ctx context.Context) ([]Option, error) {
	return d.options(ctx, "authors")
}

// Publishers lists the publisher options.
func (d Dropdowns) Publishers(ctx context.Context) ([]Option, error) {
	return d.options(ctx, "publishers")
}

// Countries lists the country options.
func (d Dropdowns) Countries(ctx context.Context) ([]Option, error) {
	return d.options(ctx, "countries")
}
