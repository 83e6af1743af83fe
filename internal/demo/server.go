// Package demo runs an in-memory catalog API implementing the same REST
// surface shelfctl administers, so the UI can be tried without a real
// backend. Data lives in maps for the lifetime of the process.
package demo

import (
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"shelfctl/internal/catalog"
)

// Server is the in-memory demo catalog.
type Server struct {
	mu     sync.Mutex
	nextID int64

	authors    map[int64]catalog.Author
	publishers map[int64]catalog.Publisher
	categories map[int64]catalog.Category
	books      map[int64]catalog.Book

	engine *gin.Engine
}

// NewServer builds a seeded demo catalog.
func NewServer() *Server {
	s := &Server{
		authors:    make(map[int64]catalog.Author),
		publishers: make(map[int64]catalog.Publisher),
		categories: make(map[int64]catalog.Category),
		books:      make(map[int64]catalog.Book),
	}
	s.seed()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	registerCRUD(api, "/authors", &crud[catalog.Author]{
		server:   s,
		name:     "author",
		items:    s.authors,
		id:       func(a catalog.Author) int64 { return a.ID },
		setID:    func(a *catalog.Author, id int64) { a.ID = id },
		validate: func(a catalog.Author) string { return requireName(a.Name, "author_name") },
	})
	registerCRUD(api, "/publishers", &crud[catalog.Publisher]{
		server:   s,
		name:     "publisher",
		items:    s.publishers,
		id:       func(p catalog.Publisher) int64 { return p.ID },
		setID:    func(p *catalog.Publisher, id int64) { p.ID = id },
		validate: func(p catalog.Publisher) string { return requireName(p.Name, "publisher_name") },
	})
	registerCRUD(api, "/categories", &crud[catalog.Category]{
		server:   s,
		name:     "category",
		items:    s.categories,
		id:       func(c catalog.Category) int64 { return c.ID },
		setID:    func(c *catalog.Category, id int64) { c.ID = id },
		validate: func(c catalog.Category) string { return requireName(c.Name, "category_name") },
	})
	registerCRUD(api, "/books", &crud[catalog.Book]{
		server:   s,
		name:     "book",
		items:    s.books,
		id:       func(b catalog.Book) int64 { return b.ID },
		setID:    func(b *catalog.Book, id int64) { b.ID = id },
		validate: func(b catalog.Book) string { return requireName(b.Title, "title") },
		onRead:   s.denormalizeBook,
	})

	api.GET("/dropdown/categories", s.dropdownCategories)
	api.GET("/dropdown/authors", s.dropdownAuthors)
	api.GET("/dropdown/publishers", s.dropdownPublishers)
	api.GET("/dropdown/countries", s.dropdownCountries)

	s.engine = r
	return s
}

// Handler exposes the server for httptest and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until the listener fails.
func (s *Server) Run(addr string) error { return s.engine.Run(addr) }

func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

func requireName(v, field string) string {
	if v == "" {
		return field + " is required"
	}
	return ""
}

// crud wires the five standard operations for one entity collection.
type crud[T any] struct {
	server   *Server
	name     string
	items    map[int64]T
	id       func(T) int64
	setID    func(*T, int64)
	validate func(T) string
	onRead   func(*T)
}

func registerCRUD[T any](g *gin.RouterGroup, path string, c *crud[T]) {
	g.GET(path, c.list)
	g.POST(path, c.create)
	g.GET(path+"/:id", c.get)
	g.PUT(path+"/:id", c.update)
	g.DELETE(path+"/:id", c.remove)
}

func (c *crud[T]) read(v T) T {
	if c.onRead != nil {
		c.onRead(&v)
	}
	return v
}

func (c *crud[T]) list(ctx *gin.Context) {
	c.server.mu.Lock()
	defer c.server.mu.Unlock()

	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, c.read(v))
	}
	sort.Slice(out, func(i, j int) bool { return c.id(out[i]) < c.id(out[j]) })
	ctx.JSON(http.StatusOK, out)
}

func (c *crud[T]) get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	c.server.mu.Lock()
	defer c.server.mu.Unlock()

	v, exists := c.items[id]
	if !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"message": c.name + " not found"})
		return
	}
	ctx.JSON(http.StatusOK, c.read(v))
}

func (c *crud[T]) create(ctx *gin.Context) {
	var v T
	if err := ctx.ShouldBindJSON(&v); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if c.validate != nil {
		if msg := c.validate(v); msg != "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
	}

	c.server.mu.Lock()
	defer c.server.mu.Unlock()

	c.setID(&v, c.server.allocID())
	c.items[c.id(v)] = v
	ctx.JSON(http.StatusCreated, c.read(v))
}

func (c *crud[T]) update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var v T
	if err := ctx.ShouldBindJSON(&v); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if c.validate != nil {
		if msg := c.validate(v); msg != "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
	}

	c.server.mu.Lock()
	defer c.server.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"message": c.name + " not found"})
		return
	}
	c.setID(&v, id)
	c.items[id] = v
	ctx.JSON(http.StatusOK, c.read(v))
}

func (c *crud[T]) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	c.server.mu.Lock()
	defer c.server.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"message": c.name + " not found"})
		return
	}
	delete(c.items, id)
	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func (s *Server) denormalizeBook(b *catalog.Book) {
	if a, ok := s.authors[b.AuthorID.Int64()]; ok {
		b.AuthorName = a.Name
	}
	if c, ok := s.categories[b.CategoryID.Int64()]; ok {
		b.CategoryName = c.Name
	}
	if p, ok := s.publishers[b.PublisherID.Int64()]; ok {
		b.PublisherName = p.Name
	}
}

func (s *Server) dropdownAuthors(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx.JSON(http.StatusOK, entityOptions(s.authors,
		func(a catalog.Author) (int64, string) { return a.ID, a.Name }))
}

func (s *Server) dropdownPublishers(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx.JSON(http.StatusOK, entityOptions(s.publishers,
		func(p catalog.Publisher) (int64, string) { return p.ID, p.Name }))
}

func (s *Server) dropdownCategories(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx.JSON(http.StatusOK, entityOptions(s.categories,
		func(c catalog.Category) (int64, string) { return c.ID, c.Name }))
}

var countries = []string{
	"Argentina", "Australia", "Brazil", "Canada", "Colombia", "France",
	"Germany", "India", "Japan", "Mexico", "Spain", "United Kingdom",
	"United States",
}

func (s *Server) dropdownCountries(ctx *gin.Context) {
	out := make([]gin.H, 0, len(countries))
	for _, c := range countries {
		out = append(out, gin.H{"value": c, "text": c})
	}
	ctx.JSON(http.StatusOK, out)
}

// entityOptions renders {value, text} pairs sorted by id. Values go out as
// numbers on purpose; clients must cope with both shapes.
func entityOptions[T any](items map[int64]T, pair func(T) (int64, string)) []gin.H {
	type opt struct {
		id   int64
		text string
	}
	opts := make([]opt, 0, len(items))
	for _, v := range items {
		id, text := pair(v)
		opts = append(opts, opt{id, text})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].id < opts[j].id })

	out := make([]gin.H, 0, len(opts))
	for _, o := range opts {
		out = append(out, gin.H{"value": o.id, "text": o.text})
	}
	return out
}

func (s *Server) seed() {
	orwell := catalog.Author{ID: s.allocID(), Name: "George Orwell", Country: "United Kingdom", Address: "50 Lawford Road, London", Phone: "+44 20 7946 0958", Email: "g.orwell@example.com"}
	garcia := catalog.Author{ID: s.allocID(), Name: "Gabriel Garcia Marquez", Country: "Colombia", Address: "Calle 70, Bogota", Phone: "+57 1 555 0134", Email: "gabo@example.com"}
	austen := catalog.Author{ID: s.allocID(), Name: "Jane Austen", Country: "United Kingdom", Address: "Chawton Cottage, Hampshire", Phone: "+44 1420 83262", Email: "j.austen@example.com"}
	s.authors[orwell.ID] = orwell
	s.authors[garcia.ID] = garcia
	s.authors[austen.ID] = austen

	secker := catalog.Publisher{ID: s.allocID(), Name: "Secker & Warburg", Address: "London", Phone: "+44 20 7946 0111", Email: "contact@secker.example.com"}
	sudamericana := catalog.Publisher{ID: s.allocID(), Name: "Editorial Sudamericana", Address: "Buenos Aires", Phone: "+54 11 4321 5678", Email: "info@sudamericana.example.com"}
	s.publishers[secker.ID] = secker
	s.publishers[sudamericana.ID] = sudamericana

	dystopia := catalog.Category{ID: s.allocID(), Name: "Dystopian", Description: "Grim futures and total states"}
	realism := catalog.Category{ID: s.allocID(), Name: "Magical Realism", Description: "The everyday entwined with the fantastic"}
	romance := catalog.Category{ID: s.allocID(), Name: "Classic Romance", Description: "Manners, marriage and misunderstandings"}
	s.categories[dystopia.ID] = dystopia
	s.categories[realism.ID] = realism
	s.categories[romance.ID] = romance

	books := []catalog.Book{
		{Title: "Nineteen Eighty-Four", Description: "Winston Smith against the Party", AuthorID: catalog.Ref(orwell.ID), CategoryID: catalog.Ref(dystopia.ID), PublisherID: catalog.Ref(secker.ID)},
		{Title: "One Hundred Years of Solitude", Description: "The Buendia family of Macondo", AuthorID: catalog.Ref(garcia.ID), CategoryID: catalog.Ref(realism.ID), PublisherID: catalog.Ref(sudamericana.ID)},
		{Title: "Animal Farm", Description: "All animals are equal", AuthorID: catalog.Ref(orwell.ID), CategoryID: catalog.Ref(dystopia.ID), PublisherID: catalog.Ref(secker.ID)},
	}
	for _, b := range books {
		b.ID = s.allocID()
		s.books[b.ID] = b
	}
}
