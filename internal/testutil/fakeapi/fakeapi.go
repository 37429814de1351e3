// Package fakeapi servicio de inventario en memoria que imita al servicio remoto.
// Solo para tests: asigna ids, persiste en memoria y aplica los movimientos al stock
// (IN suma, OUT resta, ADJUSTMENT fija el valor).
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// Request petición recibida, para aserciones en tests.
type Request struct {
	Method    string
	Path      string
	Body      map[string]any
	RequestID string
	Auth      string
}

type failure struct {
	method string
	path   string
	status int
}

// Server estado del servicio falso.
type Server struct {
	mu         sync.Mutex
	categories []entity.Category
	products   []entity.Product
	movements  []entity.InventoryMovement
	requests   []Request
	failures   []failure
	gates      map[string]chan struct{}

	app *fiber.App
}

// New construye el servicio con rutas equivalentes al API remoto.
func New() *Server {
	s := &Server{gates: map[string]chan struct{}{}}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(s.record)

	app.Get("/categories", s.listCategories)
	app.Post("/categories", s.createCategory)
	app.Put("/categories/:id", s.updateCategory)
	app.Delete("/categories/:id", s.deleteCategory)

	app.Get("/products", s.listProducts)
	app.Post("/products", s.createProduct)
	app.Put("/products/:id", s.updateProduct)
	app.Delete("/products/:id", s.deleteProduct)

	app.Get("/inventory-movements", s.listMovements)
	app.Post("/inventory-movements", s.createMovement)
	s.app = app
	return s
}

// Handler adapta la app fiber a net/http.
func (s *Server) Handler() http.Handler {
	return adaptor.FiberApp(s.app)
}

// Start levanta un httptest.Server y lo cierra al terminar el test.
func Start(t testing.TB) (*Server, *httptest.Server) {
	t.Helper()
	s := New()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

// FailNext hace que la próxima petición method+path responda con status.
func (s *Server) FailNext(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, path: path, status: status})
}

// Hold bloquea las peticiones method+path hasta que se cierre el canal devuelto.
func (s *Server) Hold(method, path string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.gates[method+" "+path] = ch
	return ch
}

// Requests copia de las peticiones recibidas.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest última petición method+path, o nil.
func (s *Server) LastRequest(method, path string) *Request {
	reqs := s.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return &reqs[i]
		}
	}
	return nil
}

// Product estado actual de un producto en el servicio.
func (s *Server) Product(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// SeedProducts reemplaza los productos existentes.
func (s *Server) SeedProducts(products ...entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product(nil), products...)
}

// SeedCategories reemplaza las categorías existentes.
func (s *Server) SeedCategories(categories ...entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]entity.Category(nil), categories...)
}

func (s *Server) record(c *fiber.Ctx) error {
	req := Request{
		Method:    c.Method(),
		Path:      c.Path(),
		RequestID: c.Get("X-Request-ID"),
		Auth:      c.Get("Authorization"),
	}
	if body := c.Body(); len(body) > 0 {
		_ = json.Unmarshal(append([]byte(nil), body...), &req.Body)
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	gate := s.gates[req.Method+" "+req.Path]
	delete(s.gates, req.Method+" "+req.Path)
	status := 0
	for i, f := range s.failures {
		if f.method == req.Method && f.path == req.Path {
			status = f.status
			s.failures = append(s.failures[:i], s.failures[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if status != 0 {
		return c.Status(status).JSON(fiber.Map{"message": "fallo simulado"})
	}
	return c.Next()
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no encontrado"})
}

func (s *Server) listCategories(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(append([]entity.Category{}, s.categories...))
}

func (s *Server) createCategory(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name requerido"})
	}
	cat := entity.Category{ID: uuid.NewString(), Name: in.Name, CreatedAt: now()}
	s.mu.Lock()
	s.categories = append(s.categories, cat)
	s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (s *Server) updateCategory(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.Params("id") {
			s.categories[i].Name = in.Name
			return c.JSON(s.categories[i])
		}
	}
	return notFound(c)
}

func (s *Server) deleteCategory(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.Params("id") {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(append([]entity.Product{}, s.products...))
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var in entity.NewProduct
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
	}
	p := entity.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		CreatedAt:   now(),
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	var in entity.ProductChanges
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		p := &s.products[i]
		if p.ID != c.Params("id") {
			continue
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.CategoryID != nil {
			p.CategoryID = *in.CategoryID
		}
		return c.JSON(*p)
	}
	return notFound(c)
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == c.Params("id") {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}

func (s *Server) listMovements(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(append([]entity.InventoryMovement{}, s.movements...))
}

func (s *Server) createMovement(c *fiber.Ctx) error {
	var in entity.NewInventoryMovement
	if err := c.BodyParser(&in); err != nil || !in.Type.Valid() || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "movimiento inválido"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		p := &s.products[i]
		if p.ID != in.ProductID {
			continue
		}
		next := p.Stock
		switch in.Type {
		case entity.MovementTypeIN:
			next += in.Quantity
		case entity.MovementTypeOUT:
			next -= in.Quantity
		case entity.MovementTypeADJUSTMENT:
			next = in.Quantity
		}
		if next < 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "stock insuficiente"})
		}
		p.Stock = next
		m := entity.InventoryMovement{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			CreatedAt: now(),
			Product:   &entity.MovementProduct{ID: p.ID, Name: p.Name},
		}
		s.movements = append(s.movements, m)
		return c.Status(fiber.StatusCreated).JSON(m)
	}
	return notFound(c)
}
