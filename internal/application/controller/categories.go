package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

// CategoriesController orquesta la pantalla de categorías.
type CategoriesController struct {
	repo repository.CategoryRepository
	log  zerolog.Logger

	mu         sync.Mutex
	items      []entity.Category
	inflight   int
	submitting bool
	errMsg     string
	form       FormState
	values     dto.CategoryForm
	listSeq    requestSeq
}

// NewCategoriesController construye el controlador.
func NewCategoriesController(repo repository.CategoryRepository, log zerolog.Logger) *CategoriesController {
	return &CategoriesController{
		repo:  repo,
		log:   log.With().Str("component", "categories").Logger(),
		items: []entity.Category{},
		form:  Closed(),
	}
}

// Load recarga la lista de categorías.
func (c *CategoriesController) Load(ctx context.Context) error {
	c.mu.Lock()
	seq := c.listSeq.next()
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.repo.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if !c.listSeq.isLatest(seq) {
		c.log.Debug().Uint64("seq", seq).Msg("respuesta de categorías obsoleta descartada")
		return nil
	}
	if err != nil {
		c.errMsg = msgLoadCategories
		c.log.Error().Err(err).Msg("cargar categorías")
		return err
	}
	c.items = items
	return nil
}

// OpenCreate abre el modal vacío.
func (c *CategoriesController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = Creating()
	c.values = dto.CategoryForm{}
	c.errMsg = ""
}

// OpenEdit abre el modal precargado con la categoría id.
func (c *CategoriesController) OpenEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cat, ok := FindByID(c.items, id)
	if !ok {
		return domain.ErrNotFound
	}
	c.form = Editing(cat.ID)
	c.values = dto.CategoryForm{Name: cat.Name}
	c.errMsg = ""
	return nil
}

// SetForm reemplaza los valores del formulario abierto.
func (c *CategoriesController) SetForm(values dto.CategoryForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.form.IsOpen() {
		return domain.ErrFormClosed
	}
	c.values = values
	return nil
}

// Submit valida y envía. Ver ProductsController.Submit.
func (c *CategoriesController) Submit(ctx context.Context) (*entity.Category, error) {
	c.mu.Lock()
	if !c.form.IsOpen() {
		c.mu.Unlock()
		return nil, domain.ErrFormClosed
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, domain.ErrSubmitInProgress
	}
	values := dto.CategoryForm{Name: strings.TrimSpace(c.values.Name)}
	if err := validateCategoryForm(values); err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		return nil, err
	}
	form := c.form
	c.submitting = true
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	editing := form.Mode() == FormEditing
	var (
		saved *entity.Category
		err   error
	)
	if editing {
		saved, err = c.repo.Update(ctx, form.TargetID(), values.Name)
	} else {
		saved, err = c.repo.Create(ctx, values.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	c.submitting = false
	if err != nil {
		if editing {
			c.errMsg = msgUpdateCategory
		} else {
			c.errMsg = msgCreateCategory
		}
		c.log.Error().Err(err).Str("mode", form.Mode().String()).Msg("guardar categoría")
		return nil, err
	}
	if editing {
		c.items = ReplaceByID(c.items, *saved)
	} else {
		c.items = AppendItem(c.items, *saved)
	}
	// Cualquier carga anterior aún en vuelo ya no refleja este cambio.
	c.listSeq.next()
	c.form = Closed()
	c.values = dto.CategoryForm{}
	return saved, nil
}

// Close descarta la edición en curso.
func (c *CategoriesController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = Closed()
	c.values = dto.CategoryForm{}
	c.errMsg = ""
}

// Delete elimina la categoría id tras confirmación. No verifica si algún producto
// la referencia: esos productos pasan a mostrar el id crudo.
func (c *CategoriesController) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	c.mu.Lock()
	if c.form.IsOpen() {
		c.mu.Unlock()
		return domain.ErrFormOpen
	}
	c.mu.Unlock()
	if !confirmed(confirm, msgConfirmCategory) {
		return domain.ErrConfirmationNeeded
	}

	c.mu.Lock()
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	err := c.repo.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if err != nil {
		c.errMsg = msgDeleteCategory
		c.log.Error().Err(err).Str("category_id", id).Msg("eliminar categoría")
		return err
	}
	c.items = RemoveByID(c.items, id)
	c.listSeq.next()
	return nil
}

// Items copia de la lista local.
func (c *CategoriesController) Items() []entity.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Category(nil), c.items...)
}

// View instantánea de la pantalla.
func (c *CategoriesController) View() dto.CategoriesView {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]dto.CategoryRow, 0, len(c.items))
	for _, cat := range c.items {
		rows = append(rows, dto.CategoryRow{ID: cat.ID, Name: cat.Name, CreatedAt: cat.CreatedAt})
	}
	return dto.CategoriesView{
		Items:   rows,
		Loading: c.inflight > 0,
		Error:   c.errMsg,
		Form:    c.form.DTO(),
		Values:  c.values,
	}
}
