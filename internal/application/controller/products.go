package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/inventory"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
	"github.com/jhoicas/neowarehouse/pkg/locale"
)

// ProductsController orquesta la pantalla de productos: lista local, modal de
// creación/edición y las categorías del selector. Seguro para uso concurrente;
// las llamadas de red se hacen fuera del lock.
type ProductsController struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	fmt        *locale.Formatter
	log        zerolog.Logger

	mu                sync.Mutex
	items             []entity.Product
	categoryItems     []entity.Category
	inflight          int
	loadingCategories int
	submitting        bool
	errMsg            string
	form              FormState
	values            dto.ProductForm
	listSeq           requestSeq
	categorySeq       requestSeq
}

// NewProductsController construye el controlador con la lista vacía y el modal cerrado.
func NewProductsController(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	f *locale.Formatter,
	log zerolog.Logger,
) *ProductsController {
	return &ProductsController{
		products:      products,
		categories:    categories,
		fmt:           f,
		log:           log.With().Str("component", "products").Logger(),
		items:         []entity.Product{},
		categoryItems: []entity.Category{},
		form:          Closed(),
		values:        emptyProductForm(),
	}
}

func emptyProductForm() dto.ProductForm {
	return dto.ProductForm{Price: decimal.Zero}
}

// Load recarga la lista de productos desde el servicio remoto.
// Si falla, la lista conserva su último valor y se publica el mensaje de error.
func (c *ProductsController) Load(ctx context.Context) error {
	c.mu.Lock()
	seq := c.listSeq.next()
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.products.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if !c.listSeq.isLatest(seq) {
		c.log.Debug().Uint64("seq", seq).Msg("respuesta de productos obsoleta descartada")
		return nil
	}
	if err != nil {
		c.errMsg = msgLoadProducts
		c.log.Error().Err(err).Msg("cargar productos")
		return err
	}
	c.items = items
	return nil
}

// LoadCategories recarga las categorías del selector.
func (c *ProductsController) LoadCategories(ctx context.Context) error {
	c.mu.Lock()
	seq := c.categorySeq.next()
	c.loadingCategories++
	c.mu.Unlock()

	items, err := c.categories.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingCategories--
	if !c.categorySeq.isLatest(seq) {
		c.log.Debug().Uint64("seq", seq).Msg("respuesta de categorías obsoleta descartada")
		return nil
	}
	if err != nil {
		c.errMsg = msgLoadCategories
		c.log.Error().Err(err).Msg("cargar categorías")
		return err
	}
	c.categoryItems = items
	return nil
}

// OpenCreate abre el modal en modo creación con el formulario vacío y refresca las categorías.
// El modal queda abierto aunque falle el refresco; el error se devuelve y se muestra.
func (c *ProductsController) OpenCreate(ctx context.Context) error {
	c.mu.Lock()
	c.form = Creating()
	c.values = emptyProductForm()
	c.errMsg = ""
	c.mu.Unlock()
	return c.LoadCategories(ctx)
}

// OpenEdit abre el modal precargado con el producto id de la lista local.
func (c *ProductsController) OpenEdit(ctx context.Context, id string) error {
	c.mu.Lock()
	p, ok := FindByID(c.items, id)
	if !ok {
		c.mu.Unlock()
		return domain.ErrNotFound
	}
	c.form = Editing(p.ID)
	c.values = dto.ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
	c.errMsg = ""
	c.mu.Unlock()
	return c.LoadCategories(ctx)
}

// SetForm reemplaza los valores del formulario abierto.
func (c *ProductsController) SetForm(values dto.ProductForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.form.IsOpen() {
		return domain.ErrFormClosed
	}
	c.values = values
	return nil
}

// Submit valida y envía el formulario. Éxito: parchea la lista local (append o
// reemplazo por id) y cierra el modal. Fallo: el modal sigue abierto con el error.
func (c *ProductsController) Submit(ctx context.Context) (*entity.Product, error) {
	c.mu.Lock()
	if !c.form.IsOpen() {
		c.mu.Unlock()
		return nil, domain.ErrFormClosed
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, domain.ErrSubmitInProgress
	}
	values := normalizeProductForm(c.values)
	if err := validateProductForm(values); err != nil {
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
		saved *entity.Product
		err   error
	)
	if editing {
		saved, err = c.products.Update(ctx, form.TargetID(), productChanges(values))
	} else {
		saved, err = c.products.Create(ctx, newProduct(values))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	c.submitting = false
	if err != nil {
		if editing {
			c.errMsg = msgUpdateProduct
		} else {
			c.errMsg = msgCreateProduct
		}
		c.log.Error().Err(err).Str("mode", form.Mode().String()).Msg("guardar producto")
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
	c.values = emptyProductForm()
	c.log.Info().Str("product_id", saved.ID).Str("mode", form.Mode().String()).Msg("producto guardado")
	return saved, nil
}

// Close descarta la edición en curso y cierra el modal.
func (c *ProductsController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = Closed()
	c.values = emptyProductForm()
	c.errMsg = ""
}

// Delete elimina el producto id tras la confirmación del usuario.
// Solo se permite con el modal cerrado. Si falla, la lista no cambia.
func (c *ProductsController) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	c.mu.Lock()
	if c.form.IsOpen() {
		c.mu.Unlock()
		return domain.ErrFormOpen
	}
	c.mu.Unlock()
	if !confirmed(confirm, msgConfirmProduct) {
		return domain.ErrConfirmationNeeded
	}

	c.mu.Lock()
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	err := c.products.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if err != nil {
		c.errMsg = msgDeleteProduct
		c.log.Error().Err(err).Str("product_id", id).Msg("eliminar producto")
		return err
	}
	c.items = RemoveByID(c.items, id)
	c.listSeq.next()
	return nil
}

// Items copia de la lista local.
func (c *ProductsController) Items() []entity.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Product(nil), c.items...)
}

// View instantánea de la pantalla.
func (c *ProductsController) View() dto.ProductsView {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]dto.ProductRow, 0, len(c.items))
	for _, p := range c.items {
		rows = append(rows, productRow(p, c.categoryItems, c.fmt))
	}
	options := make([]dto.Option, 0, len(c.categoryItems))
	for _, cat := range c.categoryItems {
		options = append(options, dto.Option{ID: cat.ID, Label: cat.Name})
	}
	return dto.ProductsView{
		Items:             rows,
		Categories:        options,
		Loading:           c.inflight > 0,
		LoadingCategories: c.loadingCategories > 0,
		Error:             c.errMsg,
		Form:              c.form.DTO(),
		Values:            c.values,
		CanSubmit:         c.inflight == 0 && len(c.categoryItems) > 0,
	}
}

func productRow(p entity.Product, categories []entity.Category, f *locale.Formatter) dto.ProductRow {
	desc := p.Description
	if desc == "" {
		desc = "-"
	}
	return dto.ProductRow{
		ID:            p.ID,
		Name:          p.Name,
		Description:   desc,
		Price:         p.Price,
		PriceLabel:    f.Money(p.Price),
		Stock:         p.Stock,
		LowStock:      inventory.IsLowStock(p),
		CategoryID:    p.CategoryID,
		CategoryLabel: inventory.ProductCategoryLabel(p, categories),
	}
}

func newProduct(f dto.ProductForm) entity.NewProduct {
	return entity.NewProduct{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Stock:       f.Stock,
		CategoryID:  f.CategoryID,
	}
}

// productChanges envía los campos que el formulario de edición expone.
// Stock solo viaja si el usuario lo informó.
func productChanges(f dto.ProductForm) entity.ProductChanges {
	price := f.Price
	return entity.ProductChanges{
		Name:        &f.Name,
		Description: &f.Description,
		Price:       &price,
		Stock:       f.Stock,
		CategoryID:  &f.CategoryID,
	}
}
