package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/inventory"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

// InventoryController orquesta el historial de movimientos y el modal para registrar uno.
// Los movimientos son inmutables: no hay edición ni borrado.
type InventoryController struct {
	movements repository.InventoryMovementRepository
	products  repository.ProductRepository
	log       zerolog.Logger

	mu           sync.Mutex
	items        []entity.InventoryMovement
	productItems []entity.Product
	inflight     int
	submitting   bool
	errMsg       string
	form         FormState
	values       dto.MovementForm
	listSeq      requestSeq
	productSeq   requestSeq
}

// NewInventoryController construye el controlador.
func NewInventoryController(
	movements repository.InventoryMovementRepository,
	products repository.ProductRepository,
	log zerolog.Logger,
) *InventoryController {
	return &InventoryController{
		movements:    movements,
		products:     products,
		log:          log.With().Str("component", "inventory").Logger(),
		items:        []entity.InventoryMovement{},
		productItems: []entity.Product{},
		form:         Closed(),
		values:       emptyMovementForm(),
	}
}

func emptyMovementForm() dto.MovementForm {
	return dto.MovementForm{Type: entity.MovementTypeIN, Quantity: 1}
}

// Load carga movimientos y productos (para el selector). Son independientes:
// un fallo en uno no impide el otro. Devuelve el primer error.
func (c *InventoryController) Load(ctx context.Context) error {
	errMovements := c.LoadMovements(ctx)
	errProducts := c.LoadProducts(ctx)
	if errMovements != nil {
		return errMovements
	}
	return errProducts
}

// LoadMovements recarga el historial.
func (c *InventoryController) LoadMovements(ctx context.Context) error {
	c.mu.Lock()
	seq := c.listSeq.next()
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.movements.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if !c.listSeq.isLatest(seq) {
		c.log.Debug().Uint64("seq", seq).Msg("respuesta de movimientos obsoleta descartada")
		return nil
	}
	if err != nil {
		c.errMsg = msgLoadMovements
		c.log.Error().Err(err).Msg("cargar movimientos")
		return err
	}
	c.items = items
	return nil
}

// LoadProducts recarga los productos del selector.
func (c *InventoryController) LoadProducts(ctx context.Context) error {
	c.mu.Lock()
	seq := c.productSeq.next()
	c.inflight++
	c.mu.Unlock()

	items, err := c.products.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if !c.productSeq.isLatest(seq) {
		return nil
	}
	if err != nil {
		c.errMsg = msgLoadProducts
		c.log.Error().Err(err).Msg("cargar productos del selector")
		return err
	}
	c.productItems = items
	return nil
}

// OpenCreate abre el modal con valores por defecto (IN, cantidad 1).
func (c *InventoryController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = Creating()
	c.values = emptyMovementForm()
	c.errMsg = ""
}

// SetForm reemplaza los valores del formulario abierto.
func (c *InventoryController) SetForm(values dto.MovementForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.form.IsOpen() {
		return domain.ErrFormClosed
	}
	c.values = values
	return nil
}

// Submit valida el movimiento (producto, motivo de ajuste, tipo, cantidad) antes de
// cualquier llamada de red. Éxito: cierra el modal y recarga el historial; la
// mutación del stock del producto la hace el servicio remoto.
func (c *InventoryController) Submit(ctx context.Context) (*entity.InventoryMovement, error) {
	c.mu.Lock()
	if !c.form.IsOpen() {
		c.mu.Unlock()
		return nil, domain.ErrFormClosed
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, domain.ErrSubmitInProgress
	}
	typ := c.values.Type
	if t, ok := entity.ParseMovementType(string(typ)); ok {
		typ = t
	}
	in := entity.NewInventoryMovement{
		ProductID: strings.TrimSpace(c.values.ProductID),
		Type:      typ,
		Quantity:  c.values.Quantity,
		Reason:    strings.TrimSpace(c.values.Reason),
	}
	if err := inventory.ValidateMovement(inventory.MovementCandidate{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	}); err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		return nil, err
	}
	c.submitting = true
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	created, err := c.movements.Create(ctx, in)

	c.mu.Lock()
	c.inflight--
	c.submitting = false
	if err != nil {
		c.errMsg = msgCreateMovement
		c.mu.Unlock()
		c.log.Error().Err(err).Str("product_id", in.ProductID).Str("type", string(in.Type)).Msg("registrar movimiento")
		return nil, err
	}
	c.form = Closed()
	c.values = emptyMovementForm()
	c.listSeq.next()
	c.mu.Unlock()

	c.log.Info().Str("movement_id", created.ID).Str("type", string(created.Type)).Int("quantity", created.Quantity).Msg("movimiento registrado")

	// El fallo de la recarga queda en la vista; el movimiento ya fue creado.
	_ = c.LoadMovements(ctx)
	return created, nil
}

// Close descarta el formulario.
func (c *InventoryController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = Closed()
	c.values = emptyMovementForm()
	c.errMsg = ""
}

// Items copia del historial local.
func (c *InventoryController) Items() []entity.InventoryMovement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.InventoryMovement(nil), c.items...)
}

// View instantánea de la pantalla.
func (c *InventoryController) View() dto.InventoryView {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make(map[string]string, len(c.productItems))
	options := make([]dto.Option, 0, len(c.productItems))
	for _, p := range c.productItems {
		names[p.ID] = p.Name
		options = append(options, dto.Option{ID: p.ID, Label: p.Name})
	}
	rows := make([]dto.MovementRow, 0, len(c.items))
	for _, m := range c.items {
		rows = append(rows, movementRow(m, names))
	}
	return dto.InventoryView{
		Items:          rows,
		Products:       options,
		Types:          movementTypeOptions(),
		Loading:        c.inflight > 0,
		Error:          c.errMsg,
		Form:           c.form.DTO(),
		Values:         c.values,
		ReasonRequired: c.values.Type == entity.MovementTypeADJUSTMENT,
	}
}

// movementRow el nombre sale de la instantánea del movimiento, luego del
// selector local y por último el id crudo.
func movementRow(m entity.InventoryMovement, names map[string]string) dto.MovementRow {
	name := m.ProductID
	if m.Product != nil && m.Product.Name != "" {
		name = m.Product.Name
	} else if n, ok := names[m.ProductID]; ok {
		name = n
	}
	return dto.MovementRow{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   name,
		Type:          m.Type,
		TypeLabel:     MovementTypeLabel(m.Type),
		Tone:          MovementTypeTone(m.Type),
		Quantity:      m.Quantity,
		QuantityLabel: SignedQuantity(m.Type, m.Quantity),
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
	}
}
