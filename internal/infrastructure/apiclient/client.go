// Package apiclient implementa el cliente del servicio remoto de inventario
// (productos, categorías y movimientos) sobre HTTP/JSON.
//
// Sin reintentos ni backoff: cualquier fallo se devuelve al llamador como
// *domain.TransportError, conservando el error original vía Unwrap.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/pkg/requestid"
)

const (
	maxResponseBytes = 4 << 20
	maxErrorBodyLen  = 512
)

func init() {
	// El servicio remoto espera precios como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Config parámetros de conexión al servicio remoto.
type Config struct {
	BaseURL    string
	Token      string        // opcional; se envía como "Authorization: Bearer <token>"
	Timeout    time.Duration // 0 = sin timeout
	HTTPClient *http.Client  // opcional; si es nil se crea uno con Timeout
}

// Client cliente HTTP del servicio remoto. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger

	products   *ProductsResource
	categories *CategoriesResource
	movements  *InventoryMovementsResource
}

// New construye el cliente.
func New(cfg Config, log zerolog.Logger) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: hc,
		log:        log.With().Str("component", "apiclient").Logger(),
	}
	c.products = &ProductsResource{c: c}
	c.categories = &CategoriesResource{c: c}
	c.movements = &InventoryMovementsResource{c: c}
	return c
}

// Products recurso /products.
func (c *Client) Products() *ProductsResource { return c.products }

// Categories recurso /categories.
func (c *Client) Categories() *CategoriesResource { return c.categories }

// InventoryMovements recurso /inventory-movements.
func (c *Client) InventoryMovements() *InventoryMovementsResource { return c.movements }

// do ejecuta una petición JSON. in nil = sin cuerpo; out nil = se descarta la respuesta.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	terr := func(status int, body string, err error) error {
		return &domain.TransportError{Op: op, Method: method, Path: path, StatusCode: status, Body: body, Err: err}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return terr(0, "", fmt.Errorf("serializar request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return terr(0, "", fmt.Errorf("crear HTTP request: %w", err))
	}
	reqID, ok := requestid.FromContext(ctx)
	if !ok {
		reqID = uuid.NewString()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("op", op).Str("request_id", reqID).Msg("llamada HTTP fallida")
		return terr(0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return terr(resp.StatusCode, "", fmt.Errorf("leer respuesta: %w", err))
	}

	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", reqID).
		Msg("llamada al servicio remoto")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := truncate(strings.TrimSpace(string(raw)), maxErrorBodyLen)
		return terr(resp.StatusCode, msg, errors.New(http.StatusText(resp.StatusCode)))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return terr(resp.StatusCode, "", fmt.Errorf("deserializar respuesta: %w", err))
	}
	return nil
}

// truncate corta s a lo sumo en n bytes sin partir una runa UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
