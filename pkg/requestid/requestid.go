// Package requestid transporta el id de correlación de una petición entrante
// hasta las llamadas salientes al servicio de inventario.
package requestid

import "context"

// Header cabecera HTTP que lleva el id en ambos sentidos.
const Header = "X-Request-ID"

type ctxKey struct{}

// NewContext devuelve una copia de ctx que lleva id. Un id vacío no se guarda.
func NewContext(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext id guardado en ctx, si existe.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
