package controller

// Identifiable registro con id asignado por el servicio remoto.
type Identifiable interface {
	GetID() string
}

// Las funciones de parcheo son puras: nunca modifican el slice de entrada,
// de modo que una vista ya entregada no cambia por debajo.

// AppendItem agrega item al final (tras un create exitoso).
func AppendItem[T Identifiable](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// ReplaceByID reemplaza el elemento con el mismo id (tras un update exitoso).
// Si no existe devuelve una copia sin cambios.
func ReplaceByID[T Identifiable](items []T, item T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if it.GetID() == item.GetID() {
			out[i] = item
			continue
		}
		out[i] = it
	}
	return out
}

// RemoveByID quita los elementos con ese id (tras un delete exitoso).
func RemoveByID[T Identifiable](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() != id {
			out = append(out, it)
		}
	}
	return out
}

// FindByID busca un elemento por id.
func FindByID[T Identifiable](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
