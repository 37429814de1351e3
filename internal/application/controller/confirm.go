package controller

// ConfirmFunc paso de confirmación explícita del usuario antes de eliminar.
// Recibe el mensaje a mostrar y devuelve true si el usuario confirma.
type ConfirmFunc func(message string) bool

// Confirmed ConfirmFunc que siempre acepta (confirmación ya obtenida por la vista).
func Confirmed(string) bool { return true }

func confirmed(fn ConfirmFunc, message string) bool {
	return fn != nil && fn(message)
}
