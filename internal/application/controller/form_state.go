package controller

import "github.com/jhoicas/neowarehouse/internal/application/dto"

// FormMode modo del modal de creación/edición.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreating
	FormEditing
)

func (m FormMode) String() string {
	switch m {
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	default:
		return "closed"
	}
}

// FormState variante única Closed | Creating | Editing(targetID).
// Solo se construye con Closed, Creating o Editing: no existe "editando sin id".
type FormState struct {
	mode     FormMode
	targetID string
}

// Closed modal cerrado.
func Closed() FormState { return FormState{mode: FormClosed} }

// Creating modal abierto para crear.
func Creating() FormState { return FormState{mode: FormCreating} }

// Editing modal abierto para editar id. Un id vacío produce Closed.
func Editing(id string) FormState {
	if id == "" {
		return Closed()
	}
	return FormState{mode: FormEditing, targetID: id}
}

// Mode modo actual.
func (s FormState) Mode() FormMode { return s.mode }

// TargetID id en edición; vacío fuera de Editing.
func (s FormState) TargetID() string { return s.targetID }

// IsOpen indica si el modal está abierto (Creating o Editing).
func (s FormState) IsOpen() bool { return s.mode != FormClosed }

// DTO representación para la vista.
func (s FormState) DTO() dto.FormStateDTO {
	return dto.FormStateDTO{Mode: s.mode.String(), TargetID: s.targetID}
}
