package controller

import (
	"strconv"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// Tonos de color semánticos, ver dto.ToneSuccess y siguientes.
const (
	ToneSuccess = dto.ToneSuccess
	ToneDanger  = dto.ToneDanger
	ToneWarning = dto.ToneWarning
	ToneInfo    = dto.ToneInfo
	ToneAccent  = dto.ToneAccent
	ToneNeutral = dto.ToneNeutral
)

// MovementTypeLabel etiqueta visible del tipo de movimiento.
func MovementTypeLabel(t entity.MovementType) string {
	switch t {
	case entity.MovementTypeIN:
		return "Entrada"
	case entity.MovementTypeOUT:
		return "Salida"
	case entity.MovementTypeADJUSTMENT:
		return "Ajuste"
	}
	return string(t)
}

// MovementTypeTone color del tipo de movimiento.
func MovementTypeTone(t entity.MovementType) string {
	switch t {
	case entity.MovementTypeIN:
		return ToneSuccess
	case entity.MovementTypeOUT:
		return ToneDanger
	case entity.MovementTypeADJUSTMENT:
		return ToneWarning
	}
	return ToneNeutral
}

// SignedQuantity cantidad con signo: "+n" para IN, "-n" para OUT, "n" para ADJUSTMENT
// (el ajuste fija el valor, no suma ni resta).
func SignedQuantity(t entity.MovementType, qty int) string {
	n := strconv.Itoa(qty)
	switch t {
	case entity.MovementTypeIN:
		return "+" + n
	case entity.MovementTypeOUT:
		return "-" + n
	case entity.MovementTypeADJUSTMENT:
		return n
	}
	return n
}

func movementTypeOptions() []dto.Option {
	out := make([]dto.Option, 0, len(entity.MovementTypes))
	for _, t := range entity.MovementTypes {
		out = append(out, dto.Option{ID: string(t), Label: MovementTypeLabel(t)})
	}
	return out
}
