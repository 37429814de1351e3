package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
)

func TestFormState(t *testing.T) {
	tests := []struct {
		name   string
		state  FormState
		open   bool
		target string
		dto    dto.FormStateDTO
	}{
		{"cerrado", Closed(), false, "", dto.FormStateDTO{Mode: "closed"}},
		{"creando", Creating(), true, "", dto.FormStateDTO{Mode: "creating"}},
		{"editando", Editing("p1"), true, "p1", dto.FormStateDTO{Mode: "editing", TargetID: "p1"}},
		{"editar sin id queda cerrado", Editing(""), false, "", dto.FormStateDTO{Mode: "closed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, tt.state.IsOpen())
			assert.Equal(t, tt.target, tt.state.TargetID())
			assert.Equal(t, tt.dto, tt.state.DTO())
		})
	}
}

func TestRequestSeq_SoloLaUltimaEsVigente(t *testing.T) {
	var s requestSeq
	first := s.next()
	second := s.next()
	assert.False(t, s.isLatest(first))
	assert.True(t, s.isLatest(second))
}
