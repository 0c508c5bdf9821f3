package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTaskName(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quoted", `crear tarea "terminar el informe"`, "terminar el informe"},
		{"quoted with article", `crear una tarea llamada "pagar la renta"`, "pagar la renta"},
		{"unquoted", "crear tarea estudiar programación", "estudiar programación"},
		{"agregar form", "agregar tarea comprar víveres", "comprar víveres"},
		{"necesito form", "necesito hacer ejercicio por la mañana", "ejercicio por la mañana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.input)
			assert.Equal(t, tt.want, got[KindTaskName])
		})
	}
}

func TestExtractHabitName(t *testing.T) {
	e := NewExtractor()

	got := e.Extract(`crear hábito "leer 30 minutos"`)
	assert.Equal(t, "leer 30 minutos", got[KindHabitName])

	got = e.Extract("establecer hábito meditar")
	assert.Equal(t, "meditar", got[KindHabitName])
}

func TestExtractPriority(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "alta", e.Extract("con prioridad alta")[KindPriority])
	assert.Equal(t, "baja", e.Extract("es de baja prioridad")[KindPriority])
	// urgency words map to high priority
	assert.Equal(t, "alta", e.Extract("es urgente terminarlo")[KindPriority])
	assert.Equal(t, "alta", e.Extract("esto es importante")[KindPriority])
}

func TestExtractFrequency(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "diario", e.Extract("quiero hacerlo todos los días")[KindFrequency])
	assert.Equal(t, "semanal", e.Extract("un hábito semanal")[KindFrequency])
	assert.Equal(t, "mensual", e.Extract("revisarlo cada mes")[KindFrequency])
}

func TestExtractDate(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "15/09/2026", e.Extract("para el 15/09/2026")[KindDate])
	assert.Equal(t, "mañana", e.Extract("lo hago mañana")[KindDate])
	assert.Equal(t, "pasado mañana", e.Extract("pasado mañana lo termino")[KindDate])
	assert.Equal(t, "lunes", e.Extract("el lunes sin falta")[KindDate])
}

func TestExtractIsTotal(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("nada que extraer aquí"))

	// Unbalanced quote must not panic or capture garbage forever.
	got := e.Extract(`crear tarea "sin cierre`)
	assert.NotPanics(t, func() { _ = got })

	// Oversized input is truncated, not rejected.
	huge := "crear tarea estudiar " + strings.Repeat("x ", 20000)
	assert.NotPanics(t, func() { e.Extract(huge) })
}

func TestExtractLowercasesInput(t *testing.T) {
	e := NewExtractor()
	got := e.Extract("CREAR TAREA Estudiar")
	assert.Equal(t, "estudiar", got[KindTaskName])
}
