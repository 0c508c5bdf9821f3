package entity

import (
	"regexp"
	"strings"
)

// Entity kinds. A kind is present in the extracted set only when one of its
// patterns matched; there are never nil or empty values.
const (
	KindTaskName  = "task_name"
	KindHabitName = "habit_name"
	KindPriority  = "priority"
	KindFrequency = "frequency"
	KindDate      = "date"
)

// maxInputLen bounds the text handed to the patterns. Longer input is
// truncated, never rejected: extraction must be total.
const maxInputLen = 10000

// Set maps entity kind to the extracted value.
type Set map[string]string

// Extractor pulls structured values out of raw user text with ordered
// regular expressions; per kind, the first matching pattern wins. All
// patterns are compiled once at construction.
type Extractor struct {
	taskPatterns  []*regexp.Regexp
	habitPatterns []*regexp.Regexp
	priority      []*regexp.Regexp
	frequency     map[string]*regexp.Regexp
	datePatterns  []*regexp.Regexp
}

// NewExtractor compiles the pattern tables.
func NewExtractor() *Extractor {
	return &Extractor{
		taskPatterns: []*regexp.Regexp{
			regexp.MustCompile(`crear (?:una )?tarea (?:llamada )?"([^"]{1,120})"`),
			regexp.MustCompile(`crear (?:una )?tarea (?:llamada )?(.+)`),
			regexp.MustCompile(`(?:nueva|agregar) tarea (.+)`),
			regexp.MustCompile(`necesito (?:hacer|completar) (.+)`),
		},
		habitPatterns: []*regexp.Regexp{
			regexp.MustCompile(`crear (?:un )?h[áa]bito (?:llamado )?"([^"]{1,120})"`),
			regexp.MustCompile(`crear (?:un )?h[áa]bito (?:llamado )?(.+)`),
			regexp.MustCompile(`(?:nuevo|establecer) h[áa]bito (.+)`),
		},
		priority: []*regexp.Regexp{
			regexp.MustCompile(`prioridad (alta|media|baja)`),
			regexp.MustCompile(`(alta|media|baja) prioridad`),
			regexp.MustCompile(`\b(urgente|importante)\b`),
		},
		frequency: map[string]*regexp.Regexp{
			"diario":  regexp.MustCompile(`\b(?:diario|diaria|diariamente)\b|todos los d[íi]as`),
			"semanal": regexp.MustCompile(`\b(?:semanal|semanalmente)\b|cada semana`),
			"mensual": regexp.MustCompile(`\b(?:mensual|mensualmente)\b|cada mes`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{4})\b`),
			regexp.MustCompile(`\b(pasado ma[ñn]ana|hoy|ma[ñn]ana)\b`),
			regexp.MustCompile(`\b(lunes|martes|mi[ée]rcoles|jueves|viernes|s[áa]bado|domingo)\b`),
		},
	}
}

// Extract returns every entity found in the text. A non-match is an absent
// key, not an error; Extract never fails, whatever the input.
func (e *Extractor) Extract(text string) Set {
	entities := make(Set)
	if text == "" {
		return entities
	}
	if len(text) > maxInputLen {
		text = text[:maxInputLen]
	}
	text = strings.ToLower(text)

	if name := firstCapture(e.taskPatterns, text); name != "" {
		entities[KindTaskName] = name
	}
	if name := firstCapture(e.habitPatterns, text); name != "" {
		entities[KindHabitName] = name
	}

	for _, p := range e.priority {
		if m := p.FindStringSubmatch(text); m != nil {
			switch m[1] {
			case "urgente", "importante":
				entities[KindPriority] = "alta"
			default:
				entities[KindPriority] = m[1]
			}
			break
		}
	}

	for _, value := range []string{"diario", "semanal", "mensual"} {
		if e.frequency[value].MatchString(text) {
			entities[KindFrequency] = value
			break
		}
	}

	for _, p := range e.datePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			entities[KindDate] = m[1]
			break
		}
	}

	return entities
}

func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return cleanName(m[1])
		}
	}
	return ""
}

// cleanName trims quotes, whitespace and trailing punctuation from a
// captured span.
func cleanName(s string) string {
	s = strings.Trim(s, ` "'`)
	s = strings.TrimRight(s, ".,;:!?")
	return strings.TrimSpace(s)
}
