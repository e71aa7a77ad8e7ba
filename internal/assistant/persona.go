package assistant

import (
	"strings"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Persona is the assistant identity shown to the user.
type Persona string

const (
	PersonaGreeter Persona = "greeter"
	PersonaAva     Persona = "ava"
	PersonaRanger  Persona = "ranger"
)

func (p Persona) String() string { return string(p) }

const veteranKeyword = "veteran"

// SelectPersona picks the persona for a user message: ranger when the text
// mentions veterans, ava otherwise.
func SelectPersona(text string) Persona {
	if strings.Contains(domain.NormalizeText(text), veteranKeyword) {
		return PersonaRanger
	}
	return PersonaAva
}
