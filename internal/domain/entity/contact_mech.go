package entity

// Tipos de mecanismo de contacto.
const (
	ContactMechEmail = "EMAIL_ADDRESS"
)

// ContactMech medio de contacto asociado a una instalación (email, teléfono, etc.).
type ContactMech struct {
	ContactMechID     string
	ContactMechTypeID string
	InfoString        string
}
