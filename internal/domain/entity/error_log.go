package entity

import "fmt"

// ReasonCode etiqueta enumerada de un ErrorRecord.
type ReasonCode string

// Códigos de motivo. Solo ParseError aborta el documento; el resto se acumula.
const (
	ReasonParseError                ReasonCode = "ParseError"
	ReasonNumericFormat             ReasonCode = "NumericFormatError"
	ReasonQuantitySerialMismatch    ReasonCode = "QuantitySerialMismatch"
	ReasonReceiveInventoryService   ReasonCode = "ReceiveInventoryServiceError"
	ReasonGenericService            ReasonCode = "GenericServiceException"
	ReasonInventoryAvailableService ReasonCode = "GetProductInventoryAvailableServiceError"
	ReasonCreateMessageService      ReasonCode = "CreateOagisMessageServiceError"
	ReasonCreateMessageInfo         ReasonCode = "CreateOagisMessageInfoError"
	ReasonSendMailService           ReasonCode = "SendMailServiceError"
	ReasonGenericEntity             ReasonCode = "GenericEntityException"
)

// ErrorRecord un error de negocio o de servicio asociado al mensaje.
type ErrorRecord struct {
	ReasonCode  ReasonCode
	Description string
}

func (r ErrorRecord) String() string {
	return fmt.Sprintf("[%s] %s", r.ReasonCode, r.Description)
}

// ErrorLog lista ordenada de errores de un documento. Solo admite agregar.
// El valor cero está listo para usarse.
type ErrorLog struct {
	records []ErrorRecord
}

// Add agrega un registro con código y descripción.
func (l *ErrorLog) Add(code ReasonCode, description string) {
	l.records = append(l.records, ErrorRecord{ReasonCode: code, Description: description})
}

// Addf como Add con formato.
func (l *ErrorLog) Addf(code ReasonCode, format string, args ...any) {
	l.Add(code, fmt.Sprintf(format, args...))
}

// Append agrega un registro ya construido; nil se ignora.
func (l *ErrorLog) Append(rec *ErrorRecord) {
	if rec == nil {
		return
	}
	l.records = append(l.records, *rec)
}

// Len cantidad de errores acumulados.
func (l *ErrorLog) Len() int { return len(l.records) }

// Empty true si no hay errores; el documento se considera exitoso.
func (l *ErrorLog) Empty() bool { return len(l.records) == 0 }

// Records devuelve una copia de los registros en orden de inserción.
func (l *ErrorLog) Records() []ErrorRecord {
	out := make([]ErrorRecord, len(l.records))
	copy(out, l.records)
	return out
}
