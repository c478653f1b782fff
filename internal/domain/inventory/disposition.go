package inventory

import "github.com/jhoicas/inventario-oagis/internal/domain/entity"

// Códigos DISPOSITN reconocidos.
const (
	DispositionReceivedToAvailable     = "ReceivedTOAvailable"
	DispositionNotAvailableToAvailable = "NotAvailableTOAvailable"
	DispositionReceivedToNotAvailable  = "ReceivedTONotAvailable"
	DispositionAvailableToNotAvailable = "AvailableTONotAvailable"
)

var dispositionStatus = map[string]string{
	DispositionReceivedToAvailable:     entity.InventoryStatusAvailable,
	DispositionNotAvailableToAvailable: entity.InventoryStatusAvailable,
	DispositionReceivedToNotAvailable:  entity.InventoryStatusOnHold,
	DispositionAvailableToNotAvailable: entity.InventoryStatusOnHold,
}

// ClassifyDisposition devuelve el estado de inventario para un código de disposición.
// Un código desconocido (o vacío) no es error: ok=false y el estado queda sin asignar.
func ClassifyDisposition(code string) (status string, ok bool) {
	status, ok = dispositionStatus[code]
	return status, ok
}
