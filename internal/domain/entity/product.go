package entity

import "time"

// Product representa un producto recibido por mensajes OAGIS.
// Solo se usa para validar la existencia del ITEM antes de crear inventario.
type Product struct {
	ID          string
	Name        string
	UnitMeasure string
	IsVirtual   bool // los productos virtuales no admiten inventario
	CreatedAt   time.Time
}
