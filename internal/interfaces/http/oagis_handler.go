package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-oagis/internal/application/dto"
	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// DocumentProcessor procesa los BODs OAGIS entrantes; lo implementa *oagis.Service.
type DocumentProcessor interface {
	SyncInventory(ctx context.Context, req oagis.Request) oagis.Result
	ReceivePoAcknowledge(ctx context.Context, req oagis.Request) oagis.Result
	ReceiveRmaAcknowledge(ctx context.Context, req oagis.Request) oagis.Result
}

// MessageFinder consulta la auditoría de mensajes; lo implementa *oagis.MessageQuery.
type MessageFinder interface {
	Get(ctx context.Context, key oagis.MessageKey) (*entity.OagisMessageInfo, error)
}

// OagisHandler maneja la recepción de documentos OAGIS.
type OagisHandler struct {
	svc      DocumentProcessor
	messages MessageFinder
}

// NewOagisHandler construye el handler.
func NewOagisHandler(svc DocumentProcessor, messages MessageFinder) *OagisHandler {
	return &OagisHandler{svc: svc, messages: messages}
}

// SyncInventory godoc
// @Summary      Recibir SYNC_INVENTORY
// @Description  Compara el VALUE declarado con el disponible del producto, recibe la diferencia
//
//	y envía la confirmación configurada para la tienda.
//
// @Tags         oagis
// @Accept       xml
// @Produce      json
// @Param        X-User-Login  header  string  false  "Identidad que ejecuta las operaciones (por defecto admin)"
// @Param        body          body    string  true   "Documento OAGIS SYNC_INVENTORY"
// @Success      200  {object}  dto.OagisResultResponse
// @Failure      400  {object}  dto.OagisResultResponse
// @Failure      422  {object}  dto.OagisResultResponse
// @Router       /api/oagis/sync-inventory [post]
func (h *OagisHandler) SyncInventory(c *fiber.Ctx) error {
	return respond(c, h.svc.SyncInventory(c.Context(), request(c)))
}

// ReceivePoAcknowledge godoc
// @Summary      Recibir acuse de recepción de PO
// @Tags         oagis
// @Accept       xml
// @Produce      json
// @Param        X-User-Login  header  string  false  "Identidad que ejecuta las operaciones (por defecto system)"
// @Param        body          body    string  true   "Documento OAGIS RECEIVE_DELIVERY con RECEIPTLN"
// @Success      200  {object}  dto.OagisResultResponse
// @Failure      400  {object}  dto.OagisResultResponse
// @Failure      422  {object}  dto.OagisResultResponse
// @Router       /api/oagis/po-acknowledge [post]
func (h *OagisHandler) ReceivePoAcknowledge(c *fiber.Ctx) error {
	return respond(c, h.svc.ReceivePoAcknowledge(c.Context(), request(c)))
}

// ReceiveRmaAcknowledge godoc
// @Summary      Recibir acuse de recepción de RMA
// @Tags         oagis
// @Accept       xml
// @Produce      json
// @Param        X-User-Login  header  string  false  "Identidad que ejecuta las operaciones (por defecto system)"
// @Param        body          body    string  true   "Documento OAGIS RECEIVE_DELIVERY con RECEIPTLN de devolución"
// @Success      200  {object}  dto.OagisResultResponse
// @Failure      400  {object}  dto.OagisResultResponse
// @Failure      422  {object}  dto.OagisResultResponse
// @Router       /api/oagis/rma-acknowledge [post]
func (h *OagisHandler) ReceiveRmaAcknowledge(c *fiber.Ctx) error {
	return respond(c, h.svc.ReceiveRmaAcknowledge(c.Context(), request(c)))
}

// GetMessage godoc
// @Summary      Consultar un mensaje procesado
// @Description  Busca el registro de auditoría por su clave de idempotencia.
// @Tags         oagis
// @Produce      json
// @Param        logical_id    query  string  true  "LOGICALID del emisor"
// @Param        component     query  string  true  "COMPONENT"
// @Param        task          query  string  true  "TASK"
// @Param        reference_id  query  string  true  "REFERENCEID"
// @Success      200  {object}  dto.OagisMessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/oagis/messages [get]
func (h *OagisHandler) GetMessage(c *fiber.Ctx) error {
	var q dto.OagisMessageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	info, err := h.messages.Get(c.Context(), oagis.MessageKey{
		LogicalID:   q.LogicalID,
		Component:   q.Component,
		Task:        q.Task,
		ReferenceID: q.ReferenceID,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.NewOagisMessageResponse(info))
}

// request copia el cuerpo: fasthttp reutiliza el buffer al terminar el handler.
func request(c *fiber.Ctx) oagis.Request {
	body := make([]byte, len(c.Body()))
	copy(body, c.Body())
	return oagis.Request{Body: body, UserLoginID: GetUserLoginID(c)}
}

// respond 200 si no hubo errores, 400 si el documento no se pudo leer y 422 en otro caso.
func respond(c *fiber.Ctx, res oagis.Result) error {
	status := fiber.StatusOK
	switch {
	case res.Failed():
		status = fiber.StatusBadRequest
	case !res.Success:
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(dto.NewOagisResultResponse(res))
}
