package oagis

import "github.com/jhoicas/inventario-oagis/internal/domain/entity"

// ContentTypePlain marcador de tipo de contenido de toda respuesta.
const ContentTypePlain = "text/plain"

// Stage etapa del procesamiento de un documento.
type Stage string

// Etapas. No hay transiciones hacia atrás; Failed solo se alcanza desde Parsing.
const (
	StageParsing           Stage = "Parsing"
	StageEnvelopeExtracted Stage = "EnvelopeExtracted"
	StageLinesProcessed    Stage = "LinesProcessed"
	StageFinalized         Stage = "Finalized"
	StageFailed            Stage = "Failed"
)

// Mensajes de resultado.
const (
	MessageSuccess     = "Acción realizada correctamente"
	MessageFailure     = "Error procesando el mensaje recibido"
	MessageParseFailed = "El documento recibido no se pudo leer"
)

// Result resultado estructurado de un documento. Errors solo tiene elementos si Success es false.
type Result struct {
	ContentType string
	Success     bool
	Message     string
	Envelope    entity.InboundMessage
	Errors      []entity.ErrorRecord
	Stage       Stage
	Operations  int // operaciones de recepción enviadas
}

// Failed indica si el documento no se pudo leer.
func (r Result) Failed() bool { return r.Stage == StageFailed }
