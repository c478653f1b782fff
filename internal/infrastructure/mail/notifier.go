// Package mail entrega la confirmación de SYNC_INVENTORY por SMTP (gomail) con el
// reporte de disponibilidad adjunto en PDF.
package mail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"slices"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/pkg/config"
	"github.com/jhoicas/inventario-oagis/pkg/logger"
)

const defaultContentType = "text/plain"

// Sender envío SMTP; *gomail.Dialer la implementa.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ReportRenderer genera el PDF adjunto a la notificación.
type ReportRenderer interface {
	RenderAvailabilityReport(ctx context.Context, report oagis.AvailabilityReport) ([]byte, error)
}

// SMTPNotifier implementa oagis.Notifier.
type SMTPNotifier struct {
	sender      Sender
	renderer    ReportRenderer
	defaultFrom string
	log         *logger.Logger
}

// NewSMTPNotifier construye el notificador con un gomail.Dialer a partir de la configuración.
func NewSMTPNotifier(cfg config.SMTPConfig, renderer ReportRenderer, log *logger.Logger) *SMTPNotifier {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return NewNotifier(d, renderer, cfg.From, log)
}

// NewNotifier construye el notificador sobre un Sender arbitrario. renderer puede ser nil.
func NewNotifier(sender Sender, renderer ReportRenderer, defaultFrom string, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{sender: sender, renderer: renderer, defaultFrom: defaultFrom, log: log}
}

// Send arma y envía el correo. Sin destinatarios, sin remitente o con respuesta SMTP 5xx
// el error envuelve domain.ErrServiceRejected; el resto son fallas de transporte.
func (n *SMTPNotifier) Send(ctx context.Context, note oagis.Notification) error {
	if len(note.To) == 0 {
		return fmt.Errorf("mail: la instalación no tiene destinatarios: %w", domain.ErrServiceRejected)
	}
	from := note.From
	if from == "" {
		from = n.defaultFrom
	}
	if from == "" {
		return fmt.Errorf("mail: remitente no configurado: %w", domain.ErrServiceRejected)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", note.To...)
	if cc := splitAddresses(note.Cc); len(cc) > 0 {
		msg.SetHeader("Cc", cc...)
	}
	if bcc := splitAddresses(note.Bcc); len(bcc) > 0 {
		msg.SetHeader("Bcc", bcc...)
	}
	msg.SetHeader("Subject", note.Subject)

	contentType := note.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	msg.SetBody(contentType, renderBody(note))

	if n.renderer != nil {
		report, err := n.renderer.RenderAvailabilityReport(ctx, note.Report)
		if err != nil {
			return fmt.Errorf("mail: generar reporte: %w", err)
		}
		msg.Attach(attachmentName(note.Report),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(report)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		)
	}

	if err := n.sender.DialAndSend(msg); err != nil {
		var smtpErr *textproto.Error
		if errors.As(err, &smtpErr) && smtpErr.Code >= 500 {
			return fmt.Errorf("mail: el servidor rechazó el envío (%d %s): %w", smtpErr.Code, smtpErr.Msg, domain.ErrServiceRejected)
		}
		return fmt.Errorf("mail: enviar: %w", err)
	}
	n.log.Info().Int("recipients", len(note.To)).Str("subject", note.Subject).Msg("correo de confirmación enviado")
	return nil
}

// LogNotifier registra la notificación sin enviarla; se usa cuando no hay SMTP configurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de solo registro.
func NewLogNotifier(log *logger.Logger) *LogNotifier { return &LogNotifier{log: log} }

// Send implementa oagis.Notifier.
func (n *LogNotifier) Send(_ context.Context, note oagis.Notification) error {
	n.log.Warn().
		Strs("to", note.To).
		Str("subject", note.Subject).
		Str("reference_id", note.Report.ReferenceID).
		Msg("SMTP no configurado, la confirmación solo se registra")
	return nil
}

// renderBody lista la ubicación de la plantilla y las variables como texto plano.
func renderBody(note oagis.Notification) string {
	var sb strings.Builder
	if note.BodyLocation != "" {
		sb.WriteString(note.BodyLocation)
		sb.WriteString("\n\n")
	}
	writeVariables(&sb, "", note.Variables)
	return sb.String()
}

func writeVariables(sb *strings.Builder, prefix string, vars map[string]any) {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := vars[k].(map[string]any); ok {
			writeVariables(sb, name, nested)
			continue
		}
		fmt.Fprintf(sb, "%s: %v\n", name, vars[k])
	}
}

func splitAddresses(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func attachmentName(report oagis.AvailabilityReport) string {
	if report.ReferenceID == "" {
		return "disponibilidad.pdf"
	}
	return "disponibilidad-" + report.ReferenceID + ".pdf"
}
