// Package email envía los mails transaccionales (confirmación de
// cuenta y reset de password) vía SMTP.
package email

import (
	"context"
	"errors"
)

// ErrSendFailed envuelve cualquier fallo de entrega SMTP.
var ErrSendFailed = errors.New("email: send failed")

// Sender es la interfaz de bajo nivel para enviar un email.
// Implementada por SMTPSender.
type Sender interface {
	// Send envía un email con contenido HTML y texto plano como
	// multipart/alternative.
	Send(to, subject, htmlBody, textBody string) error
}

// Kind identifica el tipo de mail transaccional.
type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindResetPass    Kind = "resetpass"
)

// Mailer renderiza y despacha los mails transaccionales.
//
// La asimetría de los dos flujos es deliberada: el mail de confirmación
// se despacha en background y sus fallos solo se loguean; el de reset
// se espera y su fallo hace fallar la operación completa.
type Mailer struct {
	sender  Sender
	appName string
}

func NewMailer(sender Sender, appName string) *Mailer {
	return &Mailer{sender: sender, appName: appName}
}

// Send renderiza el template del tipo dado con el link y lo envía.
func (m *Mailer) Send(ctx context.Context, kind Kind, to, link string) error {
	subject, html, text, err := render(kind, m.appName, link)
	if err != nil {
		return err
	}
	if err := m.sender.Send(to, subject, html, text); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
