package email

import (
	"bytes"
	"fmt"
	htemplate "html/template"
	ttemplate "text/template"
)

type templateVars struct {
	AppName string
	Link    string
}

const confirmationHTMLTmpl = `
<html>
	<body>
		<h3 style="color: #3b5998;">{{.AppName}}</h3>
		<p>Use the following link to verify your email <br> <a href="{{.Link}}">{{.Link}}</a></p>
	</body>
</html>
`

const confirmationTextTmpl = `Use the following link to verify your email
{{.Link}}`

const resetHTMLTmpl = `
<html>
	<body>
		<h3 style="color: #3b5998;">{{.AppName}}</h3>
		<p>You requested a password reset for your account. <br>
		Use the following link to change your password <a href="{{.Link}}">{{.Link}}</a></p>
		<p>If you did not make this request, kindly ignore this email.</p>
	</body>
</html>
`

const resetTextTmpl = `You requested a password reset for your account.
Use the following link to change your password {{.Link}}

If you did not make this request, kindly ignore this email.`

var (
	confirmationHTML = htemplate.Must(htemplate.New("confirmation_html").Parse(confirmationHTMLTmpl))
	confirmationText = ttemplate.Must(ttemplate.New("confirmation_text").Parse(confirmationTextTmpl))
	resetHTML        = htemplate.Must(htemplate.New("reset_html").Parse(resetHTMLTmpl))
	resetText        = ttemplate.Must(ttemplate.New("reset_text").Parse(resetTextTmpl))
)

func render(kind Kind, appName, link string) (subject, html, text string, err error) {
	vars := templateVars{AppName: appName, Link: link}

	var htmlTmpl *htemplate.Template
	var textTmpl *ttemplate.Template
	switch kind {
	case KindConfirmation:
		subject = "Confirm your Email"
		htmlTmpl, textTmpl = confirmationHTML, confirmationText
	case KindResetPass:
		subject = "Reset your password"
		htmlTmpl, textTmpl = resetHTML, resetText
	default:
		return "", "", "", fmt.Errorf("email: unknown kind %q", kind)
	}

	var hb, tb bytes.Buffer
	if err := htmlTmpl.Execute(&hb, vars); err != nil {
		return "", "", "", fmt.Errorf("email: render html: %w", err)
	}
	if err := textTmpl.Execute(&tb, vars); err != nil {
		return "", "", "", fmt.Errorf("email: render text: %w", err)
	}
	return subject, hb.String(), tb.String(), nil
}
