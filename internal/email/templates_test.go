package email

import (
	"strings"
	"testing"
)

func TestRender_Confirmation(t *testing.T) {
	subject, html, text, err := render(KindConfirmation, "Faux Facebook", "http://x/confirmemail?email=a&c=b")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if subject == "" {
		t.Fatal("subject vacío")
	}
	if !strings.Contains(html, "http://x/confirmemail?email=a&amp;c=b") &&
		!strings.Contains(html, "http://x/confirmemail?email=a&c=b") {
		t.Fatalf("link ausente en html:\n%s", html)
	}
	if !strings.Contains(text, "http://x/confirmemail?email=a&c=b") {
		t.Fatalf("link ausente en texto plano:\n%s", text)
	}
}

func TestRender_ResetPass(t *testing.T) {
	subject, html, _, err := render(KindResetPass, "Faux Facebook", "http://x/resetlink?code=c&email=a")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(strings.ToLower(subject), "reset") {
		t.Fatalf("subject inesperado: %q", subject)
	}
	if !strings.Contains(html, "Faux Facebook") {
		t.Fatal("appName ausente en html")
	}
}

func TestRender_UnknownKind(t *testing.T) {
	if _, _, _, err := render(Kind("otro"), "x", "y"); err == nil {
		t.Fatal("kind desconocido aceptado")
	}
}
