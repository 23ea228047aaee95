package password

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt err: %v", err)
	}
	if len(salt) != 32 { // 16 bytes hex
		t.Fatalf("salt length: got %d want 32", len(salt))
	}

	phc, err := Hash(Default, salt, "hunter22")
	if err != nil {
		t.Fatalf("Hash err: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$") {
		t.Fatalf("unexpected phc format: %q", phc)
	}

	if !Verify(phc, salt, "hunter22") {
		t.Fatal("Verify: password correcto rechazado")
	}
	if Verify(phc, salt, "hunter23") {
		t.Fatal("Verify: password incorrecto aceptado")
	}
}

func TestVerify_SaltMatters(t *testing.T) {
	saltA, _ := GenerateSalt()
	saltB, _ := GenerateSalt()

	phc, err := Hash(Default, saltA, "hunter22")
	if err != nil {
		t.Fatalf("Hash err: %v", err)
	}

	// Mismo password con otro salt no verifica: el salt participa del
	// material hasheado.
	if Verify(phc, saltB, "hunter22") {
		t.Fatal("Verify: acepta con salt ajeno")
	}
}

func TestHash_NonDeterministic(t *testing.T) {
	salt, _ := GenerateSalt()

	a, err := Hash(Default, salt, "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash(Default, salt, "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	// Salt interno fresco por hash: dos llamadas no coinciden, pero
	// ambas verifican.
	if a == b {
		t.Fatal("dos hashes idénticos")
	}
	if !Verify(a, salt, "hunter22") || !Verify(b, salt, "hunter22") {
		t.Fatal("alguno de los hashes no verifica")
	}
}

func TestVerify_GarbageInput(t *testing.T) {
	salt, _ := GenerateSalt()
	for _, phc := range []string{"", "$argon2id$", "not-a-hash", "$argon2id$v=19$m=1,t=1,p=1$xx"} {
		if Verify(phc, salt, "whatever") {
			t.Fatalf("Verify acepta basura: %q", phc)
		}
	}
}

func TestPolicy_MinLength(t *testing.T) {
	if err := DefaultPolicy.Validate("12345"); err == nil {
		t.Fatal("password de 5 chars aceptado")
	}
	if err := DefaultPolicy.Validate("123456"); err != nil {
		t.Fatalf("password de 6 chars rechazado: %v", err)
	}
}
