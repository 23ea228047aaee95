package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

func testIssuer() *Issuer {
	return NewIssuer("Faux Facebook", []byte("access-secret"), []byte("refresh-secret"))
}

func testPayload() Payload {
	return Payload{
		UID:             "uid-1",
		Email:           "a@b.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		IsUserConfirmed: true,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := testIssuer()

	for _, flavor := range []Flavor{FlavorAccess, FlavorRefresh} {
		tok, err := iss.Issue(testPayload(), flavor)
		if err != nil {
			t.Fatalf("Issue(%s): %v", flavor, err)
		}
		got, err := iss.Verify(tok, flavor)
		if err != nil {
			t.Fatalf("Verify(%s): %v", flavor, err)
		}
		if got.UID != "uid-1" || got.Email != "a@b.com" || !got.IsUserConfirmed {
			t.Fatalf("payload mismatch: %+v", got)
		}
	}
}

func TestVerify_FlavorSecretsAreDistinct(t *testing.T) {
	iss := testIssuer()

	access, err := iss.Issue(testPayload(), FlavorAccess)
	if err != nil {
		t.Fatal(err)
	}
	// Un access token no verifica como refresh: secretos distintos.
	if _, err := iss.Verify(access, FlavorRefresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("cross-flavor: quería ErrTokenInvalid, vino %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := testIssuer()
	iss.AccessTTL = -time.Minute // emitir ya vencido

	tok, err := iss.Issue(testPayload(), FlavorAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Verify(tok, FlavorAccess); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("quería ErrTokenExpired, vino %v", err)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	iss := testIssuer()

	// Token firmado con HS256 y el MISMO secreto: el allow-list de
	// algoritmos lo tiene que rechazar igual.
	claims := Claims{Data: testPayload()}
	claims.ExpiresAt = jwtv5.NewNumericDate(time.Now().Add(time.Hour))
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Verify(tok, FlavorAccess); err == nil {
		t.Fatal("token HS256 aceptado")
	}
}

func TestVerify_Malformed(t *testing.T) {
	iss := testIssuer()
	if _, err := iss.Verify("not.a.jwt", FlavorAccess); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("quería ErrTokenMalformed, vino %v", err)
	}
}

func TestTTLConstants(t *testing.T) {
	if AccessTTL != 21600*time.Second {
		t.Fatalf("AccessTTL: %v", AccessTTL)
	}
	if RefreshTTL != 7*24*time.Hour {
		t.Fatalf("RefreshTTL: %v", RefreshTTL)
	}
}
