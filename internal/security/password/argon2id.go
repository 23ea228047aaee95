package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
}

var Default = Params{Memory: 64 * 1024, Time: 3, Parallelism: 1, KeyLen: 32}

// ErrHashing indica un fallo interno al derivar el hash (nunca un
// mismatch de credenciales).
var ErrHashing = fmt.Errorf("password: hashing failed")

// GenerateSalt devuelve un salt aleatorio de 16 bytes, hex-encoded.
// Se genera una vez por usuario en el registro y nunca cambia.
func GenerateSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return hex.EncodeToString(b), nil
}

// Hash deriva un PHC string argon2id sobre salt+plain. El salt del
// usuario se antepone al plaintext; argon2 agrega además su propio salt
// interno aleatorio, embebido en el PHC.
// Formato: $argon2id$v=19$m=...,t=...,p=...$<saltB64>$<dkB64>
func Hash(p Params, salt, plain string) (string, error) {
	internal := make([]byte, 16)
	if _, err := rand.Read(internal); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	dk := argon2.IDKey([]byte(salt+plain), internal, p.Time, p.Memory, p.Parallelism, p.KeyLen)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(internal),
		base64.RawStdEncoding.EncodeToString(dk),
	), nil
}

// Verify recomputa el hash con salt+plain y compara en tiempo
// constante. Un mismatch retorna false, nunca error; un PHC malformado
// se reporta como no verificable (false).
func Verify(phc, salt, plain string) bool {
	// $argon2id$v=19$m=...,t=...,p=...$<saltB64>$<dkB64>
	parts := strings.Split(phc, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var v int
	if n, _ := fmt.Sscanf(parts[2], "v=%d", &v); n != 1 || v != 19 {
		return false
	}
	var m, t, p int
	if n, _ := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); n != 3 {
		return false
	}
	internal, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	dkStored, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	key := argon2.IDKey([]byte(salt+plain), internal, uint32(t), uint32(m), uint8(p), uint32(len(dkStored)))
	return subtle.ConstantTimeCompare(key, dkStored) == 1
}
