package post

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxImageSize es el tamaño máximo aceptado para una imagen.
const MaxImageSize = 10 << 20 // 10 MiB

// ImageUpload es una imagen adjunta a un post, todavía sin validar.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// saveImage valida la imagen (jpeg o png, hasta MaxImageSize), la
// persiste en UploadsDir con un nombre generado y devuelve su URL
// pública.
func (s *Service) saveImage(img *ImageUpload) (string, error) {
	// Sniffear el tipo real: la extensión del cliente no se usa para
	// decidir nada.
	head := make([]byte, 512)
	n, err := io.ReadFull(img.Reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	head = head[:n]

	var ext string
	switch http.DetectContentType(head) {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return "", ErrBadImage
	}

	if err := os.MkdirAll(s.deps.UploadsDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.deps.UploadsDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// +1 para detectar el byte que excede el límite.
	limited := io.LimitReader(io.MultiReader(bytes.NewReader(head), img.Reader), MaxImageSize+1)
	written, err := io.Copy(dst, limited)
	if err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	if written > MaxImageSize {
		_ = os.Remove(dst.Name())
		return "", ErrImageTooLarge
	}

	return s.deps.Domain + "/uploads/" + name, nil
}
