package backend

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

// MaxImageSize is the client-side fast-fail limit for image uploads. The
// backend enforces its own limit; this just avoids shipping 50MB up the wire
// only to be rejected.
const MaxImageSize = 5 << 20 // 5MB

var (
	ErrNotAnImage   = errors.New("backend: file is not an image")
	ErrImageTooBig  = errors.New("backend: image exceeds 5MB")
	ErrMissingImage = errors.New("backend: no file provided")
)

// Upload is one file destined for a multipart endpoint.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Validate enforces the image MIME-type and size constraints before any
// bytes leave the process.
func (u *Upload) Validate() error {
	if u == nil {
		return ErrMissingImage
	}
	if !strings.HasPrefix(u.ContentType, "image/") {
		return fmt.Errorf("%w: %s", ErrNotAnImage, u.ContentType)
	}
	if u.Size > MaxImageSize {
		return fmt.Errorf("%w: %d bytes", ErrImageTooBig, u.Size)
	}
	return nil
}

func writeFilePart(mw *multipart.Writer, field string, u *Upload) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Reader == nil {
		return ErrMissingImage
	}
	part, err := mw.CreateFormFile(field, u.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, u.Reader)
	return err
}
