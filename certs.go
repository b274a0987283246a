package proxymanager

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// CertificateForm builds the multipart body the certificate upload
// endpoints expect: a "certificate" part and a "certificate_key" part.
// The returned content type carries the form boundary and must be passed
// along with the body.
func CertificateForm(cert, key io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	certPart, err := w.CreateFormFile("certificate", "certificate.pem")
	if err != nil {
		return nil, "", fmt.Errorf("create certificate part: %w", err)
	}
	if _, err := io.Copy(certPart, cert); err != nil {
		return nil, "", fmt.Errorf("write certificate part: %w", err)
	}

	keyPart, err := w.CreateFormFile("certificate_key", "certificate.key")
	if err != nil {
		return nil, "", fmt.Errorf("create key part: %w", err)
	}
	if _, err := io.Copy(keyPart, key); err != nil {
		return nil, "", fmt.Errorf("write key part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
