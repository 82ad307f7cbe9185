// Package disease is a stand-in leaf disease checker. There is no model behind it.
package disease

import (
	"errors"
	"net/http"
)

const mockDiagnosis = "Diagnosis: Leaf appears to be affected by Early Blight."

var ErrUnsupportedImage = errors.New("only jpg and png images are supported")

type Diagnosis struct {
	ContentType string `json:"content_type"`
	Message     string `json:"message"`
	Mock        bool   `json:"mock"`
}

// Detect checks that the upload is a jpg/png and returns the fixed diagnosis.
func Detect(image []byte) (Diagnosis, error) {
	ct := http.DetectContentType(image)
	if ct != "image/jpeg" && ct != "image/png" {
		return Diagnosis{}, ErrUnsupportedImage
	}
	return Diagnosis{ContentType: ct, Message: mockDiagnosis, Mock: true}, nil
}
