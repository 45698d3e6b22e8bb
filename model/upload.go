package model

// UploadResponse points at the stored payment-proof image. Storage is a
// placeholder; only the URL is carried into the order payload.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
