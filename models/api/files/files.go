package filesapimodels

import "time"

type FileView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SpaceID     string    `json:"space_id"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
