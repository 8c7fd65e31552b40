package models

// PhotoUpload tells the client where to PUT a person's photo.
type PhotoUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

type PhotoDownload struct {
	URL string `json:"url"`
}
