// Package models holds the payloads the CLI exchanges with the server.
package models

// Session is what register and login return.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// PhotoUpload is a presigned PUT for a person's photo.
type PhotoUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// PhotoDownload is a presigned GET for a person's photo.
type PhotoDownload struct {
	URL string `json:"url"`
}
