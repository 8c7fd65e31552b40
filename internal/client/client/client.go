package client

import (
	"context"

	"github.com/dmitrijs2005/orgchart/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, username, password string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Ping(ctx context.Context) error
	PhotoUploadURL(ctx context.Context, personID int64) (*models.PhotoUpload, error)
	PhotoDownloadURL(ctx context.Context, personID int64) (*models.PhotoDownload, error)
}
