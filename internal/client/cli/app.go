package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/orgchart/internal/client/client"
	"github.com/dmitrijs2005/orgchart/internal/client/config"
	"github.com/dmitrijs2005/orgchart/internal/client/models"
	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/filex"
	"github.com/dmitrijs2005/orgchart/internal/netx"
)

const photoDir = "photos"

var (
	ErrUsage         = errors.New("usage: orgctl [-a url] [-t token] register|login|ping|photo-upload <person-id> <file>|photo-download <person-id>")
	ErrTokenRequired = errors.New("token required: pass -t or set token in the config file")
)

type App struct {
	config   *config.Config
	client   client.Client
	transfer *http.Client
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	api := client.NewHTTPClient(c.ServerAddr, c.RequestTimeout)
	api.SetToken(c.Token)

	return &App{
		config:   c,
		client:   api,
		transfer: &http.Client{Timeout: c.RequestTimeout},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run executes the command named by the first non-flag word of args.
func (a *App) Run(ctx context.Context, args []string) error {
	words := commandWords(args)
	if len(words) == 0 {
		return ErrUsage
	}

	cmd, rest := words[0], words[1:]

	switch cmd {
	case "register":
		return a.authenticate(ctx, a.client.Register)
	case "login":
		return a.authenticate(ctx, a.client.Login)
	case "ping":
		return a.ping(ctx)
	case "photo-upload":
		if len(rest) != 2 {
			return ErrUsage
		}
		return a.photoUpload(ctx, rest[0], rest[1])
	case "photo-download":
		if len(rest) != 1 {
			return ErrUsage
		}
		return a.photoDownload(ctx, rest[0])
	case "help":
		fmt.Fprintln(a.out, ErrUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, ErrUsage)
	}
}

// commandWords drops config flags and their values, leaving the command
// and its arguments.
func commandWords(args []string) []string {
	words := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			words = append(words, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			continue
		}
		if slices.Contains(config.Flags, arg) && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
		}
	}
	return words
}

type authFunc func(ctx context.Context, username, password string) (*models.Session, error)

func (a *App) authenticate(ctx context.Context, call authFunc) error {
	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := call(ctx, username, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id: %d\nusername: %s\ntoken: %s\n", s.ID, s.Username, s.Token)
	return nil
}

func (a *App) ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "server is up")
	return nil
}

func (a *App) photoUpload(ctx context.Context, rawID, path string) error {
	id, err := parsePersonID(rawID)
	if err != nil {
		return err
	}
	if a.config.Token == "" {
		return ErrTokenRequired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read photo: %w", err)
	}

	up, err := a.client.PhotoUploadURL(ctx, id)
	if err != nil {
		return err
	}

	if err := netx.UploadToPresignedURL(ctx, a.transfer, up.UploadURL, data, http.DetectContentType(data)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "uploaded %s\n", up.Key)
	return nil
}

func (a *App) photoDownload(ctx context.Context, rawID string) error {
	id, err := parsePersonID(rawID)
	if err != nil {
		return err
	}
	if a.config.Token == "" {
		return ErrTokenRequired
	}

	down, err := a.client.PhotoDownloadURL(ctx, id)
	if err != nil {
		return err
	}

	data, err := netx.DownloadFromPresignedURL(ctx, a.transfer, down.URL)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubDir(photoDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteFileAtomic(dir, fmt.Sprintf("person-%d", id), data)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "saved %s\n", path)
	return nil
}

func parsePersonID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: person id must be a positive integer", common.ErrorValidation)
	}
	return id, nil
}
