package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-footer/pkg/content"
)

// Loader implements content.Loader by delegating to file, fs.FS or HTTP
// strategies. Construction helpers live in the top-level footer package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	validate  bool
}

var _ content.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options content.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		validate:  options.ValidateSchema,
	}
}

// Load fetches a document from src.
func (l *Loader) Load(ctx context.Context, src content.Source) (content.Document, error) {
	if src == nil {
		return content.Document{}, errors.New("content loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case content.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case content.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case content.SourceKindURL:
		if !l.allowHTTP {
			return content.Document{}, content.ErrHTTPDisabled
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("content loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return content.Document{}, err
	}

	if l.validate {
		if err := content.Validate(data); err != nil {
			return content.Document{}, fmt.Errorf("content loader: %s: %w", src.Location(), err)
		}
	}

	return content.NewDocument(src, data)
}
