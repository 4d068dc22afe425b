package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Loader implements resource.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ resource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options resource.LoaderOptions) *Loader {
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
	}
}

// Load fetches a document from the provided source.
func (l *Loader) Load(ctx context.Context, src resource.Source) (resource.Document, error) {
	if src == nil {
		return resource.Document{}, errors.New("resource loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case resource.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case resource.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case resource.SourceKindURL:
		if !l.allowHTTP {
			return resource.Document{}, errors.New("resource loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("resource loader: unsupported source kind")
	}
	if err != nil {
		return resource.Document{}, err
	}

	return resource.NewDocument(src, data)
}
