package assetcache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

var ErrNotFound = errors.New("assetcache: asset not found")

// Response is a stored or freshly fetched asset.
type Response struct {
	Body        []byte
	ContentType string
	ModTime     time.Time
}

// Origin is where assets come from on a cache miss.
type Origin interface {
	Get(ctx context.Context, p string) (*Response, error)
}

// DirOrigin reads assets from a file tree. "/" maps to index.html.
type DirOrigin struct {
	fsys fs.FS
}

func NewDirOrigin(root string) *DirOrigin {
	return &DirOrigin{fsys: os.DirFS(root)}
}

// NewFSOrigin serves from any fs.FS, such as an embed.FS or fstest.MapFS.
func NewFSOrigin(fsys fs.FS) *DirOrigin {
	return &DirOrigin{fsys: fsys}
}

func (o *DirOrigin) Get(ctx context.Context, p string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		name = "index.html"
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}

	info, err := fs.Stat(o.fsys, name)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	body, err := fs.ReadFile(o.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return &Response{
		Body:        body,
		ContentType: contentType(name, body),
		ModTime:     info.ModTime(),
	}, nil
}

func contentType(name string, body []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(body)
}
