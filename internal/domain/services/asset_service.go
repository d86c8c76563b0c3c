package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/storage"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// sniffLength is how much of a file mimetype needs to recognise image formats.
const sniffLength = 3072

var (
	// ErrInvalidAssetID is returned for ids or URLs that cannot name an asset.
	ErrInvalidAssetID = errors.New("invalid asset id")
	// ErrAssetNotFound is returned when the store holds no object for an id.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrObjectStoreUnavailable is returned when no object store is configured.
	ErrObjectStoreUnavailable = errors.New("object store is not configured")
)

// UploadSource is one file of a multipart upload.
type UploadSource struct {
	FileName string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// UploadResult is the outcome for one file. Exactly one of URL or Error is set.
type UploadResult struct {
	FileName string `json:"fileName"`
	URL      string `json:"url,omitempty"`
	AssetID  string `json:"assetId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Succeeded reports whether the file was stored.
func (r UploadResult) Succeeded() bool {
	return r.Error == ""
}

// InterfaceAssetService manages tour images in the object store.
type InterfaceAssetService interface {
	Upload(ctx context.Context, files []UploadSource) []UploadResult
	Delete(ctx context.Context, assetID string) error
	DeleteByURL(ctx context.Context, rawURL string) error
	ParseAssetID(rawURL string) (string, error)
}

// AssetService stores images under <namespace>/<uuid><ext>.
type AssetService struct {
	Store     storage.ObjectStore
	BaseURL   string
	Namespace string
	MaxBytes  int64
}

// NewAssetService creates an asset service. store may be nil, in which case
// every upload and delete fails with ErrObjectStoreUnavailable.
func NewAssetService(store storage.ObjectStore, cfg *config.Config) InterfaceAssetService {
	return &AssetService{
		Store:     store,
		BaseURL:   strings.TrimRight(cfg.AssetPublicBaseURL, "/"),
		Namespace: strings.Trim(cfg.AssetNamespace, "/"),
		MaxBytes:  cfg.UploadMaxBytes,
	}
}

// 1. Upload attempts every file independently.
func (s *AssetService) Upload(ctx context.Context, files []UploadSource) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, file := range files {
		result := UploadResult{FileName: file.FileName}
		id, url, err := s.uploadOne(ctx, file)
		if err != nil {
			Logger.Warning("upload %q: %v", file.FileName, err)
			result.Error = uploadErrorMessage(err)
		} else {
			result.AssetID = id
			result.URL = url
		}
		results = append(results, result)
	}
	return results
}

func (s *AssetService) uploadOne(ctx context.Context, file UploadSource) (string, string, error) {
	if s.Store == nil {
		return "", "", ErrObjectStoreUnavailable
	}
	if s.MaxBytes > 0 && file.Size > s.MaxBytes {
		return "", "", &rejectedFileError{fmt.Sprintf("file exceeds the %d byte limit", s.MaxBytes)}
	}
	if file.Size == 0 {
		return "", "", &rejectedFileError{"file is empty"}
	}

	rc, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(rc, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", fmt.Errorf("read: %w", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", "", &rejectedFileError{fmt.Sprintf("%s is not an image", mt.String())}
	}

	ext := mt.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(file.FileName))
	}

	id := uuid.NewString()
	key := s.objectKey(id, ext)
	body := io.MultiReader(bytes.NewReader(head), rc)
	if err := s.Store.Put(ctx, key, mt.String(), body); err != nil {
		return "", "", &UpstreamError{Provider: "object store", Op: "upload", Err: err}
	}

	return id, FormatAssetURL(s.BaseURL, s.Namespace, id, ext), nil
}

// 2. Delete removes every object stored for the asset id.
func (s *AssetService) Delete(ctx context.Context, assetID string) error {
	parsed, err := uuid.Parse(assetID)
	if err != nil {
		return ErrInvalidAssetID
	}
	if s.Store == nil {
		return ErrObjectStoreUnavailable
	}

	// keys are written with the canonical lowercase form
	assetID = parsed.String()
	removed, err := s.Store.DeleteByPrefix(ctx, s.objectKey(assetID, "."))
	if err != nil {
		return &UpstreamError{Provider: "object store", Op: "delete", Err: err}
	}
	if removed == 0 {
		return ErrAssetNotFound
	}
	Logger.Info("deleted asset %s (%d objects)", assetID, removed)
	return nil
}

// 3. DeleteByURL parses the asset id from a public URL before deleting. A URL
// of the wrong shape is refused without contacting the store.
func (s *AssetService) DeleteByURL(ctx context.Context, rawURL string) error {
	id, err := s.ParseAssetID(rawURL)
	if err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

// 4. ParseAssetID
func (s *AssetService) ParseAssetID(rawURL string) (string, error) {
	return ParseAssetID(s.BaseURL, s.Namespace, rawURL)
}

func (s *AssetService) objectKey(id, ext string) string {
	return s.Namespace + "/" + id + ext
}

// FormatAssetURL builds the public URL of an asset.
func FormatAssetURL(baseURL, namespace, id, ext string) string {
	return strings.TrimRight(baseURL, "/") + "/" + namespace + "/" + id + ext
}

// ParseAssetID is the inverse of FormatAssetURL: it takes the path after the
// public base URL, strips the namespace and the extension, and returns the id.
func ParseAssetID(baseURL, namespace, rawURL string) (string, error) {
	marker := strings.TrimRight(baseURL, "/") + "/"
	rawURL = strings.TrimSpace(rawURL)
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	if marker == "/" || !strings.HasPrefix(rawURL, marker) {
		return "", ErrInvalidAssetID
	}

	rest := strings.TrimPrefix(rawURL, marker)
	prefix := strings.Trim(namespace, "/") + "/"
	if !strings.HasPrefix(rest, prefix) {
		return "", ErrInvalidAssetID
	}

	file := strings.TrimPrefix(rest, prefix)
	if file == "" || strings.Contains(file, "/") {
		return "", ErrInvalidAssetID
	}

	id := strings.TrimSuffix(file, path.Ext(file))
	if id == "" {
		return "", ErrInvalidAssetID
	}
	return id, nil
}

// rejectedFileError is a per-file problem the admin can act on.
type rejectedFileError struct {
	reason string
}

func (e *rejectedFileError) Error() string {
	return e.reason
}

func uploadErrorMessage(err error) string {
	var rejected *rejectedFileError
	switch {
	case errors.As(err, &rejected):
		return rejected.reason
	case errors.Is(err, ErrObjectStoreUnavailable):
		return err.Error()
	default:
		return "upload failed"
	}
}
