package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// listLimit bounds a single listing page; backups of one user stay far below
// it.
const listLimit = 100

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

type listRequest struct {
	Prefix string     `json:"prefix"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	SortBy listSortBy `json:"sortBy"`
}

type listSortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type listedObject struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Metadata  struct {
		Size int64 `json:"size"`
	} `json:"metadata"`
}

// Upload implements [StorageAPI]: POST /storage/v1/object/{bucket}/{path}.
func (h *remoteDataService) Upload(ctx context.Context, bucket, path, contentType string, content []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(content).
		Post(objectPath("object", bucket, path))
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteDataService.Upload").
			Str("bucket", bucket).Str("path", path).Msg("backend rejected upload")
		return err
	}

	return nil
}

// PublicURL implements [StorageAPI].
func (h *remoteDataService) PublicURL(bucket, path string) string {
	return h.baseURL + objectPath("object/public", bucket, path)
}

// SignedURL implements [StorageAPI]: POST /storage/v1/object/sign/{bucket}/{path}.
// The backend answers with a path relative to /storage/v1.
func (h *remoteDataService) SignedURL(ctx context.Context, bucket, path string, expiresIn time.Duration) (string, error) {
	var signed signResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signRequest{ExpiresIn: int(expiresIn / time.Second)}).
		SetResult(&signed).
		Post(objectPath("object/sign", bucket, path))
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if signed.SignedURL == "" {
		return "", fmt.Errorf("sign request: empty signed url")
	}

	if strings.Contains(signed.SignedURL, "://") {
		return signed.SignedURL, nil
	}
	return h.baseURL + storagePath + "/" + strings.TrimLeft(signed.SignedURL, "/"), nil
}

// List implements [StorageAPI]: POST /storage/v1/object/list/{bucket}.
// Folder placeholders (entries without id) are skipped.
func (h *remoteDataService) List(ctx context.Context, bucket, prefix string) ([]models.BlobObject, error) {
	var listed []listedObject

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(listRequest{
			Prefix: prefix,
			Limit:  listLimit,
			SortBy: listSortBy{Column: "created_at", Order: "desc"},
		}).
		SetResult(&listed).
		Post(storagePath + "/object/list/" + escapePath(bucket))
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	objects := make([]models.BlobObject, 0, len(listed))
	for _, o := range listed {
		if o.ID == "" {
			continue
		}
		objects = append(objects, models.BlobObject{
			Name:      o.Name,
			CreatedAt: parseTimestamp(log, o.CreatedAt),
			UpdatedAt: parseTimestamp(log, o.UpdatedAt),
			Size:      o.Metadata.Size,
		})
	}

	return objects, nil
}

// Fetch implements [StorageAPI].
func (h *remoteDataService) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func objectPath(kind, bucket, path string) string {
	return storagePath + "/" + kind + "/" + escapePath(bucket) + "/" + escapePath(path)
}

// parseTimestamp accepts the several timestamp layouts storage backends
// emit. Unparseable values become the zero time.
func parseTimestamp(log *logger.Logger, value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		log.Warn().Err(err).Str("func", "parseTimestamp").Str("value", value).Msg("unparseable object timestamp")
		return time.Time{}
	}
	return t
}
