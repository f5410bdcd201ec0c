package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// maxBatchWrites is the largest batch the backend accepts.
const maxBatchWrites = 500

type httpBackend struct {
	client *utils.HTTPClient

	emailDomain    string
	retryAttempts  uint
	retryBaseDelay time.Duration

	mu    sync.RWMutex
	token string

	ids   utils.IDGenerator
	clock utils.Clock

	logger *logger.Logger
}

// NewHTTPBackend constructs the REST implementation of [Backend]. It
// normalises cfg.HTTPAddress and fails when it is empty or not a URL.
func NewHTTPBackend(cfg config.ClientAdapter, logger *logger.Logger) (Backend, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	attempts := cfg.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	delay := cfg.RetryBaseDelay
	if delay <= 0 {
		delay = time.Millisecond
	}

	return &httpBackend{
		client:         utils.NewHTTPClient(baseURL, cfg.APIKey, cfg.RequestTimeout),
		emailDomain:    cfg.EmailDomain,
		retryAttempts:  attempts,
		retryBaseDelay: delay,
		ids:            utils.NewUUIDGenerator(),
		clock:          utils.SystemClock{},
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackend) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

func (h *httpBackend) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackend) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// call performs one request. Idempotent requests are retried on transient
// failures with backoff doubling from retryBaseDelay.
func (h *httpBackend) call(ctx context.Context, idempotent bool, send func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	attempts := uint(1)
	if idempotent {
		attempts = h.retryAttempts
	}

	var (
		resp    *resty.Response
		lastErr error
	)
	err := retry.Do(
		func() error {
			r, err := send(h.authedRequest(ctx))
			if err != nil {
				if ctx.Err() != nil {
					lastErr = ctx.Err()
					return retry.Unrecoverable(lastErr)
				}
				lastErr = &BackendError{Code: app.CodeNetworkFailed, Message: err.Error()}
				return lastErr
			}
			if err = mapHTTPError(r); err != nil {
				lastErr = err
				if isTransient(err) {
					return err
				}
				return retry.Unrecoverable(err)
			}
			resp = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(h.retryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}
	return resp, nil
}

func documentURL(path string) string {
	return "/v1/documents/" + strings.Trim(path, "/")
}

func collectionURL(path string) string {
	return "/v1/collections/" + strings.Trim(path, "/")
}

// getDocument reads the document at path. found is false on not-found.
func (h *httpBackend) getDocument(ctx context.Context, path string) (doc models.Document, found bool, err error) {
	resp, err := h.call(ctx, true, func(req *resty.Request) (*resty.Response, error) {
		return req.Get(documentURL(path))
	})
	if err != nil {
		if isNotFound(err) {
			return models.Document{}, false, nil
		}
		return models.Document{}, false, err
	}
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, false, fmt.Errorf("decode document %s: %w", path, err)
	}
	return doc, true, nil
}

func (h *httpBackend) setDocument(ctx context.Context, path string, fields map[string]any) error {
	_, err := h.call(ctx, true, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(models.DocumentWrite{Fields: fields}).Put(documentURL(path))
	})
	return err
}

func (h *httpBackend) mergeDocument(ctx context.Context, path string, fields map[string]any, mask []string) error {
	_, err := h.call(ctx, true, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(models.DocumentWrite{Fields: fields, UpdateMask: mask}).Patch(documentURL(path))
	})
	return err
}

type listOptions struct {
	orderBy    string
	descending bool
	limit      int
	whereField string
	whereValue string
}

func (h *httpBackend) listCollection(ctx context.Context, path string, opts listOptions) ([]models.Document, error) {
	resp, err := h.call(ctx, true, func(req *resty.Request) (*resty.Response, error) {
		if opts.orderBy != "" {
			req.SetQueryParam("orderBy", opts.orderBy)
			if opts.descending {
				req.SetQueryParam("direction", "desc")
			}
		}
		if opts.limit > 0 {
			req.SetQueryParam("limit", strconv.Itoa(opts.limit))
		}
		if opts.whereField != "" {
			req.SetQueryParam("where", opts.whereField+"=="+opts.whereValue)
		}
		return req.Get(collectionURL(path))
	})
	if err != nil {
		return nil, err
	}

	var list models.DocumentList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", path, err)
	}
	return list.Documents, nil
}

// addDocument creates a document with a backend-generated id. Not retried:
// a repeat would create a duplicate.
func (h *httpBackend) addDocument(ctx context.Context, collection string, fields map[string]any) (models.Document, error) {
	resp, err := h.call(ctx, false, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(models.DocumentWrite{Fields: fields}).Post(collectionURL(collection))
	})
	if err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// commit applies writes in batches of at most maxBatchWrites. Each batch is
// atomic; only writes beyond the limit span several batches.
func (h *httpBackend) commit(ctx context.Context, writes []models.BatchWrite) error {
	for start := 0; start < len(writes); start += maxBatchWrites {
		end := min(start+maxBatchWrites, len(writes))
		chunk := writes[start:end]
		_, err := h.call(ctx, true, func(req *resty.Request) (*resty.Response, error) {
			return req.SetBody(models.BatchRequest{Writes: chunk}).Post("/v1/batch")
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// decodeField unmarshals the named field of doc into v. It reports false
// when the field is absent.
func decodeField(doc models.Document, name string, v any) (bool, error) {
	raw, ok := doc.Fields[name]
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode field %q of %s: %w", name, doc.Path, err)
	}
	return true, nil
}

// fail logs err and wraps it into a failed envelope.
func fail[T any](log *logger.Logger, fn string, err error) models.Result[T] {
	event := log.Warn()
	if !isTransient(err) && !errors.Is(err, context.Canceled) {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Str("code", CodeOf(err)).Msg("backend call failed")
	return models.Fail[T](failMessage(err))
}

func isNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && (be.Code == app.CodeNotFound || be.Status == http.StatusNotFound)
}
