package stages

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/internal/queue"
)

// remoteClient is the shared JSON-over-HTTP plumbing for collaborators that
// live in separate services (the AI extraction service, the commerce
// platform bridge, the image normalizer). HTTP status drives retryability:
// 5xx and transport errors are transient, 4xx means the input itself is bad.
type remoteClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func newRemoteClient(baseURL string, timeout time.Duration, logger *slog.Logger) *remoteClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &remoteClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *remoteClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return queue.Permanent(fmt.Sprintf("encode request: %v", err), err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return queue.Permanent(fmt.Sprintf("build request: %v", err), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return queue.Transient(fmt.Sprintf("call %s: %v", path, err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return queue.Transient(fmt.Sprintf("read %s response: %v", path, err), err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return queue.Transient(fmt.Sprintf("%s rate limited", path), nil)
	case resp.StatusCode >= 500:
		return queue.Transient(fmt.Sprintf("%s returned %d", path, resp.StatusCode), nil)
	case resp.StatusCode >= 400:
		return queue.Permanent(fmt.Sprintf("%s rejected the request: %d %s", path, resp.StatusCode, truncateBody(raw)), nil)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return queue.Permanent(fmt.Sprintf("decode %s response: %v", path, err), err)
		}
	}
	return nil
}

func truncateBody(b []byte) string {
	const max = 200
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}

// RemoteExtractor calls the AI extraction service.
type RemoteExtractor struct {
	client *remoteClient
}

func NewRemoteExtractor(baseURL string, timeout time.Duration, logger *slog.Logger) *RemoteExtractor {
	return &RemoteExtractor{client: newRemoteClient(baseURL, timeout, logger)}
}

func (x *RemoteExtractor) Extract(ctx context.Context, merchantID uuid.UUID, p ExtractPayload, report queue.ProgressReporter) (*ExtractionResult, error) {
	report(10, "extraction requested")
	req := struct {
		MerchantID  uuid.UUID `json:"merchant_id"`
		DocumentID  uuid.UUID `json:"document_id"`
		StorageKey  string    `json:"storage_key"`
		ContentType string    `json:"content_type"`
		Filename    string    `json:"filename,omitempty"`
	}{merchantID, p.DocumentID, p.StorageKey, p.ContentType, p.Filename}

	var result ExtractionResult
	if err := x.client.post(ctx, "/v1/extract", req, &result); err != nil {
		return nil, err
	}
	report(90, "extraction returned")
	if len(result.Fields) == 0 {
		return nil, queue.Permanent("extraction returned no fields", nil)
	}
	return &result, nil
}

// RemoteSyncer calls the commerce platform bridge.
type RemoteSyncer struct {
	client *remoteClient
}

func NewRemoteSyncer(baseURL string, timeout time.Duration, logger *slog.Logger) *RemoteSyncer {
	return &RemoteSyncer{client: newRemoteClient(baseURL, timeout, logger)}
}

func (s *RemoteSyncer) Sync(ctx context.Context, merchantID uuid.UUID, p SyncPayload) (*SyncResult, error) {
	req := struct {
		MerchantID uuid.UUID       `json:"merchant_id"`
		DocumentID uuid.UUID       `json:"document_id"`
		Order      json.RawMessage `json:"order"`
	}{merchantID, p.DocumentID, p.Order}

	var result SyncResult
	if err := s.client.post(ctx, "/v1/orders", req, &result); err != nil {
		return nil, err
	}
	if result.PlatformOrderID == "" {
		return nil, queue.Transient("platform bridge returned no order id", nil)
	}
	return &result, nil
}

// RemoteImageProcessor calls the image normalizer.
type RemoteImageProcessor struct {
	client *remoteClient
}

func NewRemoteImageProcessor(baseURL string, timeout time.Duration, logger *slog.Logger) *RemoteImageProcessor {
	return &RemoteImageProcessor{client: newRemoteClient(baseURL, timeout, logger)}
}

func (ip *RemoteImageProcessor) Process(ctx context.Context, merchantID uuid.UUID, p ImagePayload) (*ImageResult, error) {
	req := struct {
		MerchantID  uuid.UUID `json:"merchant_id"`
		DocumentID  uuid.UUID `json:"document_id"`
		StorageKey  string    `json:"storage_key"`
		ContentType string    `json:"content_type"`
	}{merchantID, p.DocumentID, p.StorageKey, p.ContentType}

	var result ImageResult
	if err := ip.client.post(ctx, "/v1/normalize", req, &result); err != nil {
		return nil, err
	}
	if result.StorageKey == "" {
		// nothing to normalize; extraction reads the original
		result.StorageKey = p.StorageKey
	}
	return &result, nil
}
