package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-vault-core/internal/config"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/internal/utils"
	"github.com/MKhiriev/go-vault-core/models"
	"github.com/go-resty/resty/v2"
)

type httpDocumentStore struct {
	client   *utils.HTTPClient
	identity IdentityProvider

	logger *logger.Logger
}

// NewHTTPDocumentStore constructs an HTTP/REST implementation of
// [DocumentStore]. Authenticated requests reuse the bearer token held by
// identity, so the store never sees credentials of its own.
//
// Returns an error if adapterCfg.DocStoreAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPDocumentStore(adapterCfg config.ClientAdapter, identity IdentityProvider, logger *logger.Logger) (DocumentStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.DocStoreAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid document store address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpDocumentStore{client: client, identity: identity, logger: logger}, nil
}

// GetEncryptedItems implements [DocumentStore]. It GETs
// GET /api/vault/{userID}/items and decodes the response into a slice of
// [models.EncryptedItem]. Requires a valid bearer token. Returns an error if
// the request, response mapping, or JSON decoding fails.
func (h *httpDocumentStore) GetEncryptedItems(ctx context.Context, userID string) ([]models.EncryptedItem, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		Get("/api/vault/{userID}/items")
	if err != nil {
		return nil, fmt.Errorf("get encrypted items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.EncryptedItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode encrypted items response: %w", err)
	}

	return items, nil
}

// PutEncryptedItem implements [DocumentStore]. It PUTs the encrypted item to
// PUT /api/vault/{userID}/items/{itemID}, creating or replacing it. Requires
// a valid bearer token.
func (h *httpDocumentStore) PutEncryptedItem(ctx context.Context, userID string, item models.EncryptedItem) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "itemID": item.ID}).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put("/api/vault/{userID}/items/{itemID}")
	if err != nil {
		return fmt.Errorf("put encrypted item request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteEncryptedItem implements [DocumentStore]. It sends
// DELETE /api/vault/{userID}/items/{itemID}. Returns [ErrNotFound] (wrapped)
// on HTTP 404. Requires a valid bearer token.
func (h *httpDocumentStore) DeleteEncryptedItem(ctx context.Context, userID, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "itemID": id}).
		Delete("/api/vault/{userID}/items/{itemID}")
	if err != nil {
		return fmt.Errorf("delete encrypted item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDocumentStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.identity.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
