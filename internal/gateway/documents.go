package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// RemoteDocument is one record as returned by the document store: the
// server-issued identifier plus the untyped field mapping.  Server
// bookkeeping fields (those prefixed "$") are stripped from Data but
// the creation timestamp is kept reachable via the "$createdAt" key
// so decoders can fall back to it.
type RemoteDocument struct {
	ID   string
	Data map[string]any
}

func docFromPayload(payload map[string]any) RemoteDocument {
	doc := RemoteDocument{Data: make(map[string]any, len(payload))}
	for k, v := range payload {
		switch k {
		case "$id":
			doc.ID, _ = v.(string)
		case "$createdAt":
			doc.Data[k] = v
		default:
			if strings.HasPrefix(k, "$") {
				continue
			}
			doc.Data[k] = v
		}
	}
	return doc
}

// ListDocuments returns every document in the collection, in server
// order.
func (c *Client) ListDocuments(ctx context.Context, databaseID, collectionID string) ([]RemoteDocument, error) {
	var resp struct {
		Total     int              `json:"total"`
		Documents []map[string]any `json:"documents"`
	}
	path := fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(databaseID), url.PathEscape(collectionID))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	docs := make([]RemoteDocument, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, docFromPayload(d))
	}
	return docs, nil
}

// GetDocument fetches a single document by identifier.
func (c *Client) GetDocument(ctx context.Context, databaseID, collectionID, documentID string) (RemoteDocument, error) {
	var payload map[string]any
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s",
		url.PathEscape(databaseID), url.PathEscape(collectionID), url.PathEscape(documentID))
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return RemoteDocument{}, err
	}
	return docFromPayload(payload), nil
}

// CreateDocument stores a new document; the server issues the
// identifier.
func (c *Client) CreateDocument(ctx context.Context, databaseID, collectionID string, data map[string]any) (RemoteDocument, error) {
	body := map[string]any{
		"documentId": "unique()",
		"data":       data,
	}
	var payload map[string]any
	path := fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(databaseID), url.PathEscape(collectionID))
	if err := c.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return RemoteDocument{}, err
	}
	return docFromPayload(payload), nil
}

// UpdateDocument applies a partial update to an existing document.
// Fields absent from data keep their stored values.
func (c *Client) UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]any) (RemoteDocument, error) {
	body := map[string]any{"data": data}
	var payload map[string]any
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s",
		url.PathEscape(databaseID), url.PathEscape(collectionID), url.PathEscape(documentID))
	if err := c.do(ctx, http.MethodPatch, path, body, &payload); err != nil {
		return RemoteDocument{}, err
	}
	return docFromPayload(payload), nil
}

// DeleteDocument removes a document by identifier.
func (c *Client) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s",
		url.PathEscape(databaseID), url.PathEscape(collectionID), url.PathEscape(documentID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
