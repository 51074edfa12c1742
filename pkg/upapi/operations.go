package upapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// relationshipRef is the {type, id} pair used in relationship bodies.
type relationshipRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ListAccounts returns the caller's accounts. pageSize <= 0 uses the API
// default.
func (c *Client) ListAccounts(ctx context.Context, pageSize int) ([]Resource, error) {
	return c.getList(ctx, "/accounts", pageQuery(pageSize))
}

// GetAccount returns a single account by id.
func (c *Client) GetAccount(ctx context.Context, id string) (*Resource, error) {
	return c.getOne(ctx, "/accounts/"+url.PathEscape(id))
}

// ListAccountTransactions returns the transactions of one account.
func (c *Client) ListAccountTransactions(ctx context.Context, accountID string, pageSize int) ([]Resource, error) {
	return c.getList(ctx, "/accounts/"+url.PathEscape(accountID)+"/transactions", pageQuery(pageSize))
}

// ListTransactions returns transactions across all accounts.
func (c *Client) ListTransactions(ctx context.Context, pageSize int) ([]Resource, error) {
	return c.getList(ctx, "/transactions", pageQuery(pageSize))
}

// GetTransaction returns a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Resource, error) {
	return c.getOne(ctx, "/transactions/"+url.PathEscape(id))
}

// CategorizeTransaction re-parents a transaction under the given category.
func (c *Client) CategorizeTransaction(ctx context.Context, transactionID, categoryID string) error {
	body := map[string]any{"data": relationshipRef{Type: "categories", ID: categoryID}}
	path := "/transactions/" + url.PathEscape(transactionID) + "/relationships/category"
	_, err := c.do(ctx, http.MethodPatch, path, nil, body)
	return err
}

// ListCategories returns all known categories.
func (c *Client) ListCategories(ctx context.Context) ([]Resource, error) {
	return c.getList(ctx, "/categories", nil)
}

// GetCategory returns a single category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (*Resource, error) {
	return c.getOne(ctx, "/categories/"+url.PathEscape(id))
}

// ListTags returns all tags in use.
func (c *Client) ListTags(ctx context.Context) ([]Resource, error) {
	return c.getList(ctx, "/tags", nil)
}

func tagRefs(tagIDs []string) map[string]any {
	refs := make([]relationshipRef, 0, len(tagIDs))
	for _, id := range tagIDs {
		refs = append(refs, relationshipRef{Type: "tags", ID: id})
	}
	return map[string]any{"data": refs}
}

// AddTransactionTags attaches the given tags to a transaction.
func (c *Client) AddTransactionTags(ctx context.Context, transactionID string, tagIDs []string) error {
	path := "/transactions/" + url.PathEscape(transactionID) + "/relationships/tags"
	_, err := c.do(ctx, http.MethodPost, path, nil, tagRefs(tagIDs))
	return err
}

// RemoveTransactionTags detaches the given tags from a transaction.
func (c *Client) RemoveTransactionTags(ctx context.Context, transactionID string, tagIDs []string) error {
	path := "/transactions/" + url.PathEscape(transactionID) + "/relationships/tags"
	_, err := c.do(ctx, http.MethodDelete, path, nil, tagRefs(tagIDs))
	return err
}

// ListWebhooks returns the configured webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]Resource, error) {
	return c.getList(ctx, "/webhooks", nil)
}

// GetWebhook returns a single webhook by id.
func (c *Client) GetWebhook(ctx context.Context, id string) (*Resource, error) {
	return c.getOne(ctx, "/webhooks/"+url.PathEscape(id))
}

// CreateWebhook registers a new webhook. The returned resource includes the
// secretKey attribute, which the API only reveals on creation.
func (c *Client) CreateWebhook(ctx context.Context, webhookURL, description string) (*Resource, error) {
	attrs := map[string]string{"url": webhookURL}
	if description != "" {
		attrs["description"] = description
	}
	body := map[string]any{"data": map[string]any{"attributes": attrs}}
	raw, err := c.do(ctx, http.MethodPost, "/webhooks", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw)
}

// DeleteWebhook removes a webhook. It reports true on success.
func (c *Client) DeleteWebhook(ctx context.Context, id string) (bool, error) {
	_, err := c.do(ctx, http.MethodDelete, "/webhooks/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return false, err
	}
	return true, nil
}

// PingWebhook asks the API to deliver a test event to the webhook.
func (c *Client) PingWebhook(ctx context.Context, id string) (*Resource, error) {
	raw, err := c.do(ctx, http.MethodPost, "/webhooks/"+url.PathEscape(id)+"/ping", nil, nil)
	if err != nil {
		return nil, err
	}
	res, err := decodeOne(raw)
	if err != nil {
		return nil, fmt.Errorf("ping succeeded but response was malformed: %w", err)
	}
	return res, nil
}

// ListWebhookLogs returns the delivery log entries for a webhook.
func (c *Client) ListWebhookLogs(ctx context.Context, id string) ([]Resource, error) {
	return c.getList(ctx, "/webhooks/"+url.PathEscape(id)+"/logs", nil)
}
