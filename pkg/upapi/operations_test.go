package upapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeTransaction_RequestShape(t *testing.T) {
	client, calls := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/transactions/txn-1/relationships/category", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data": {"type": "categories", "id": "restaurants"}}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.CategorizeTransaction(context.Background(), "txn-1", "restaurants")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAddTransactionTags_RequestShape(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions/txn-1/relationships/tags", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data": [{"type": "tags", "id": "holiday"}, {"type": "tags", "id": "food"}]}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.AddTransactionTags(context.Background(), "txn-1", []string{"holiday", "food"})
	require.NoError(t, err)
}

func TestRemoveTransactionTags_RequestShape(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/transactions/txn-1/relationships/tags", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data": [{"type": "tags", "id": "holiday"}]}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.RemoveTransactionTags(context.Background(), "txn-1", []string{"holiday"})
	require.NoError(t, err)
}

func TestCreateWebhook_RequestShapeAndSecretKey(t *testing.T) {
	client, calls := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhooks", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data": {"attributes": {"url": "https://example.com/hook", "description": "d"}}}`, string(body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": "wh-1", "type": "webhooks", "attributes": {"url": "https://example.com/hook", "description": "d", "secretKey": "s3cret"}}}`))
	})

	hook, err := client.CreateWebhook(context.Background(), "https://example.com/hook", "d")
	require.NoError(t, err)
	require.NotNil(t, hook)
	assert.Equal(t, "wh-1", hook.ID)
	assert.Equal(t, "s3cret", hook.Webhook().SecretKey)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateWebhook_OmitsEmptyDescription(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]map[string]map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		_, ok := payload["data"]["attributes"]["description"]
		assert.False(t, ok)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": "wh-1", "type": "webhooks"}}`))
	})

	_, err := client.CreateWebhook(context.Background(), "https://example.com/hook", "")
	require.NoError(t, err)
}

func TestDeleteWebhook(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/webhooks/wh-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ok, err := client.DeleteWebhook(context.Background(), "wh-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteWebhook_NotFound(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ok, err := client.DeleteWebhook(context.Background(), "wh-gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, ok)
}

func TestPingWebhook(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhooks/wh-1/ping", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": "evt-1", "type": "webhook-events"}}`))
	})

	event, err := client.PingWebhook(context.Background(), "wh-1")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "evt-1", event.ID)
}

func TestListWebhookLogs(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhooks/wh-1/logs", r.URL.Path)
		w.Write([]byte(`{"data": [{"id": "log-1", "type": "webhook-delivery-logs", "attributes": {"deliveryStatus": "DELIVERED", "createdAt": "2024-01-01T00:00:00Z"}}]}`))
	})

	logs, err := client.ListWebhookLogs(context.Background(), "wh-1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "DELIVERED", logs[0].WebhookLog().DeliveryStatus)
}

func TestPathEscaping(t *testing.T) {
	client, _ := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/a%2Fb", r.URL.EscapedPath())
		w.Write([]byte(`{"data": null}`))
	})

	_, err := client.GetAccount(context.Background(), "a/b")
	require.NoError(t, err)
}
