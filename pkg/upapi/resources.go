package upapi

import "encoding/json"

// Resource is a JSON:API resource object as returned by the Up API. Identity
// is (Type, ID); Attributes keeps the raw attribute document so JSON output
// can pass it through unmodified, while the typed accessors below decode the
// fields each resource type is expected to carry.
type Resource struct {
	ID            string                     `json:"id"`
	Type          string                     `json:"type"`
	Attributes    json.RawMessage            `json:"attributes,omitempty"`
	Relationships map[string]json.RawMessage `json:"relationships,omitempty"`
}

// Money is the {value, currencyCode} pair the API uses for monetary amounts.
type Money struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currencyCode"`
}

// AccountAttributes are the attribute fields of an account resource.
type AccountAttributes struct {
	DisplayName string `json:"displayName"`
	AccountType string `json:"accountType"`
	Balance     Money  `json:"balance"`
}

// TransactionAttributes are the attribute fields of a transaction resource.
type TransactionAttributes struct {
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	SettledAt   string `json:"settledAt"`
}

// CategoryAttributes are the attribute fields of a category resource.
type CategoryAttributes struct {
	Name string `json:"name"`
}

// WebhookAttributes are the attribute fields of a webhook resource. SecretKey
// is only present on the response to a create call.
type WebhookAttributes struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	SecretKey   string `json:"secretKey"`
}

// WebhookLogAttributes are the attribute fields of a webhook delivery log
// resource.
type WebhookLogAttributes struct {
	DeliveryStatus string `json:"deliveryStatus"`
	CreatedAt      string `json:"createdAt"`
}

const displayFallback = "-"

func fallback(s string) string {
	if s == "" {
		return displayFallback
	}
	return s
}

func decodeAttributes(raw json.RawMessage, into any) {
	if len(raw) == 0 {
		return
	}
	// Malformed attributes render as fallbacks rather than failing the
	// whole listing.
	_ = json.Unmarshal(raw, into)
}

// Account decodes the resource's attributes as an account, substituting "-"
// for absent display fields.
func (r Resource) Account() AccountAttributes {
	var a AccountAttributes
	decodeAttributes(r.Attributes, &a)
	a.DisplayName = fallback(a.DisplayName)
	a.AccountType = fallback(a.AccountType)
	a.Balance.Value = fallback(a.Balance.Value)
	a.Balance.CurrencyCode = fallback(a.Balance.CurrencyCode)
	return a
}

// Transaction decodes the resource's attributes as a transaction.
func (r Resource) Transaction() TransactionAttributes {
	var t TransactionAttributes
	decodeAttributes(r.Attributes, &t)
	t.Description = fallback(t.Description)
	t.Amount.Value = fallback(t.Amount.Value)
	t.Amount.CurrencyCode = fallback(t.Amount.CurrencyCode)
	t.Status = fallback(t.Status)
	t.CreatedAt = fallback(t.CreatedAt)
	t.SettledAt = fallback(t.SettledAt)
	return t
}

// Category decodes the resource's attributes as a category.
func (r Resource) Category() CategoryAttributes {
	var c CategoryAttributes
	decodeAttributes(r.Attributes, &c)
	c.Name = fallback(c.Name)
	return c
}

// Webhook decodes the resource's attributes as a webhook.
func (r Resource) Webhook() WebhookAttributes {
	var w WebhookAttributes
	decodeAttributes(r.Attributes, &w)
	w.URL = fallback(w.URL)
	w.Description = fallback(w.Description)
	return w
}

// WebhookLog decodes the resource's attributes as a webhook delivery log.
func (r Resource) WebhookLog() WebhookLogAttributes {
	var l WebhookLogAttributes
	decodeAttributes(r.Attributes, &l)
	l.DeliveryStatus = fallback(l.DeliveryStatus)
	l.CreatedAt = fallback(l.CreatedAt)
	return l
}
