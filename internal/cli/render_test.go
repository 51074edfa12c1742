package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/upctl/pkg/upapi"
)

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, accountColumns(), nil)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestRenderTable_AlignmentAndSummary(t *testing.T) {
	rows := []upapi.Resource{
		{ID: "a1", Attributes: json.RawMessage(`{"displayName": "Spending", "accountType": "TRANSACTIONAL", "balance": {"value": "12.34", "currencyCode": "AUD"}}`)},
		{ID: "a2", Attributes: json.RawMessage(`{"displayName": "Rainy Day", "accountType": "SAVER", "balance": {"value": "1000.00", "currencyCode": "AUD"}}`)},
	}

	var buf bytes.Buffer
	renderTable(&buf, accountColumns(), rows)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	header := lines[0]
	assert.Contains(t, header, "ID")
	assert.Contains(t, header, "Name")
	assert.Contains(t, header, "Type")
	assert.Contains(t, header, "Balance")
	assert.Contains(t, header, "Currency")

	assert.Regexp(t, `^-+(  -+)+$`, lines[1])

	assert.Contains(t, lines[2], "a1")
	assert.Contains(t, lines[2], "Spending")
	assert.Contains(t, lines[2], "TRANSACTIONAL")
	assert.Contains(t, lines[2], "12.34")
	assert.Contains(t, lines[2], "AUD")

	// Column width follows the widest cell: "TRANSACTIONAL" sets the Type
	// column, so the SAVER row is padded to match.
	assert.Equal(t, len(lines[2]), len(lines[3]))

	assert.Equal(t, "", lines[4])
	assert.Equal(t, "2 results", lines[5])
}

func TestRenderTable_SingularSummary(t *testing.T) {
	rows := []upapi.Resource{{ID: "only"}}

	var buf bytes.Buffer
	renderTable(&buf, tagColumns(), rows)
	assert.True(t, strings.HasSuffix(buf.String(), "1 result\n"))
}

func TestRenderTable_TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 60)
	rows := []upapi.Resource{{ID: long}}

	var buf bytes.Buffer
	renderTable(&buf, tagColumns(), rows)

	assert.Contains(t, buf.String(), strings.Repeat("x", 40))
	assert.NotContains(t, buf.String(), strings.Repeat("x", 41))
}

func TestRenderJSON_TwoSpaceIndent(t *testing.T) {
	rows := []upapi.Resource{
		{ID: "abc", Type: "accounts", Attributes: json.RawMessage(`{"displayName": "Spending"}`)},
	}

	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, rows))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {\n"))
	assert.Contains(t, out, `"id": "abc"`)
	assert.Contains(t, out, `"displayName": "Spending"`)
}

func TestRenderJSON_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, []upapi.Resource{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderOne_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderOne(&buf, false, accountColumns(), nil))
	assert.Equal(t, "No results found.\n", buf.String())
}
