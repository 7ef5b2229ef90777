package ratesprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestClient_FetchRateTable_Success(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK,
		`{"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.92,"ngn":1500.5}}`)
	fixed := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	c := NewClient(srv.URL+"/v6/", time.Second, WithClock(func() time.Time { return fixed }))

	table, err := c.FetchRateTable(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, domain.CurrencyCode("USD"), table.Base)
	assert.Equal(t, fixed, table.FetchedAt)
	eur, ok := table.Lookup("EUR")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.92").Equal(eur))
	_, ok = table.Lookup("NGN")
	assert.True(t, ok, "codes are normalized")
}

func TestClient_FetchRateTable_ResultFieldOptional(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"rates":{"GBP":0.79}}`)
	c := NewClient(srv.URL+"/v6", time.Second)

	table, err := c.FetchRateTable(context.Background(), "USD")
	require.NoError(t, err)
	_, ok := table.Lookup("GBP")
	assert.True(t, ok)
}

func TestClient_FetchRateTable_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "error result", status: http.StatusOK, body: `{"result":"error","error-type":"unsupported-code"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "malformed json", status: http.StatusOK, body: `{"result":`},
		{name: "no rates", status: http.StatusOK, body: `{"result":"success","rates":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			c := NewClient(srv.URL+"/v6", time.Second)

			table, err := c.FetchRateTable(context.Background(), "USD")
			assert.Nil(t, table)
			assert.ErrorIs(t, err, ErrProvider)
		})
	}
}

func TestClient_FetchRateTable_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, 20*time.Millisecond)

	_, err := c.FetchRateTable(context.Background(), "USD")
	assert.ErrorIs(t, err, ErrProvider)
}
