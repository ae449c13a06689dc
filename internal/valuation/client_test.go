package valuation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"benefits-engine/internal/model"
)

func intp(v int) *int { return &v }

func f64p(v float64) *float64 { return &v }

func testPerson() *model.PersonData {
	return &model.PersonData{
		Age:          intp(34),
		Children:     intp(2),
		ChildrenAges: []int{3, 7},
		WeeklyIncome: f64p(150),
	}
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 2, req["children"])
		assert.Len(t, req["schemes"], 2)

		json.NewEncoder(w).Encode(map[string]any{
			"annual": map[string]float64{"universal_credit": 5417.4},
			"breakdown": map[string]float64{
				"standard_allowance": 4801.68,
				"childcare_element":  615.72,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, zap.NewNop())
	got := c.Fetch(context.Background(), testPerson(), []string{"universal_credit", "child_benefit"})
	require.NotNil(t, got)

	f, ok := got.FigureFor("universal_credit")
	require.True(t, ok)
	assert.InDelta(t, 5417.4, f, 0.001)
	require.NotNil(t, got.Breakdown)
	assert.InDelta(t, 615.72, got.Breakdown.ChildcareElement, 0.001)

	_, ok = got.FigureFor("child_benefit")
	assert.False(t, ok, "scheme the service stayed silent on")
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, zap.NewNop())
	assert.Nil(t, c.Fetch(context.Background(), testPerson(), []string{"universal_credit"}))
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, zap.NewNop())
	assert.Nil(t, c.Fetch(context.Background(), testPerson(), []string{"universal_credit"}))
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, 50*time.Millisecond, zap.NewNop())
	start := time.Now()
	got := c.Fetch(context.Background(), testPerson(), []string{"universal_credit"})
	assert.Nil(t, got)
	assert.Less(t, time.Since(start), time.Second, "must give up at the client timeout")
}

func TestFetchUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", 100*time.Millisecond, zap.NewNop())
	assert.Nil(t, c.Fetch(context.Background(), testPerson(), []string{"universal_credit"}))
}

func TestFetchDisabled(t *testing.T) {
	c := New("", time.Second, zap.NewNop())
	assert.Nil(t, c.Fetch(context.Background(), testPerson(), []string{"universal_credit"}))

	var nilClient *Client
	assert.Nil(t, nilClient.Fetch(context.Background(), testPerson(), nil))
}
