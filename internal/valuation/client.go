// Package valuation is the client for the optional external valuation
// service. One batched request describes the whole household; the sparse
// response carries precise annual figures by scheme id. Any failure —
// timeout, non-2xx, malformed body — yields nil and the engine falls back
// to heuristic estimates; a failed valuation is never fatal.
package valuation

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"benefits-engine/internal/metrics"
	"benefits-engine/internal/model"
)

const defaultTimeout = 3 * time.Second

// Client calls the valuation service. A Client with an empty URL is
// disabled and always returns nil; callers never need to special-case
// configuration.
type Client struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// New builds a Client. timeout <= 0 uses the default.
func New(url string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}
}

// householdRequest is the structured household description the service
// expects. Results are not cached: the request is personal data and must
// not outlive the resolution call.
type householdRequest struct {
	Age              *int     `json:"age,omitempty"`
	HasPartner       *bool    `json:"has_partner,omitempty"`
	Children         int      `json:"children"`
	ChildrenAges     []int    `json:"children_ages,omitempty"`
	WeeklyIncome     *float64 `json:"weekly_income,omitempty"`
	Capital          *float64 `json:"capital,omitempty"`
	HousingTenure    string   `json:"housing_tenure,omitempty"`
	WeeklyHousing    *float64 `json:"weekly_housing_cost,omitempty"`
	EmploymentStatus string   `json:"employment_status,omitempty"`
	Disabled         *bool    `json:"disabled,omitempty"`
	Carer            *bool    `json:"carer,omitempty"`
	Schemes          []string `json:"schemes"`
}

// Fetch makes the single batched valuation call for a resolution. It
// returns nil on any failure or when the client is disabled.
func (c *Client) Fetch(ctx context.Context, person *model.PersonData, schemeIDs []string) *model.ExternalValuation {
	if c == nil || c.url == "" {
		return nil
	}

	body, err := json.Marshal(householdRequest{
		Age:              person.Age,
		HasPartner:       person.HasPartner,
		Children:         person.ChildCount(),
		ChildrenAges:     person.ChildrenAges,
		WeeklyIncome:     person.WeeklyIncome,
		Capital:          person.Capital,
		HousingTenure:    person.HousingTenure,
		WeeklyHousing:    person.WeeklyHousingCost,
		EmploymentStatus: person.EmploymentStatus,
		Disabled:         person.Disabled,
		Carer:            person.Carer,
		Schemes:          schemeIDs,
	})
	if err != nil {
		metrics.ValuationRequest("encode_error")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		metrics.ValuationRequest("request_error")
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("valuation call failed", zap.Error(err))
		metrics.ValuationRequest("network_error")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.log.Debug("valuation call rejected", zap.Int("status", resp.StatusCode))
		metrics.ValuationRequest("bad_status")
		return nil
	}

	var out model.ExternalValuation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Debug("valuation response malformed", zap.Error(err))
		metrics.ValuationRequest("decode_error")
		return nil
	}
	metrics.ValuationRequest("ok")
	return &out
}
