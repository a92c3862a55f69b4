// Package sgs adapts the Banco Central do Brasil SGS time-series API
// (Sistema Gerenciador de Séries Temporais) to the domain SeriesSource port.
package sgs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"RendaFixa/internal/domain/models"
	"RendaFixa/internal/domain/repository"
	xhttp "RendaFixa/pkg/http"
)

// dateLayout is the day/month/year format the SGS API uses for both the query
// window and the observation dates it returns.
const dateLayout = "02/01/2006"

// Client implements repository.SeriesSource over the SGS JSON endpoint.
type Client struct {
	baseURL string
	http    *xhttp.Client
	metrics repository.Metrics
	now     func() time.Time
}

// New creates an SGS client with a bounded per-request timeout. No retries are
// performed; retry policy belongs to the caller.
func New(baseURL string, timeout time.Duration, metrics repository.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		metrics: metrics,
		now:     time.Now,
	}
}

// sgsRow mirrors one upstream observation; both fields arrive as strings.
type sgsRow struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// Fetch retrieves one series over a window ending today and starting
// lookbackDays earlier. Transport errors, empty responses and malformed rows
// all surface as SourceUnavailableError.
func (c *Client) Fetch(ctx context.Context, seriesCode, lookbackDays int) ([]models.SeriesObservation, error) {
	end := c.now()
	start := end.AddDate(0, 0, -lookbackDays)

	var rows []sgsRow
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/dados/serie/bcdata.sgs.%d/dados", c.baseURL, seriesCode),
		QueryParams: map[string][]string{
			"formato":     {"json"},
			"dataInicial": {start.Format(dateLayout)},
			"dataFinal":   {end.Format(dateLayout)},
		},
	}, &rows)
	if err != nil {
		return nil, c.unavailable(seriesCode, err)
	}
	if len(rows) == 0 {
		return nil, c.unavailable(seriesCode, errors.New("empty series"))
	}

	obs := make([]models.SeriesObservation, 0, len(rows))
	for _, r := range rows {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, c.unavailable(seriesCode, fmt.Errorf("malformed date %q: %w", r.Date, err))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
		if err != nil {
			return nil, c.unavailable(seriesCode, fmt.Errorf("malformed value %q: %w", r.Value, err))
		}
		obs = append(obs, models.SeriesObservation{Date: d, Value: v})
	}

	if c.metrics != nil {
		c.metrics.RecordFetch(strconv.Itoa(seriesCode), true)
	}
	return obs, nil
}

func (c *Client) unavailable(seriesCode int, err error) error {
	if c.metrics != nil {
		c.metrics.RecordFetch(strconv.Itoa(seriesCode), false)
	}
	return &models.SourceUnavailableError{Series: seriesCode, Err: err}
}
