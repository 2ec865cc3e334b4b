package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayoisaiah/pointage/internal/models"
)

// DeviceClient reads punches from a device gateway over HTTP.
type DeviceClient struct {
	http    *http.Client
	baseURL string
}

type punchesResponse struct {
	Punches []models.Punch `json:"punches"`
}

var _ DeviceSource = (*DeviceClient)(nil)

// NewDeviceClient returns a client for the gateway at baseURL. A nil client
// uses http.DefaultClient. Requests are cancelled with their context and
// are otherwise bounded only by the timeout of client, if any.
func NewDeviceClient(baseURL string, client *http.Client) (*DeviceClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errNoDeviceURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid device url: %w", err)
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &DeviceClient{
		baseURL: baseURL,
		http:    client,
	}, nil
}

// GetDevicePunches fetches the punches of q.LocationID on q.Date between
// q.StartTime and q.EndTime.
func (d *DeviceClient) GetDevicePunches(
	ctx context.Context,
	q models.PunchQuery,
) ([]models.Punch, error) {
	params := url.Values{}
	params.Set("location", q.LocationID)
	params.Set("date", q.Date.Format(time.DateOnly))
	params.Set("start", q.StartTime.Format(time.TimeOnly))
	params.Set("end", q.EndTime.Format(time.TimeOnly))

	endpoint := d.baseURL + "/punches?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errDeviceStatus.Fmt(resp.Status)
	}

	var body punchesResponse

	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("decoding punches: %w", err)
	}

	return body.Punches, nil
}
