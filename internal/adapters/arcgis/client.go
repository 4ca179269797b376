// Package arcgis fetches the official Appalachian Trail centerline from the
// public NPS ArcGIS feature service and converts it into trail samples.
// It is an external collaborator feeding the sample store; the simulator
// core never depends on it.
package arcgis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trail-itinerary-service/internal/domain"
)

// Public AT centerline feature service (layer 0).
const DefaultServiceURL = "https://services1.arcgis.com/fBc8EJBxQRMcHlei/arcgis/rest/services/AT_Centerline/FeatureServer"

// Features fetched per page. The service caps result sets, so the client
// pages with resultOffset until exceededTransferLimit clears.
const pageSize = 1000

type Client struct {
	session *http.Client
	baseURL string
}

func NewClient(serviceURL string) *Client {
	if strings.TrimSpace(serviceURL) == "" {
		serviceURL = DefaultServiceURL
	}
	return &Client{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(serviceURL, "/"),
	}
}

type queryResponse struct {
	Features []struct {
		Geometry struct {
			Paths [][][]float64 `json:"paths"`
		} `json:"geometry"`
	} `json:"features"`
	ExceededTransferLimit bool `json:"exceededTransferLimit"`
}

// FetchCenterline downloads the trail centerline and returns samples with
// cumulative distance accumulated great-circle leg by leg. Elevation and
// state are not part of the centerline layer and are left zero-valued for
// downstream enrichment.
func (c *Client) FetchCenterline(ctx context.Context) ([]domain.GeoPoint, error) {
	samples := []domain.GeoPoint{}
	cumulativeMiles := 0.0
	var prev *[2]float64

	for offset := 0; ; offset += pageSize {
		page, err := c.queryPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch centerline: page at offset %d: %w", offset, err)
		}

		for _, f := range page.Features {
			for _, path := range f.Geometry.Paths {
				for _, vertex := range path {
					if len(vertex) < 2 {
						continue
					}
					lon, lat := vertex[0], vertex[1]
					if prev != nil {
						cumulativeMiles += haversineMiles(prev[1], prev[0], lat, lon)
					}
					samples = append(samples, domain.GeoPoint{
						DistanceMiles: cumulativeMiles,
						LatitudeDeg:   lat,
					})
					prev = &[2]float64{lon, lat}
				}
			}
		}

		if !page.ExceededTransferLimit {
			break
		}
	}

	if len(samples) < 2 {
		return nil, errors.New("fetch centerline: service returned no usable geometry")
	}

	return samples, nil
}

func (c *Client) queryPage(ctx context.Context, offset int) (*queryResponse, error) {
	params := url.Values{}
	params.Set("where", "1=1")
	params.Set("outFields", "*")
	params.Set("f", "json")
	params.Set("returnGeometry", "true")
	params.Set("resultOffset", strconv.Itoa(offset))
	params.Set("resultRecordCount", strconv.Itoa(pageSize))

	queryURL := c.baseURL + "/0/query?" + params.Encode()

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var page queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &page, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429/5xx responses)
// using exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

const earthRadiusMiles = 3958.8

func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}
