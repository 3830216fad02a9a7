package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// AnalysisClient fetches the historical baseline for an
// (eventTypeCode, guestCount) key. The in-process analysis service
// implements it directly; HTTPAnalysisClient covers a split deployment.
type AnalysisClient interface {
	FetchAnalysis(ctx context.Context, eventTypeCode string, guestCount int) (*Baseline, error)
}

// HTTPAnalysisClient talks to a remote analysis endpoint.
type HTTPAnalysisClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAnalysisClient(baseURL string) *HTTPAnalysisClient {
	return &HTTPAnalysisClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPAnalysisClient) FetchAnalysis(
	ctx context.Context,
	eventTypeCode string,
	guestCount int,
) (*Baseline, error) {

	params := url.Values{}
	params.Set("eventTypeCode", eventTypeCode)
	params.Set("guestCount", strconv.Itoa(guestCount))

	endpoint := fmt.Sprintf("%s/pricing/analysis?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("analysis endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var baseline Baseline
	if err := json.NewDecoder(resp.Body).Decode(&baseline); err != nil {
		return nil, err
	}
	return &baseline, nil
}
