// Package keyrate fetches the latest central bank key rate over the DailyInfo
// SOAP service and reports it with a configured margin added.
package keyrate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/config"
)

const (
	soapNamespace      = "http://www.w3.org/2003/05/soap-envelope"
	dailyInfoNamespace = "http://web.cbr.ru/"

	// lookbackDays is the window requested from the DailyInfo service
	lookbackDays = 30
)

// Rate is a key rate observation with the configured margin applied
type Rate struct {
	Value     float64   `json:"key_rate"`
	Margin    float64   `json:"margin"`
	Date      string    `json:"date"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Client handles the SOAP integration with the central bank
type Client struct {
	url    string
	margin float64
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new key rate client
func NewClient(cfg config.KeyRate, log *logrus.Logger) *Client {
	return &Client{
		url:    cfg.URL,
		margin: cfg.Margin,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// buildSOAPRequest renders the KeyRate envelope for the lookback window
// ending at now.
func (c *Client) buildSOAPRequest(now time.Time) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	envelope := doc.CreateElement("soap12:Envelope")
	envelope.CreateAttr("xmlns:soap12", soapNamespace)
	call := envelope.CreateElement("soap12:Body").CreateElement("KeyRate")
	call.CreateAttr("xmlns", dailyInfoNamespace)
	call.CreateElement("fromDate").SetText(now.AddDate(0, 0, -lookbackDays).Format(time.DateOnly))
	call.CreateElement("ToDate").SetText(now.Format(time.DateOnly))

	out, err := doc.WriteToString()
	if err != nil {
		// Writing to a string buffer does not fail.
		c.log.WithError(err).Error("Failed to render key rate request")
	}
	return out
}

// post sends the envelope and returns the response body
func (c *Client) post(ctx context.Context, envelope string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("keyrate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", dailyInfoNamespace+"KeyRate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keyrate: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("keyrate: unexpected status code: %d", resp.StatusCode)
	case err != nil:
		return nil, fmt.Errorf("keyrate: read response: %w", err)
	}

	c.log.WithField("bytes", len(body)).Debug("Key rate response received")
	return body, nil
}

// parseXMLResponse extracts the latest rate and its date
func parseXMLResponse(rawBody []byte) (float64, string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, "", fmt.Errorf("failed to parse XML: %w", err)
	}

	krElements := doc.FindElements("//diffgram/KeyRate/KR")
	if len(krElements) == 0 {
		return 0, "", fmt.Errorf("no key rate data found in XML")
	}

	// The service lists the newest observation first
	latestKR := krElements[0]
	rateElement := latestKR.FindElement("./Rate")
	if rateElement == nil {
		return 0, "", fmt.Errorf("rate element not found in XML")
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(rateElement.Text()), 64)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse rate: %w", err)
	}

	var date string
	if dt := latestKR.FindElement("./DT"); dt != nil {
		date = strings.TrimSpace(dt.Text())
	}
	return rate, date, nil
}

// GetKeyRate retrieves the current key rate and adds the configured margin
func (c *Client) GetKeyRate(ctx context.Context) (Rate, error) {
	now := time.Now()
	body, err := c.post(ctx, c.buildSOAPRequest(now))
	if err != nil {
		return Rate{}, err
	}

	value, date, err := parseXMLResponse(body)
	if err != nil {
		return Rate{}, err
	}

	rate := Rate{Value: value + c.margin, Margin: c.margin, Date: date, UpdatedAt: now}
	c.log.Infof("Retrieved key rate: %.2f%% (including %.2f%% margin)", rate.Value, c.margin)
	return rate, nil
}
