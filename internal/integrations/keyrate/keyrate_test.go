package keyrate

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/config"
)

const sampleResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <KeyRateResponse xmlns="http://web.cbr.ru/">
      <KeyRateResult>
        <diffgr:diffgram xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
          <KeyRate xmlns="">
            <KR><DT>2025-07-11T00:00:00+03:00</DT><Rate>20.00</Rate></KR>
            <KR><DT>2025-07-10T00:00:00+03:00</DT><Rate>21.00</Rate></KR>
          </KeyRate>
        </diffgr:diffgram>
      </KeyRateResult>
    </KeyRateResponse>
  </soap:Body>
</soap:Envelope>`

func newTestClient(url string) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(config.KeyRate{URL: url, Margin: 5, Timeout: time.Second}, logger)
}

func TestGetKeyRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "http://web.cbr.ru/KeyRate", r.Header.Get("SOAPAction"))
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "<fromDate>")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	rate, err := newTestClient(srv.URL).GetKeyRate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 25.0, rate.Value, 1e-9)
	assert.InDelta(t, 5.0, rate.Margin, 1e-9)
	assert.Equal(t, "2025-07-11T00:00:00+03:00", rate.Date)
	assert.False(t, rate.UpdatedAt.IsZero())
}

func TestGetKeyRateBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetKeyRate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestParseXMLResponseErrors(t *testing.T) {
	_, _, err := parseXMLResponse([]byte("<not-closed"))
	assert.Error(t, err)

	_, _, err = parseXMLResponse([]byte(`<root><diffgram><KeyRate></KeyRate></diffgram></root>`))
	assert.ErrorContains(t, err, "no key rate data")

	_, _, err = parseXMLResponse([]byte(`<root><diffgram><KeyRate><KR><Rate>abc</Rate></KR></KeyRate></diffgram></root>`))
	assert.ErrorContains(t, err, "failed to parse rate")
}

func TestBuildSOAPRequest(t *testing.T) {
	c := newTestClient("http://unused")
	req := c.buildSOAPRequest(time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, req, "<fromDate>2025-06-13</fromDate>")
	assert.Contains(t, req, "<ToDate>2025-07-13</ToDate>")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(req))
	call := doc.FindElement("//Envelope/Body/KeyRate")
	require.NotNil(t, call)
	assert.Equal(t, "http://web.cbr.ru/", call.SelectAttrValue("xmlns", ""))
}
