// Package client implements the letters.Client interface against the
// Agentic Letters HTTP API.
package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/agentic-letters/letters-cli/internal/http"
	"github.com/agentic-letters/letters-cli/pkg/letters"
)

// Client talks to the letter API over an authenticated HTTP client.
type Client struct {
	httpClient *http.Client
}

// New creates an API client for the given endpoint and key.
func New(baseURL, apiKey string, opts ...http.Option) *Client {
	return &Client{
		httpClient: http.NewClient(baseURL, apiKey, opts...),
	}
}

// SendLetter validates the document locally, then submits it for printing
// and dispatch. The file is read and encoded before any network I/O so a
// bad path never costs a request.
func (c *Client) SendLetter(ctx context.Context, request *letters.LetterRequest) (letters.Result, error) {
	document, err := readDocument(request.PDFPath)
	if err != nil {
		return nil, err
	}

	letterType := request.Type
	if letterType == "" {
		letterType = letters.DefaultLetterType
	}

	country := request.Country
	if country == "" {
		country = letters.DefaultCountry
	}

	payload := letters.SendLetterPayload{
		PDF: base64.StdEncoding.EncodeToString(document),
		Recipient: letters.Recipient{
			Name:    request.Name,
			Street:  request.Street,
			Zip:     request.Zip,
			City:    request.City,
			Country: country,
		},
		Type:  letterType,
		Label: request.Label,
	}

	resp, err := c.httpClient.Post(ctx, "/letters", payload)
	if err != nil {
		return nil, err
	}

	return decodeResult(resp)
}

// GetLetter fetches the current status of a previously submitted letter.
func (c *Client) GetLetter(ctx context.Context, letterID string) (letters.Result, error) {
	resp, err := c.httpClient.Get(ctx, "/letters/"+letterID, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult(resp)
}

// ListLetters fetches every letter submitted with the current key.
func (c *Client) ListLetters(ctx context.Context) (letters.Result, error) {
	resp, err := c.httpClient.Get(ctx, "/letters", nil)
	if err != nil {
		return nil, err
	}

	return decodeResult(resp)
}

// GetCredits fetches the remaining credit balance.
func (c *Client) GetCredits(ctx context.Context) (letters.Result, error) {
	resp, err := c.httpClient.Get(ctx, "/credits", nil)
	if err != nil {
		return nil, err
	}

	return decodeResult(resp)
}

// readDocument checks the path points at a readable regular file and
// returns its contents. Each failure mode gets its own message.
func readDocument(path string) ([]byte, error) {
	info, err := os.Stat(path)

	switch {
	case os.IsNotExist(err):
		return nil, letters.LocalError("File not found: "+path, "")
	case os.IsPermission(err):
		return nil, letters.LocalError("Permission denied: "+path, "")
	case err != nil:
		return nil, letters.LocalError("Cannot read file: "+path, err.Error())
	}

	if !info.Mode().IsRegular() {
		return nil, letters.LocalError("Not a file: "+path, "")
	}

	data, err := os.ReadFile(path)

	switch {
	case os.IsPermission(err):
		return nil, letters.LocalError("Permission denied: "+path, "")
	case err != nil:
		return nil, letters.LocalError("Cannot read file: "+path, err.Error())
	}

	return data, nil
}

// decodeResult parses a successful response body. The API contract is
// JSON, so a 2xx with an unparseable body is a server fault.
func decodeResult(resp *http.Response) (letters.Result, error) {
	var result letters.Result

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &letters.Error{
			Origin:     letters.OriginServer,
			Message:    fmt.Sprintf("HTTP %d with non-JSON response", resp.StatusCode),
			HTTPStatus: resp.StatusCode,
			Detail:     err.Error(),
		}
	}

	return result, nil
}
