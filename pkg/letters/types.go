package letters

import "context"

// Defaults applied when a send request leaves the field empty.
const (
	// DefaultCountry is the recipient country code used when none is given.
	DefaultCountry = "DE"

	// DefaultLetterType is the letter type used when none is given.
	DefaultLetterType = "standard"
)

// LetterRequest describes a single send operation as entered by the caller.
// The document at PDFPath is read, validated, and encoded by the client; the
// request itself never holds the document bytes.
type LetterRequest struct {
	PDFPath string
	Name    string
	Street  string
	Zip     string
	City    string
	Country string // defaults to DefaultCountry
	Type    string // defaults to DefaultLetterType
	Label   string // optional, omitted from the payload when empty
}

// Recipient is the wire form of the letter's destination address.
type Recipient struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// SendLetterPayload is the JSON body posted to /letters.
type SendLetterPayload struct {
	PDF       string    `json:"pdf"`
	Recipient Recipient `json:"recipient"`
	Type      string    `json:"type"`
	Label     string    `json:"label,omitempty"`
}

// Result is an API response returned verbatim. The client does not interpret
// its contents beyond parsing the top-level JSON object.
type Result map[string]any

// Client is the AgenticLetters API surface used by the CLI.
type Client interface {
	SendLetter(ctx context.Context, request *LetterRequest) (Result, error)
	GetLetter(ctx context.Context, letterID string) (Result, error)
	ListLetters(ctx context.Context) (Result, error)
	GetCredits(ctx context.Context) (Result, error)
}
