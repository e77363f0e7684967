// Package letters provides types, interfaces, and error classification for
// working with the AgenticLetters API.
//
// # Overview
//
// The letters package defines the domain types (LetterRequest, Recipient,
// Result) and the Client interface covering the four API operations: sending
// a letter, fetching a letter's status, listing letters, and checking the
// credit balance. A concrete implementation is provided by internal/client,
// which wires the authenticated transport; the CLI in cmd/letters composes
// the pieces.
//
// # Errors
//
// Every failure the tool can produce is represented by a single *Error value
// tagged with one of three origins:
//
//   - OriginLocal: filesystem, configuration, or validation failures detected
//     before any network call.
//   - OriginNetwork: the API could not be reached or the call did not
//     complete within the request timeout.
//   - OriginServer: the API answered with a non-success HTTP status.
//
// Helpers such as IsLocal, IsNetwork, and IsServer make it easy to branch on
// the origin, and Error.Format renders the stable multi-line block an
// automated caller parses from stderr.
package letters
