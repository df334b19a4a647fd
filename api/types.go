// types.go - API-Typen des Tokenizer-Servers
// Enthaelt: StatusError, EncodeRequest/Response, DecodeRequest/Response, Merge, ShowResponse
package api

import (
	"fmt"
)

// StatusError is an error with an HTTP status code and message.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		// this should not happen
		return "something went wrong, please see the bpe server logs for details"
	}
}

// EncodeRequest is the request passed to [Client.Encode].
type EncodeRequest struct {
	// Text is the text to tokenize.
	Text string `json:"text"`
}

// EncodeResponse is the response from [Client.Encode].
type EncodeResponse struct {
	IDs []int `json:"ids"`
}

// DecodeRequest is the request passed to [Client.Decode].
type DecodeRequest struct {
	IDs []int `json:"ids"`
}

// DecodeResponse is the response from [Client.Decode]. Invalid UTF-8 in
// the decoded bytes is replaced with U+FFFD.
type DecodeResponse struct {
	Text string `json:"text"`
}

// Merge is one learned merge rule: the pair (Left, Right) became ID.
type Merge struct {
	Left  int `json:"left"`
	Right int `json:"right"`
	ID    int `json:"id"`
}

// ShowResponse describes the tokenizer loaded by the server.
type ShowResponse struct {
	VocabSize int     `json:"vocab_size"`
	Pattern   string  `json:"pattern"`
	Merges    []Merge `json:"merges"`
}
