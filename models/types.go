// Package models contain request and response types for the cipher API
package models

// EncodeRequest represents the request for encoding a plaintext
type EncodeRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"` // empty uses the configured default key
}

// DecodeRequest represents the request for decoding a ciphertext
type DecodeRequest struct {
	Text    string `json:"text"`
	Key     string `json:"key"`
	Display bool   `json:"display"`
}

// CipherResponse represents the response of an encode or decode
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  string `json:"result"`
	Display string `json:"display,omitempty"`
}

// InvalidSymbol describes the character that made a request fail
type InvalidSymbol struct {
	Symbol    string `json:"symbol"`
	CodePoint string `json:"code_point"`
	Source    string `json:"source"`
	Position  int    `json:"position"`
}

// ErrorResponse represents a rejected request
type ErrorResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Invalid *InvalidSymbol `json:"invalid,omitempty"`
}

// AlphabetResponse lists the symbols the cipher accepts, in order
type AlphabetResponse struct {
	Size    int    `json:"size"`
	Symbols string `json:"symbols"`
}
