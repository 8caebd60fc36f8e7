package wire

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape is returned when a document parses as JSON but does not
// have the structure the client expects.
var ErrUnexpectedShape = errors.New("unexpected JSON shape")

// Envelope is the wrapper every backend response uses.
type Envelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Data     Value  `json:"data"`
	Metadata Value  `json:"metadata"`
}

// ErrorBody is the backend's structured failure.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    LoginData `json:"data"`
}

// LoginData carries the issued bearer token.
type LoginData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the JSON body of a registration call.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// DecodeEnvelope parses a success envelope. The body must be a JSON object.
func DecodeEnvelope(body []byte) (Envelope, error) {
	var raw Value
	if err := json.Unmarshal(body, &raw); err != nil {
		return Envelope{}, err
	}
	if raw.Kind() != KindObject {
		return Envelope{}, fmt.Errorf("envelope is %s: %w", raw.Kind(), ErrUnexpectedShape)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("envelope: %w", err)
	}
	return env, nil
}

// DecodeError extracts the message of a structured failure. It reports false
// when the body is not an object with a string "message" member.
func DecodeError(body []byte) (ErrorBody, bool) {
	var raw Value
	if err := json.Unmarshal(body, &raw); err != nil {
		return ErrorBody{}, false
	}
	msg, ok := raw.Field("message")
	if !ok {
		return ErrorBody{}, false
	}
	text, ok := msg.AsString()
	if !ok {
		return ErrorBody{}, false
	}

	out := ErrorBody{Message: text}
	if s, ok := raw.Field("success"); ok {
		out.Success, _ = s.AsBool()
	}
	return out, true
}

// DecodeLogin parses a login reply and checks that it carries a token.
func DecodeLogin(body []byte) (LoginData, error) {
	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginData{}, err
	}
	if resp.Data.AccessToken == "" {
		return LoginData{}, fmt.Errorf("login reply without access_token: %w", ErrUnexpectedShape)
	}
	return resp.Data, nil
}
