// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package agent sends a design request to an AI agent and returns its raw
// reply. Two transports are provided: ProviderAgent drives the LLM
// providers in package ai directly, RemoteAgent talks to a hosted agent
// over HTTP. Neither interprets the reply; that is the concept parser's job.
package agent

import "context"

// StatusSuccess is the payload status reported for a usable reply.
const StatusSuccess = "success"

// Payload is the agent's reply. Result is opaque: usually a string holding
// JSON (possibly wrapped in prose or fences), sometimes a decoded object.
type Payload struct {
	Status  string `json:"status"`
	Result  any    `json:"result"`
	Message string `json:"message,omitempty"`
}

// Response is the outcome of one agent call. An unsuccessful Response is a
// failure the agent reported; a transport fault is returned as an error
// from Call instead.
type Response struct {
	Success  bool
	Response *Payload
	Error    string
}

// Agent forwards a message to an AI agent identified by agentID.
type Agent interface {
	Call(ctx context.Context, message, agentID string) (*Response, error)
}

// Failure builds an unsuccessful response carrying msg.
func Failure(msg string) *Response {
	return &Response{Success: false, Error: msg}
}

// Success builds a successful response carrying result.
func Success(result any) *Response {
	return &Response{Success: true, Response: &Payload{Status: StatusSuccess, Result: result}}
}
