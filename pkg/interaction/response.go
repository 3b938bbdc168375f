// Copyright (C) 2026 Interlock Project
//
// This file is part of interactions-go.
//
// interactions-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// interactions-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with interactions-go.  If not, see <https://www.gnu.org/licenses/>.

package interaction

import "encoding/json"

// ResponseType identifies the kind of response returned to the platform
type ResponseType int

const (
	// ResponsePong acknowledges a Ping interaction
	ResponsePong ResponseType = 1

	// ResponseChannelMessage responds with a message in the channel
	ResponseChannelMessage ResponseType = 4

	// ResponseDeferredChannelMessage acknowledges now and edits a
	// message in later
	ResponseDeferredChannelMessage ResponseType = 5

	// ResponseDeferredUpdateMessage acknowledges a component
	// interaction and edits the original message later
	ResponseDeferredUpdateMessage ResponseType = 6

	// ResponseUpdateMessage edits the message a component is attached to
	ResponseUpdateMessage ResponseType = 7

	// ResponseAutocompleteResult returns autocomplete suggestions
	ResponseAutocompleteResult ResponseType = 8

	// ResponseModal opens a modal form
	ResponseModal ResponseType = 9
)

// Response is the payload an application returns in reply to an
// interaction. It is serialized as-is into the HTTP response body.
type Response struct {
	// Type identifies the kind of response
	Type ResponseType `json:"type"`

	// Data is the optional response content
	Data *ResponseData `json:"data,omitempty"`
}

// ResponseData is the content of a Response.
//
// Richer payloads (embeds, components, autocomplete choices) are carried
// opaquely as raw JSON so applications can shape them freely.
type ResponseData struct {
	// Content is the plain-text message content
	Content string `json:"content,omitempty"`

	// TTS marks the message as text-to-speech
	TTS bool `json:"tts,omitempty"`

	// Flags are platform message flags (e.g. ephemeral)
	Flags int `json:"flags,omitempty"`

	// Embeds is an opaque list of message embeds
	Embeds json.RawMessage `json:"embeds,omitempty"`

	// Components is an opaque list of message components
	Components json.RawMessage `json:"components,omitempty"`

	// Choices is an opaque list of autocomplete choices
	Choices json.RawMessage `json:"choices,omitempty"`
}

// NewPong creates the response that acknowledges a Ping interaction
func NewPong() *Response {
	return &Response{Type: ResponsePong}
}

// NewMessageResponse creates a channel message response with the given
// plain-text content
func NewMessageResponse(content string) *Response {
	return &Response{
		Type: ResponseChannelMessage,
		Data: &ResponseData{Content: content},
	}
}
