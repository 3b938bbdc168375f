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

// Type identifies the kind of inbound interaction
type Type int

const (
	// TypePing is the platform's liveness check; it must be answered
	// with a Pong response
	TypePing Type = 1

	// TypeApplicationCommand is a slash command invocation
	TypeApplicationCommand Type = 2

	// TypeMessageComponent is a button press or select menu choice
	TypeMessageComponent Type = 3

	// TypeAutocomplete is an autocomplete request for a command option
	TypeAutocomplete Type = 4

	// TypeModalSubmit is a modal form submission
	TypeModalSubmit Type = 5
)

// String returns a human-readable name for the interaction type
func (t Type) String() string {
	switch t {
	case TypePing:
		return "Ping"
	case TypeApplicationCommand:
		return "ApplicationCommand"
	case TypeMessageComponent:
		return "MessageComponent"
	case TypeAutocomplete:
		return "Autocomplete"
	case TypeModalSubmit:
		return "ModalSubmit"
	default:
		return "Unknown"
	}
}

// Interaction is the structured payload the platform delivers once the
// request signature has been verified.
//
// Command-specific content (Data, Member, User) is carried opaquely as raw
// JSON; interpreting it is the application's concern, not this library's.
type Interaction struct {
	// ID is the platform-assigned identifier of this interaction
	ID string `json:"id,omitempty"`

	// ApplicationID is the identifier of the application being invoked
	ApplicationID string `json:"application_id,omitempty"`

	// Type identifies the kind of interaction
	Type Type `json:"type"`

	// Token is the continuation token for follow-up responses
	Token string `json:"token,omitempty"`

	// Version is the interaction payload version (currently always 1)
	Version int `json:"version,omitempty"`

	// GuildID is the guild the interaction was invoked in, if any
	GuildID string `json:"guild_id,omitempty"`

	// ChannelID is the channel the interaction was invoked in, if any
	ChannelID string `json:"channel_id,omitempty"`

	// Locale is the invoking user's selected locale, if any
	Locale string `json:"locale,omitempty"`

	// Data is the command payload, passed through uninterpreted
	Data json.RawMessage `json:"data,omitempty"`

	// Member is the invoking guild member, passed through uninterpreted
	Member json.RawMessage `json:"member,omitempty"`

	// User is the invoking user, passed through uninterpreted
	User json.RawMessage `json:"user,omitempty"`
}
