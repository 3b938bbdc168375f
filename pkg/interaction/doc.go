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

// Package interaction defines the wire types exchanged with the platform:
// the inbound Interaction payload and the outbound Response.
//
// # Interactions
//
// An Interaction is what the verifier hands to the application once the
// request signature checks out. The envelope fields (id, type, token,
// channel) are typed; command-specific content is kept as raw JSON for the
// application to decode against its own command definitions:
//
//	switch i.Type {
//	case interaction.TypePing:
//	    // answer with interaction.NewPong()
//	case interaction.TypeApplicationCommand:
//	    var cmd MyCommandData
//	    _ = json.Unmarshal(i.Data, &cmd)
//	}
//
// # Responses
//
// A Response pairs a ResponseType with optional ResponseData. The common
// cases have constructors:
//
//	interaction.NewPong()
//	interaction.NewMessageResponse("hello!")
//
// Anything richer (embeds, components, autocomplete choices) goes through
// the opaque raw-JSON fields of ResponseData.
package interaction
