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

// Package client impersonates the platform for testing: it sends
// correctly signed interactions to a webhook endpoint and decodes the
// responses.
//
//	c := client.NewWebhookClient(privateKey, nil)
//
//	resp, err := c.SendInteraction(ctx, endpoint, &interaction.Interaction{
//	    Type: interaction.TypePing,
//	})
//	// resp.Type == interaction.ResponsePong for a healthy endpoint
//
// Point it at a staging deployment to check the configured public key
// matches your signing key before the platform does.
package client
