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

// Package server glues the verifier into net/http.
//
// # Webhook Handler
//
// WebhookHandler is a ready-made http.Handler for the interaction
// endpoint: it verifies each request and calls the application back with
// the interaction.
//
//	h := server.NewWebhookHandler(publicKeyHex, func(ctx context.Context, i *interaction.Interaction) (*interaction.Response, error) {
//	    if i.Type == interaction.TypePing {
//	        return interaction.NewPong(), nil
//	    }
//	    return interaction.NewMessageResponse("hello!"), nil
//	})
//	h.SetLogger(logger)
//
//	http.ListenAndServe(":8080", h)
//
// Verification failures are answered with 401 (invalid signature) or 500
// (everything else) and a one-line description; the underlying library
// error is logged, never sent.
//
// # Writing Responses Directly
//
// Applications with their own routing can use the two write helpers
// instead of the handler:
//
//	i, err := v.VerifyRequest(r.Context(), r, publicKeyHex)
//	if err != nil {
//	    server.WriteError(w, err)
//	    return
//	}
//	server.WriteResponse(w, interaction.NewPong())
//
// WriteResponse always sets Content-Type: application/json on success
// and degrades to a fixed 500 diagnostic if the response payload cannot
// be serialized.
package server
