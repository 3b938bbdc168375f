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

package verifier

import (
	"context"
	"net/http"

	"github.com/interlock-project/interactions-go/pkg/interaction"
)

// RequestVerifier validates an inbound interaction webhook request
type RequestVerifier interface {
	// VerifyRequest checks that req is a correctly signed interaction
	// request and returns its deserialized payload.
	//
	// publicKey is the application's verification key as a hex string of
	// exactly 64 characters (a 32-byte Ed25519 public key).
	//
	// Exactly one of the results is set: a non-nil interaction on
	// success, or a *VerificationError describing the first pipeline
	// stage that failed. The request body is consumed.
	VerifyRequest(ctx context.Context, req *http.Request, publicKey string) (*interaction.Interaction, error)
}
