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

package signer

import (
	"context"
	"crypto/ed25519"
	"net/http"
)

// RequestSigner stamps an outgoing HTTP request with the platform's
// interaction verification headers
type RequestSigner interface {
	// SignRequest signs req with the current Unix time as the timestamp
	SignRequest(ctx context.Context, req *http.Request, key ed25519.PrivateKey) error

	// SignRequestWithTimestamp signs req with an explicit timestamp
	// string, exactly as it will appear in the timestamp header
	SignRequestWithTimestamp(ctx context.Context, req *http.Request, key ed25519.PrivateKey, timestamp string) error
}
