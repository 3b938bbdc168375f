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

// Package verifier validates inbound interaction webhook requests.
//
// The platform signs every webhook delivery with the application's
// Ed25519 key pair: the x-signature-ed25519 header carries a hex-encoded
// signature over the x-signature-timestamp header value concatenated with
// the raw request body. Nothing in a request may be trusted until that
// signature has been checked against the application's public key.
//
// # Verifying a Request
//
//	v := verifier.NewEd25519Verifier()
//
//	i, err := v.VerifyRequest(r.Context(), r, publicKeyHex)
//	if err != nil {
//	    var verr *verifier.VerificationError
//	    if errors.As(err, &verr) {
//	        verr.WriteResponse(w) // 401 or 500 with a one-line body
//	        return
//	    }
//	}
//
//	// i is a verified *interaction.Interaction
//
// # Validation Pipeline
//
// VerifyRequest runs a fixed sequence of checks, each terminal on
// failure:
//
//  1. route: the request must be exactly POST /
//  2. headers: x-signature-timestamp, then x-signature-ed25519
//  3. signature format: hex, 64 bytes
//  4. public key: hex, 32 bytes, valid curve point
//  5. body: fully readable
//  6. cryptographic verification over timestamp || body
//
// A verified body is then deserialized as an interaction; a schema
// mismatch at that point is the one failure that retains the raw body
// bytes (VerificationError.Body) for in-process diagnostics.
//
// # Error Matching
//
// Every failure is a *VerificationError tagged with an ErrorKind, so
// callers can branch on the cause without parsing messages:
//
//	var verr *verifier.VerificationError
//	if errors.As(err, &verr) && verr.Kind() == verifier.ErrorKeyDecodeFailure {
//	    // configured public key is wrong, alert the operator
//	}
//
// The underlying library error, when there is one, is reachable through
// errors.Unwrap for logging; it is never placed in an HTTP response.
//
// # Replay Protection
//
// The verifier deliberately does not check timestamp freshness. A replay
// window is an application policy; enforce it on the verified
// interaction if you need one.
package verifier
