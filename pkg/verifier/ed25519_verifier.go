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
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"filippo.io/edwards25519"

	"github.com/interlock-project/interactions-go/pkg/interaction"
)

var errSignatureVerify = errors.New("ed25519: signature does not verify")

// Ed25519Verifier implements RequestVerifier for the platform's Ed25519
// webhook signature scheme.
//
// The signed message is the byte concatenation of the timestamp header
// value and the raw request body, with no delimiter. The verifier is
// stateless; a single instance is safe for concurrent use.
type Ed25519Verifier struct{}

// NewEd25519Verifier creates a new Ed25519Verifier
func NewEd25519Verifier() *Ed25519Verifier {
	return &Ed25519Verifier{}
}

// VerifyRequest checks that req is a correctly signed interaction request
// and returns its deserialized payload.
//
// The validation stages run in a fixed order, each failing terminally:
//
//  1. the route must be exactly POST /
//  2. the timestamp header, then the signature header, must be present
//  3. the signature must decode to 64 bytes of hex
//  4. publicKey must decode to 32 bytes of hex and be a valid curve point
//  5. the body must be fully readable
//  6. the signature must verify over timestamp || body
//
// Only then is the body deserialized as an interaction. Every failure is
// a *VerificationError; callers branch on its Kind.
func (v *Ed25519Verifier) VerifyRequest(ctx context.Context, req *http.Request, publicKey string) (*interaction.Interaction, error) {
	if req.Method != http.MethodPost || req.URL.Path != "/" {
		return nil, newRouteError(req.Method, req.URL.Path)
	}

	// The timestamp is checked before the signature: when both headers
	// are absent the caller observes the timestamp as the missing one.
	timestamp := req.Header.Get(HeaderTimestamp.Name())
	if timestamp == "" {
		return nil, newMissingHeaderError(HeaderTimestamp)
	}

	signatureHeader := req.Header.Get(HeaderSignature.Name())
	if signatureHeader == "" {
		return nil, newMissingHeaderError(HeaderSignature)
	}

	signature, err := decodeSignature(signatureHeader)
	if err != nil {
		return nil, newError(ErrorInvalidSignature, err)
	}

	key, err := decodePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	body, err := readBody(ctx, req.Body)
	if err != nil {
		return nil, newError(ErrorChunkingBody, err)
	}

	message := make([]byte, 0, len(timestamp)+len(body))
	message = append(message, timestamp...)
	message = append(message, body...)

	if !ed25519.Verify(key, message, signature) {
		return nil, newError(ErrorInvalidSignature, errSignatureVerify)
	}

	var payload interaction.Interaction
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, newDeserializeError(body, err)
	}

	return &payload, nil
}

// decodeSignature parses the signature header value as a hex-encoded
// 64-byte Ed25519 signature
func decodeSignature(value string) ([]byte, error) {
	signature, err := hex.DecodeString(value)
	if err != nil {
		return nil, err
	}
	if len(signature) != ed25519.SignatureSize {
		return nil, fmt.Errorf("signature is %d bytes, expected %d", len(signature), ed25519.SignatureSize)
	}
	return signature, nil
}

// decodePublicKey decodes the hex key string and validates that the
// bytes are a canonical Ed25519 curve point. A hex or length failure is
// a KeyDecodeFailure (bad configuration); a point failure is an
// InvalidPublicKey (malformed key material).
func decodePublicKey(value string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, newError(ErrorKeyDecodeFailure, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, newError(ErrorKeyDecodeFailure,
			fmt.Errorf("public key is %d bytes, expected %d", len(raw), ed25519.PublicKeySize))
	}

	if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
		return nil, newError(ErrorInvalidPublicKey, err)
	}

	return ed25519.PublicKey(raw), nil
}

// readBody reads the full request body, the one suspending step of the
// pipeline. A cancelled request surfaces here as a read failure.
func readBody(ctx context.Context, body io.ReadCloser) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}
	defer body.Close()

	return io.ReadAll(body)
}
