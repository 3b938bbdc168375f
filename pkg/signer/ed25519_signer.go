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
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/interlock-project/interactions-go/pkg/verifier"
)

// Ed25519Signer implements RequestSigner for the platform's webhook
// signature scheme. It is the producer counterpart of the verifier: the
// signature covers the timestamp header value concatenated with the raw
// request body.
type Ed25519Signer struct{}

// NewEd25519Signer creates a new Ed25519Signer
func NewEd25519Signer() *Ed25519Signer {
	return &Ed25519Signer{}
}

// SignRequest signs req with the current Unix time as the timestamp
func (s *Ed25519Signer) SignRequest(ctx context.Context, req *http.Request, key ed25519.PrivateKey) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	return s.SignRequestWithTimestamp(ctx, req, key, timestamp)
}

// SignRequestWithTimestamp signs req with an explicit timestamp string.
// The request body is read to build the signed message and restored so
// the request can still be sent.
func (s *Ed25519Signer) SignRequestWithTimestamp(ctx context.Context, req *http.Request, key ed25519.PrivateKey, timestamp string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}

	if len(key) != ed25519.PrivateKeySize {
		return fmt.Errorf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(key))
	}

	if timestamp == "" {
		return fmt.Errorf("timestamp cannot be empty")
	}

	// Read the body to sign it, then restore it for sending
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	message := make([]byte, 0, len(timestamp)+len(body))
	message = append(message, timestamp...)
	message = append(message, body...)

	signature := ed25519.Sign(key, message)

	req.Header.Set(verifier.HeaderTimestamp.Name(), timestamp)
	req.Header.Set(verifier.HeaderSignature.Name(), hex.EncodeToString(signature))

	return nil
}
