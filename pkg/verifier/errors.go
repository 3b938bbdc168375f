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
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// ErrorKind identifies the pipeline stage a verification failed at.
// Exactly one kind is produced per failed verification.
type ErrorKind int

const (
	// ErrorChunkingBody means the request body could not be fully read
	ErrorChunkingBody ErrorKind = iota

	// ErrorDeserializingInteraction means the body was read and the
	// signature verified, but the body is not a valid interaction
	ErrorDeserializingInteraction

	// ErrorKeyDecodeFailure means the configured public key is not
	// valid hex of the expected length
	ErrorKeyDecodeFailure

	// ErrorInvalidPublicKey means the decoded key bytes are not a valid
	// Ed25519 public key
	ErrorInvalidPublicKey

	// ErrorInvalidSignature means the signature header is malformed or
	// the signature does not verify against the request
	ErrorInvalidSignature

	// ErrorMissingHeader means a required verification header is absent
	ErrorMissingHeader

	// ErrorRouteIncorrect means the request is not a POST to "/"
	ErrorRouteIncorrect
)

// String returns a short name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorChunkingBody:
		return "ChunkingBody"
	case ErrorDeserializingInteraction:
		return "DeserializingInteraction"
	case ErrorKeyDecodeFailure:
		return "KeyDecodeFailure"
	case ErrorInvalidPublicKey:
		return "InvalidPublicKey"
	case ErrorInvalidSignature:
		return "InvalidSignature"
	case ErrorMissingHeader:
		return "MissingHeader"
	case ErrorRouteIncorrect:
		return "RouteIncorrect"
	default:
		return "Unknown"
	}
}

// VerificationError is the typed failure produced by a RequestVerifier.
//
// Each error carries exactly one ErrorKind, an optional underlying cause
// (reachable through errors.Unwrap / errors.As), and kind-specific
// diagnostics: the missing header name, the observed route, or the raw
// body bytes of an undeserializable interaction.
type VerificationError struct {
	kind   ErrorKind
	source error

	header HeaderName // ErrorMissingHeader
	method string     // ErrorRouteIncorrect
	path   string     // ErrorRouteIncorrect
	body   []byte     // ErrorDeserializingInteraction
}

// Kind returns the kind of failure that occurred
func (e *VerificationError) Kind() ErrorKind {
	return e.kind
}

// Unwrap returns the underlying cause, if any
func (e *VerificationError) Unwrap() error {
	return e.source
}

// Header returns the missing header's name. Only meaningful when Kind is
// ErrorMissingHeader.
func (e *VerificationError) Header() HeaderName {
	return e.header
}

// Route returns the observed method and path of a rejected request. Only
// meaningful when Kind is ErrorRouteIncorrect.
func (e *VerificationError) Route() (method, path string) {
	return e.method, e.path
}

// Body returns the raw request body of an interaction that could not be
// deserialized, so callers can log or inspect the malformed payload. Only
// meaningful when Kind is ErrorDeserializingInteraction; nil otherwise.
func (e *VerificationError) Body() []byte {
	return e.body
}

// Error returns a one-line human-readable description of the failure.
// The underlying cause is never included; callers that want it unwrap
// the error themselves.
func (e *VerificationError) Error() string {
	switch e.kind {
	case ErrorChunkingBody:
		return "failed to chunk request body"
	case ErrorDeserializingInteraction:
		if utf8.Valid(e.body) {
			return "failed to deserialize request body as interaction: " + string(e.body)
		}
		return fmt.Sprintf("failed to deserialize request body as interaction: %v", e.body)
	case ErrorKeyDecodeFailure:
		return "failed to decode public key"
	case ErrorInvalidPublicKey:
		return "public key is invalid"
	case ErrorInvalidSignature:
		return "signature is invalid"
	case ErrorMissingHeader:
		return "header '" + e.header.Name() + "' is missing"
	case ErrorRouteIncorrect:
		return "route of the request ('" + strings.ToLower(e.method) + " " + e.path + "') is not 'post /'"
	default:
		return "interaction verification failed"
	}
}

// StatusCode returns the HTTP status code the failure maps to: 401 for
// an invalid signature, 500 for everything else. Only a signature
// mismatch is attributable to the network caller; the remaining kinds are
// server-side or configuration faults and are deliberately not
// distinguished on the wire.
func (e *VerificationError) StatusCode() int {
	if e.kind == ErrorInvalidSignature {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// WriteResponse writes the failure as an HTTP response: the status from
// StatusCode and a one-line plain-text body. The raw body bytes and the
// underlying cause stay in-process.
func (e *VerificationError) WriteResponse(w http.ResponseWriter) {
	http.Error(w, e.Error(), e.StatusCode())
}

func newError(kind ErrorKind, source error) *VerificationError {
	return &VerificationError{kind: kind, source: source}
}

func newMissingHeaderError(header HeaderName) *VerificationError {
	return &VerificationError{kind: ErrorMissingHeader, header: header}
}

func newRouteError(method, path string) *VerificationError {
	return &VerificationError{kind: ErrorRouteIncorrect, method: method, path: path}
}

func newDeserializeError(body []byte, source error) *VerificationError {
	return &VerificationError{kind: ErrorDeserializingInteraction, body: body, source: source}
}
