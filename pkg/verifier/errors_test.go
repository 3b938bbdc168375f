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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderNames(t *testing.T) {
	assert.Equal(t, "x-signature-ed25519", HeaderSignature.Name())
	assert.Equal(t, "x-signature-timestamp", HeaderTimestamp.Name())
	assert.Equal(t, "x-signature-ed25519", HeaderSignature.String())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *VerificationError
		want string
	}{
		{
			name: "chunking body",
			err:  newError(ErrorChunkingBody, errors.New("eof")),
			want: "failed to chunk request body",
		},
		{
			name: "deserializing with printable body",
			err:  newDeserializeError([]byte("not json"), errors.New("bad")),
			want: "failed to deserialize request body as interaction: not json",
		},
		{
			name: "key decode",
			err:  newError(ErrorKeyDecodeFailure, errors.New("bad hex")),
			want: "failed to decode public key",
		},
		{
			name: "invalid public key",
			err:  newError(ErrorInvalidPublicKey, errors.New("bad point")),
			want: "public key is invalid",
		},
		{
			name: "invalid signature",
			err:  newError(ErrorInvalidSignature, nil),
			want: "signature is invalid",
		},
		{
			name: "missing timestamp header",
			err:  newMissingHeaderError(HeaderTimestamp),
			want: "header 'x-signature-timestamp' is missing",
		},
		{
			name: "missing signature header",
			err:  newMissingHeaderError(HeaderSignature),
			want: "header 'x-signature-ed25519' is missing",
		},
		{
			name: "route incorrect lowercases the method for display",
			err:  newRouteError(http.MethodGet, "/foo"),
			want: "route of the request ('get /foo') is not 'post /'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorMessageNonUTF8Body(t *testing.T) {
	err := newDeserializeError([]byte{0xff, 0xfe}, errors.New("bad"))
	assert.Contains(t, err.Error(), "failed to deserialize request body as interaction: ")
}

func TestStatusCodeMapping(t *testing.T) {
	// Only an invalid signature is attributable to the network caller
	assert.Equal(t, http.StatusUnauthorized, newError(ErrorInvalidSignature, nil).StatusCode())

	for _, kind := range []ErrorKind{
		ErrorChunkingBody,
		ErrorDeserializingInteraction,
		ErrorKeyDecodeFailure,
		ErrorInvalidPublicKey,
		ErrorMissingHeader,
		ErrorRouteIncorrect,
	} {
		assert.Equal(t, http.StatusInternalServerError, newError(kind, nil).StatusCode(), kind.String())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := newError(ErrorInvalidSignature, cause)

	assert.ErrorIs(t, err, cause)
	assert.Nil(t, newMissingHeaderError(HeaderTimestamp).Unwrap())
}

func TestErrorWriteResponse(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newError(ErrorInvalidSignature, nil).WriteResponse(rec)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "signature is invalid\n", rec.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newMissingHeaderError(HeaderTimestamp).WriteResponse(rec)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "header 'x-signature-timestamp' is missing\n", rec.Body.String())
	})
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "InvalidSignature", ErrorInvalidSignature.String())
	assert.Equal(t, "RouteIncorrect", ErrorRouteIncorrect.String())
	assert.Equal(t, "Unknown", ErrorKind(99).String())
}
