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

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/interlock-project/interactions-go/pkg/interaction"
	"github.com/interlock-project/interactions-go/pkg/verifier"
)

// WriteResponse serializes resp and writes it as a 200 response with
// Content-Type: application/json.
//
// If resp cannot be serialized (possible only through a malformed opaque
// field) a fixed 500 diagnostic is written instead; a serialization
// failure never escapes as a panic.
func WriteResponse(w http.ResponseWriter, resp *interaction.Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "failed to serialize interaction response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// WriteError writes err as an HTTP response. A *verifier.VerificationError
// anywhere in the chain picks its own status (401 for an invalid
// signature, 500 otherwise); any other error is a plain 500. The body is
// the error's one-line description.
func WriteError(w http.ResponseWriter, err error) {
	var verr *verifier.VerificationError
	if errors.As(err, &verr) {
		verr.WriteResponse(w)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}
