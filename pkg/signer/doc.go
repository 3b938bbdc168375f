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

// Package signer produces the interaction verification headers on
// outgoing HTTP requests.
//
// It is the inverse of the verifier package: given an Ed25519 private
// key, it signs timestamp || body and sets the x-signature-ed25519 and
// x-signature-timestamp headers the way the platform does. Its main use
// is exercising webhook endpoints in tests and local tooling without
// real platform traffic:
//
//	s := signer.NewEd25519Signer()
//	req, _ := http.NewRequest("POST", endpoint, bytes.NewReader(payload))
//
//	if err := s.SignRequest(ctx, req, privateKey); err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := http.DefaultClient.Do(req)
//
// SignRequestWithTimestamp pins the timestamp for reproducible
// signatures.
package signer
