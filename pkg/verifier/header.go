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

// HeaderName identifies one of the required verification request headers
type HeaderName int

const (
	// HeaderSignature is the header carrying the hex-encoded Ed25519
	// signature of the request
	HeaderSignature HeaderName = iota

	// HeaderTimestamp is the header carrying the timestamp the request
	// was signed at
	HeaderTimestamp
)

// Name returns the wire name of the header
func (h HeaderName) Name() string {
	switch h {
	case HeaderSignature:
		return "x-signature-ed25519"
	case HeaderTimestamp:
		return "x-signature-timestamp"
	default:
		return ""
	}
}

// String returns the wire name of the header
func (h HeaderName) String() string {
	return h.Name()
}
