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

// Package interactionsgo provides version information for interactions-go.
package interactionsgo

const (
	// Version is the current version of interactions-go
	Version = "1.0.0"

	// InteractionVersion is the platform interaction payload version this
	// library understands (the "version" field on inbound interactions)
	InteractionVersion = 1
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion     string
	InteractionVersion int
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:     Version,
		InteractionVersion: InteractionVersion,
	}
}
