// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials carry the password a caller unlocks a channel with.
// Exactly one of the two fields must be set: the administrator password opens
// the escrow envelope, the user password derives the content key directly.
type Credentials struct {
	AdminPassword string `json:"admin_password,omitempty"`
	UserPassword  string `json:"user_password,omitempty"`
}

// IsAdmin reports whether the administrator password was supplied.
func (c Credentials) IsAdmin() bool {
	return c.AdminPassword != ""
}

// IsValid reports whether exactly one password is set.
func (c Credentials) IsValid() bool {
	return (c.AdminPassword == "") != (c.UserPassword == "")
}

// ExportRequest is the body of POST /api/channels/{channelID}/export.
type ExportRequest struct {
	Credentials
	CSV string `json:"csv"`
}

// ImportRequest is the body of POST /api/channels/{channelID}/import.
type ImportRequest struct {
	Credentials
	Protected string `json:"protected"`
}
