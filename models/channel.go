// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Channel is one protected non-administrative data-exchange channel.
// An administrator creates it once; afterwards every CSV export/import
// performed for the channel uses its [EnvelopeRecord].
type Channel struct {
	ChannelID string         `json:"channel_id"`
	Name      string         `json:"name"`
	Record    EnvelopeRecord `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	// RotatedAt is set when the guarding password was last replaced.
	RotatedAt *time.Time `json:"rotated_at,omitempty"`
}

// CreateChannelRequest is the body of POST /api/channels.
type CreateChannelRequest struct {
	Name          string `json:"name"`
	AdminPassword string `json:"admin_password"`
	UserPassword  string `json:"user_password"`
}

// RotateGuardRequest is the body of PUT /api/channels/{channelID}/guard.
type RotateGuardRequest struct {
	OldAdminPassword string `json:"old_admin_password"`
	NewAdminPassword string `json:"new_admin_password"`
}
