// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-csv-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() models.CreateChannelRequest {
	return models.CreateChannelRequest{
		Name:          "employees",
		AdminPassword: "adminPass!",
		UserPassword:  "userSecret123",
	}
}

func TestNewChannelValidator(t *testing.T) {
	v := NewChannelValidator()
	require.NotNil(t, v)
	assert.IsType(t, &ChannelValidator{}, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewChannelValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_ChannelID(t *testing.T) {
	v := NewChannelValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, ChannelID("0195a1b2-0000-7000-8000-000000000001")))
	assert.ErrorIs(t, v.Validate(ctx, ChannelID("")), ErrInvalidChannelID)
	assert.ErrorIs(t, v.Validate(ctx, ChannelID("../etc/passwd")), ErrInvalidChannelID)
}

func TestValidate_CreateChannelRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateChannelRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CreateChannelRequest) {}},
		{name: "empty name", mutate: func(r *models.CreateChannelRequest) { r.Name = "" }, wantErr: ErrEmptyChannelName},
		{name: "long name", mutate: func(r *models.CreateChannelRequest) { r.Name = strings.Repeat("я", MaxChannelNameLength+1) }, wantErr: ErrInvalidChannelName},
		{name: "control char", mutate: func(r *models.CreateChannelRequest) { r.Name = "a\nb" }, wantErr: ErrInvalidChannelName},
		{name: "no admin", mutate: func(r *models.CreateChannelRequest) { r.AdminPassword = "" }, wantErr: ErrEmptyAdminPassword},
		{name: "no user", mutate: func(r *models.CreateChannelRequest) { r.UserPassword = "" }, wantErr: ErrEmptyUserPassword},
		{name: "same passwords", mutate: func(r *models.CreateChannelRequest) { r.UserPassword = r.AdminPassword }, wantErr: ErrSamePasswords},
	}

	v := NewChannelValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(context.Background(), &req), tt.wantErr)
		})
	}
}

func TestValidate_CreateChannelRequest_FieldScope(t *testing.T) {
	v := NewChannelValidator()
	req := validCreateRequest()
	req.AdminPassword = ""

	assert.NoError(t, v.Validate(context.Background(), req, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldName, FieldAdminPassword), ErrEmptyAdminPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "colour"), ErrUnknownField)
}

func TestValidate_RotateGuardRequest(t *testing.T) {
	v := NewChannelValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RotateGuardRequest{OldAdminPassword: "a", NewAdminPassword: "b"}))
	assert.ErrorIs(t, v.Validate(ctx, models.RotateGuardRequest{NewAdminPassword: "b"}), ErrEmptyAdminPassword)
	assert.ErrorIs(t, v.Validate(ctx, &models.RotateGuardRequest{OldAdminPassword: "a"}), ErrEmptyAdminPassword)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewChannelValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{AdminPassword: "a"}))
	assert.NoError(t, v.Validate(ctx, models.Credentials{UserPassword: "u"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{}), ErrAmbiguousCredentials)
	assert.ErrorIs(t, v.Validate(ctx, &models.Credentials{AdminPassword: "a", UserPassword: "u"}), ErrAmbiguousCredentials)
}

func TestValidate_ExportRequest(t *testing.T) {
	v := &ChannelValidator{maxPayloadSize: 8}
	ctx := context.Background()
	creds := models.Credentials{UserPassword: "u"}

	assert.NoError(t, v.Validate(ctx, models.ExportRequest{Credentials: creds, CSV: ""}), "empty CSV is allowed")
	assert.NoError(t, v.Validate(ctx, models.ExportRequest{Credentials: creds, CSV: "a,b\n1,2"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ExportRequest{Credentials: creds, CSV: "a,b,c,d,e"}), ErrPayloadTooLarge)
	assert.ErrorIs(t, v.Validate(ctx, models.ExportRequest{CSV: "a"}), ErrAmbiguousCredentials)
}

func TestValidate_ImportRequest(t *testing.T) {
	v := &ChannelValidator{maxPayloadSize: 8}
	ctx := context.Background()
	creds := models.Credentials{AdminPassword: "a"}

	assert.NoError(t, v.Validate(ctx, models.ImportRequest{Credentials: creds, Protected: "n:c"}))
	// 16 (nonce) + 1 + 32 (8 bytes of plaintext and the tag)
	assert.NoError(t, v.Validate(ctx, models.ImportRequest{Credentials: creds, Protected: strings.Repeat("A", 49)}))
	assert.ErrorIs(t, v.Validate(ctx, models.ImportRequest{Credentials: creds}), ErrEmptyProtectedData)
	assert.ErrorIs(t, v.Validate(ctx, &models.ImportRequest{Credentials: creds, Protected: strings.Repeat("A", 50)}), ErrPayloadTooLarge)
	assert.ErrorIs(t, v.Validate(ctx, models.ImportRequest{Protected: "n:c"}), ErrAmbiguousCredentials)
}
