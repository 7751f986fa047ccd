// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"

	"github.com/eaglesec/portal-tui/internal/model"
)

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token    string      `json:"token"`
	User     *model.User `json:"user"`
	Redirect string      `json:"redirect,omitempty"`
}

// Login authenticates with email and password. It does not touch the
// session; the caller installs the returned token via the session manager.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out LoginResponse
	if err := c.do(ctx, "POST", "/api/login", payload, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}
