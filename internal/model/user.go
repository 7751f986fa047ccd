// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
)

// User is the authenticated staff member as returned by the login endpoint
// and persisted alongside the session token.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	RankID    int    `json:"rank_id"`
	RankName  string `json:"rank_name"`
	Hierarchy int    `json:"hierarchy"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Badge returns the staff badge number padded to four digits, the display
// form used everywhere in the portal (matricule "0042").
func (u *User) Badge() string {
	return fmt.Sprintf("%04d", u.ID)
}

// Initials returns up to two initials for the avatar fallback.
func (u *User) Initials() string {
	parts := strings.Fields(u.Name)
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// Rank is an entry of the rank hierarchy. Lower Hierarchy values outrank
// higher ones.
type Rank struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Hierarchy int    `json:"hierarchy"`
}
