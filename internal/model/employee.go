// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// Login statuses derived client-side from the last login date. The API
// stores no status field; the roster computes one for display.
const (
	StatusActive   = "active"   // logged in today
	StatusRecent   = "recent"   // logged in this week
	StatusInactive = "inactive" // older than a week
	StatusNever    = "never"    // never logged in
)

// Employee is a roster entry. ID doubles as the badge number.
type Employee struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	RankID    int    `json:"rank_id"`
	RankName  string `json:"rank_name"`
	Hierarchy int    `json:"hierarchy"`
	HiredDate string `json:"hired_date,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Badge returns the four-digit display form of the badge number.
func (e *Employee) Badge() string {
	return fmt.Sprintf("%04d", e.ID)
}

// NewEmployee is the creation payload. The badge number is chosen by the
// operator, not the server.
type NewEmployee struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	RankID   int    `json:"rank_id"`
}

// EmployeeNote is a free-form note attached to an employee file.
type EmployeeNote struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	Note       string `json:"note"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Sanction is a disciplinary record attached to an employee file.
type Sanction struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	Type       string `json:"sanction_type"`
	Reason     string `json:"reason"`
	IssuerName string `json:"issuer_name,omitempty"`
	IssuedAt   string `json:"issued_at,omitempty"`
}

// SanctionTypes are the disciplinary measures the portal knows, in
// increasing severity.
var SanctionTypes = [...]string{"Avertissement", "Blâme", "Mise à pied", "Licenciement"}
