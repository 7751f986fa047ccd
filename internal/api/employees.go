// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// employees.go - Roster, ranks, notes, sanctions, avatars.

package api

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/eaglesec/portal-tui/internal/model"
)

// Employees lists the full roster.
func (c *Client) Employees(ctx context.Context) ([]model.Employee, error) {
	var out struct {
		Employees []model.Employee `json:"employees"`
	}
	if err := c.get(ctx, "/api/employees", &out); err != nil {
		return nil, err
	}
	return out.Employees, nil
}

// Employee fetches one roster entry by badge number.
func (c *Client) Employee(ctx context.Context, id int) (*model.Employee, error) {
	var out struct {
		Employee *model.Employee `json:"employee"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/employees/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Employee, nil
}

// CreateEmployee registers a new staff account. The badge number in the
// payload must be unused.
func (c *Client) CreateEmployee(ctx context.Context, e model.NewEmployee) error {
	return c.post(ctx, "/api/employees", e, nil)
}

// DeleteEmployee removes a staff account. The server cascades notes and
// sanctions with it.
func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/employees/%d", id))
}

// Ranks lists the rank hierarchy.
func (c *Client) Ranks(ctx context.Context) ([]model.Rank, error) {
	var out struct {
		Ranks []model.Rank `json:"ranks"`
	}
	if err := c.get(ctx, "/api/ranks", &out); err != nil {
		return nil, err
	}
	return out.Ranks, nil
}

// Notes lists the notes on an employee file.
func (c *Client) Notes(ctx context.Context, employeeID int) ([]model.EmployeeNote, error) {
	var out struct {
		Notes []model.EmployeeNote `json:"notes"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/employees/%d/notes", employeeID), &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

// AddNote appends a note to an employee file.
func (c *Client) AddNote(ctx context.Context, employeeID int, note string) error {
	payload := struct {
		Note string `json:"note"`
	}{note}
	return c.post(ctx, fmt.Sprintf("/api/employees/%d/notes", employeeID), payload, nil)
}

// DeleteNote removes a note by its own id.
func (c *Client) DeleteNote(ctx context.Context, noteID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/notes/%d", noteID))
}

// Sanctions lists the disciplinary records on an employee file.
func (c *Client) Sanctions(ctx context.Context, employeeID int) ([]model.Sanction, error) {
	var out struct {
		Sanctions []model.Sanction `json:"sanctions"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/employees/%d/sanctions", employeeID), &out); err != nil {
		return nil, err
	}
	return out.Sanctions, nil
}

// AddSanction records a disciplinary measure.
func (c *Client) AddSanction(ctx context.Context, employeeID int, sanctionType, reason string) error {
	payload := struct {
		SanctionType string `json:"sanction_type"`
		Reason       string `json:"reason"`
	}{sanctionType, reason}
	return c.post(ctx, fmt.Sprintf("/api/employees/%d/sanctions", employeeID), payload, nil)
}

// DeleteSanction removes a sanction by its own id.
func (c *Client) DeleteSanction(ctx context.Context, sanctionID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/sanctions/%d", sanctionID))
}

// UploadAvatar replaces an employee's avatar. The image travels base64
// encoded in a JSON body and may not exceed MaxUploadSize. Returns the new
// avatar URL.
func (c *Client) UploadAvatar(ctx context.Context, employeeID int, filename string, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("image vide")
	}
	if len(image) > MaxUploadSize {
		return "", fmt.Errorf("l'image ne doit pas dépasser %d Mo", MaxUploadSize/(1024*1024))
	}

	payload := struct {
		Image    string `json:"image"`
		Filename string `json:"filename"`
	}{base64.StdEncoding.EncodeToString(image), filename}

	var out struct {
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/employees/%d/avatar/upload", employeeID), payload, &out); err != nil {
		return "", err
	}
	return out.AvatarURL, nil
}
