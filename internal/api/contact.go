// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// contact.go - Public contact form (no session required).

package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eaglesec/portal-tui/internal/model"
)

// contactPayload is the wire form of a public submission: the shared
// contact fields plus the form-specific data as a JSON string.
type contactPayload struct {
	FormType  string `json:"form_type"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	FormData  string `json:"form_data"`
}

func (c *Client) submitContact(ctx context.Context, formType, nom, email, telephone string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode form data: %w", err)
	}
	payload := contactPayload{
		FormType:  formType,
		Nom:       nom,
		Email:     email,
		Telephone: telephone,
		FormData:  string(raw),
	}
	return c.do(ctx, "POST", "/contact-submission", payload, nil, false)
}

// SubmitRecruitment sends a job application. The CV must be a PDF of at
// most MaxUploadSize bytes; it travels base64 encoded inside the form
// data.
func (c *Client) SubmitRecruitment(ctx context.Context, nom, email, telephone string, data model.RecruitmentData, cv []byte) error {
	if len(cv) == 0 {
		return fmt.Errorf("veuillez joindre votre CV en PDF")
	}
	if !strings.HasSuffix(strings.ToLower(data.CVFilename), ".pdf") {
		return fmt.Errorf("le CV doit être au format PDF")
	}
	if len(cv) > MaxUploadSize {
		return fmt.Errorf("le CV ne doit pas dépasser %d Mo", MaxUploadSize/(1024*1024))
	}
	data.CVBase64 = base64.StdEncoding.EncodeToString(cv)
	return c.submitContact(ctx, model.FormRecruitment, nom, email, telephone, data)
}

// SubmitComplaint sends a client complaint.
func (c *Client) SubmitComplaint(ctx context.Context, nom, email, telephone string, data model.ComplaintData) error {
	return c.submitContact(ctx, model.FormComplaint, nom, email, telephone, data)
}

// SubmitAppointment sends an appointment request.
func (c *Client) SubmitAppointment(ctx context.Context, nom, email, telephone string, data model.AppointmentData) error {
	return c.submitContact(ctx, model.FormAppointment, nom, email, telephone, data)
}
