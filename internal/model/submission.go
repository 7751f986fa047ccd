// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
)

// Contact form types. The public site exposes exactly these three forms.
const (
	FormRecruitment = "recrutement"
	FormComplaint   = "plainte"
	FormAppointment = "rdv"
)

// Submission statuses, in triage order. "In progress" is not a stored
// status; it is derived from processed_by being set on a pending entry.
const (
	SubmissionPending   = "pending"
	SubmissionProcessed = "processed"
	SubmissionArchived  = "archived"
)

// Submission is one public contact form entry as seen by staff.
// FormData carries the form-specific fields as a raw JSON document; decode
// it with the typed accessors below.
type Submission struct {
	ID          int    `json:"id"`
	FormType    string `json:"form_type"`
	Nom         string `json:"nom"`
	Email       string `json:"email"`
	Telephone   string `json:"telephone,omitempty"`
	FormData    string `json:"form_data"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at,omitempty"`
	ProcessedBy int    `json:"processed_by,omitempty"`
	ProcessedAt string `json:"processed_at,omitempty"`
	HandlerName string `json:"handler_name,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// RecruitmentData are the form-specific fields of a job application.
// The CV travels as a base64 PDF inside form_data.
type RecruitmentData struct {
	Experience     string `json:"experience"`
	Certifications string `json:"certifications,omitempty"`
	Motivation     string `json:"motivation"`
	CVFilename     string `json:"cv_filename,omitempty"`
	CVBase64       string `json:"cv_base64,omitempty"`
}

// ComplaintData are the form-specific fields of a client complaint.
type ComplaintData struct {
	Client       string `json:"client"`
	Reference    string `json:"reference,omitempty"`
	DateIncident string `json:"date_incident,omitempty"`
	Type         string `json:"type_plainte"`
	Description  string `json:"description"`
}

// AppointmentData are the form-specific fields of an appointment request.
type AppointmentData struct {
	Entreprise string `json:"entreprise,omitempty"`
	Type       string `json:"type_rdv"`
	Date       string `json:"date_souhaitee"`
	Heure      string `json:"heure_souhaitee"`
	Lieu       string `json:"lieu,omitempty"`
	Objet      string `json:"objet,omitempty"`
}

// Recruitment decodes FormData as a recruitment payload.
func (s *Submission) Recruitment() (*RecruitmentData, error) {
	if s.FormType != FormRecruitment {
		return nil, fmt.Errorf("submission %d is %q, not %q", s.ID, s.FormType, FormRecruitment)
	}
	var d RecruitmentData
	if err := json.Unmarshal([]byte(s.FormData), &d); err != nil {
		return nil, fmt.Errorf("decode form_data: %w", err)
	}
	return &d, nil
}

// Complaint decodes FormData as a complaint payload.
func (s *Submission) Complaint() (*ComplaintData, error) {
	if s.FormType != FormComplaint {
		return nil, fmt.Errorf("submission %d is %q, not %q", s.ID, s.FormType, FormComplaint)
	}
	var d ComplaintData
	if err := json.Unmarshal([]byte(s.FormData), &d); err != nil {
		return nil, fmt.Errorf("decode form_data: %w", err)
	}
	return &d, nil
}

// Appointment decodes FormData as an appointment payload.
func (s *Submission) Appointment() (*AppointmentData, error) {
	if s.FormType != FormAppointment {
		return nil, fmt.Errorf("submission %d is %q, not %q", s.ID, s.FormType, FormAppointment)
	}
	var d AppointmentData
	if err := json.Unmarshal([]byte(s.FormData), &d); err != nil {
		return nil, fmt.Errorf("decode form_data: %w", err)
	}
	return &d, nil
}

// FormTypeLabel returns the French display label for a form type.
func FormTypeLabel(t string) string {
	switch t {
	case FormRecruitment:
		return "Recrutement"
	case FormComplaint:
		return "Plainte"
	case FormAppointment:
		return "Rendez-vous"
	default:
		return t
	}
}

// StatusLabel returns the French display label for a submission status.
func StatusLabel(s string) string {
	switch s {
	case SubmissionPending:
		return "En attente"
	case SubmissionProcessed:
		return "Traité"
	case SubmissionArchived:
		return "Archivé"
	default:
		return s
	}
}

// Handled reports whether a staff member took charge of the submission.
func (s *Submission) Handled() bool {
	return s.ProcessedBy != 0
}

// StatusDisplay is the triage label shown to staff: a pending submission
// someone already took charge of shows as in progress.
func (s *Submission) StatusDisplay() string {
	if s.Status == SubmissionPending && s.Handled() {
		return "En cours"
	}
	return StatusLabel(s.Status)
}
