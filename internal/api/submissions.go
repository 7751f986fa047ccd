// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// submissions.go - Contact submission triage.

package api

import (
	"context"
	"fmt"

	"github.com/eaglesec/portal-tui/internal/model"
)

// Submissions lists all contact submissions, newest first.
func (c *Client) Submissions(ctx context.Context) ([]model.Submission, error) {
	var out struct {
		Submissions []model.Submission `json:"submissions"`
	}
	if err := c.get(ctx, "/api/contact-submissions", &out); err != nil {
		return nil, err
	}
	return out.Submissions, nil
}

// Submission fetches one contact submission with its full form data.
func (c *Client) Submission(ctx context.Context, id int) (*model.Submission, error) {
	var out struct {
		Submission *model.Submission `json:"submission"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/contact-submissions/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Submission, nil
}

// TakeCharge assigns the submission to the current operator and moves it
// to in-progress.
func (c *Client) TakeCharge(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/api/contact-submissions/%d/take-charge", id), nil, nil)
}

// Archive moves a processed submission to the archive.
func (c *Client) Archive(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/api/contact-submissions/%d/archive", id), nil, nil)
}

// DeleteSubmission removes a submission permanently.
func (c *Client) DeleteSubmission(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/contact-submissions/%d", id))
}

// AddSubmissionNote attaches a triage note to a submission.
func (c *Client) AddSubmissionNote(ctx context.Context, id int, note string) error {
	payload := struct {
		Note string `json:"note"`
	}{note}
	return c.post(ctx, fmt.Sprintf("/api/contact-submissions/%d/note", id), payload, nil)
}
