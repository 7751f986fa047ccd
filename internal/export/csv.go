// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/model"
)

// SubmissionsCSV renders submissions as CSV for spreadsheet triage. The
// raw form_data is left out; it is unreadable in a cell and CVs are
// extracted separately with WriteCV.
func SubmissionsCSV(subs []model.Submission, f *datetime.Formatter) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Type", "Nom", "Email", "Téléphone", "Statut", "Reçu le", "Traité par", "Traité le"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range subs {
		row := []string{
			strconv.Itoa(s.ID),
			model.FormTypeLabel(s.FormType),
			s.Nom,
			s.Email,
			s.Telephone,
			model.StatusLabel(s.Status),
			f.Format(s.SubmittedAt),
			s.HandlerName,
			f.Format(s.ProcessedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSubmissionsCSV writes submissions_YYYY-MM-DD.csv and returns the
// path.
func (o *Options) WriteSubmissionsCSV(subs []model.Submission, f *datetime.Formatter, now time.Time) (string, error) {
	data, err := SubmissionsCSV(subs, f)
	if err != nil {
		return "", err
	}
	return o.write(datedName("submissions", ".csv", now), data)
}

// WriteCV extracts the CV attached to a recruitment application and writes
// it under its original filename. Returns the path.
func (o *Options) WriteCV(sub *model.Submission) (string, error) {
	data, err := sub.Recruitment()
	if err != nil {
		return "", err
	}
	if data.CVBase64 == "" {
		return "", fmt.Errorf("la candidature %d ne contient pas de CV", sub.ID)
	}
	raw, err := base64.StdEncoding.DecodeString(data.CVBase64)
	if err != nil {
		return "", fmt.Errorf("CV illisible: %w", err)
	}
	name := data.CVFilename
	if name == "" {
		name = fmt.Sprintf("cv_%d.pdf", sub.ID)
	}
	return o.write(name, raw)
}
