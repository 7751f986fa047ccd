// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eaglesec/portal-tui/internal/model"
)

// newTestClient wires a Client to a handler. The authed path uses the
// plain test client; session behavior has its own tests in internal/auth.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), srv.Client()).
		WithLogger(log.New(io.Discard, "", 0))
}

func writeJSON(w http.ResponseWriter, v any) {
	json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("login request carried no X-Request-ID")
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "jean@eagle-security.be" || body.Password != "s3cret" {
			t.Errorf("credentials = %+v", body)
		}
		writeJSON(w, map[string]any{
			"success": true,
			"token":   "tok-1",
			"user":    map[string]any{"id": 42, "name": "Jean Dupont"},
		})
	})

	resp, err := c.Login(context.Background(), "jean@eagle-security.be", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-1" || resp.User == nil || resp.User.ID != 42 {
		t.Errorf("LoginResponse = %+v", resp)
	}
}

func TestLoginRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, map[string]any{"success": false, "message": "Identifiants invalides"})
	})

	_, err := c.Login(context.Background(), "jean@eagle-security.be", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Login error = %T %v, want *APIError", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Identifiants invalides" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestEnvelopeFailureOn200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": false, "message": "Matricule déjà utilisé"})
	})

	err := c.CreateEmployee(context.Background(), model.NewEmployee{ID: 7, Name: "X"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Message != "Matricule déjà utilisé" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestEmployees(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/employees" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(w, map[string]any{
			"success": true,
			"employees": []map[string]any{
				{"id": 7, "name": "Alice Martin", "rank_name": "Agent", "last_login": "2026-02-16 08:30:00"},
				{"id": 42, "name": "Jean Dupont", "rank_name": "Superviseur"},
			},
		})
	})

	got, err := c.Employees(context.Background())
	if err != nil {
		t.Fatalf("Employees: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Alice Martin" || got[1].ID != 42 {
		t.Errorf("Employees = %+v", got)
	}
	if got[0].Badge() != "0007" {
		t.Errorf("Badge() = %q, want 0007", got[0].Badge())
	}
}

func TestEmployeeRoutes(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		writeJSON(w, map[string]any{"success": true})
	})

	ctx := context.Background()
	c.DeleteEmployee(ctx, 7)
	c.AddNote(ctx, 7, "bon élément")
	c.DeleteNote(ctx, 99)
	c.AddSanction(ctx, 7, "Avertissement", "retard répété")
	c.DeleteSanction(ctx, 12)

	want := []string{
		"DELETE /api/employees/7",
		"POST /api/employees/7/notes",
		"DELETE /api/notes/99",
		"POST /api/employees/7/sanctions",
		"DELETE /api/sanctions/12",
	}
	if len(seen) != len(want) {
		t.Fatalf("routes = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("route[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestAddSanctionWireFormat(t *testing.T) {
	var payload map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		writeJSON(w, map[string]any{"success": true})
	})

	if err := c.AddSanction(context.Background(), 7, "Blâme", "absence injustifiée"); err != nil {
		t.Fatalf("AddSanction: %v", err)
	}
	if payload["sanction_type"] != "Blâme" {
		t.Errorf("sanction_type = %q, payload = %v", payload["sanction_type"], payload)
	}
	if payload["reason"] != "absence injustifiée" {
		t.Errorf("reason = %q", payload["reason"])
	}
}

func TestSanctionsDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"sanctions": []map[string]any{{
				"id": 3, "employee_id": 7, "sanction_type": "Mise à pied",
				"reason": "faute grave", "issuer_name": "Jean Dupont",
				"issued_at": "2026-02-10 14:00:00",
			}},
		})
	})

	sanctions, err := c.Sanctions(context.Background(), 7)
	if err != nil {
		t.Fatalf("Sanctions: %v", err)
	}
	if len(sanctions) != 1 {
		t.Fatalf("len = %d", len(sanctions))
	}
	s := sanctions[0]
	if s.Type != "Mise à pied" || s.IssuerName != "Jean Dupont" || s.IssuedAt != "2026-02-10 14:00:00" {
		t.Errorf("sanction = %+v", s)
	}
}

func TestUploadAvatar(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/employees/7/avatar/upload" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			Image    string `json:"image"`
			Filename string `json:"filename"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Filename != "photo.png" {
			t.Errorf("filename = %q", body.Filename)
		}
		decoded, err := base64.StdEncoding.DecodeString(body.Image)
		if err != nil || string(decoded) != string(image) {
			t.Errorf("image did not round-trip: %v", err)
		}
		writeJSON(w, map[string]any{"success": true, "avatar_url": "https://cdn.example/7.png"})
	})

	url, err := c.UploadAvatar(context.Background(), 7, "photo.png", image)
	if err != nil {
		t.Fatalf("UploadAvatar: %v", err)
	}
	if url != "https://cdn.example/7.png" {
		t.Errorf("avatar url = %q", url)
	}
}

func TestUploadAvatarTooLarge(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("oversized upload reached the server")
	})

	_, err := c.UploadAvatar(context.Background(), 7, "photo.png", make([]byte, MaxUploadSize+1))
	if err == nil {
		t.Fatal("oversized avatar accepted")
	}
}

func TestSubmissionRoutes(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		writeJSON(w, map[string]any{"success": true, "submissions": []any{}})
	})

	ctx := context.Background()
	c.Submissions(ctx)
	c.TakeCharge(ctx, 5)
	c.Archive(ctx, 5)
	c.AddSubmissionNote(ctx, 5, "rappelé le client")
	c.DeleteSubmission(ctx, 5)

	want := []string{
		"GET /api/contact-submissions",
		"POST /api/contact-submissions/5/take-charge",
		"POST /api/contact-submissions/5/archive",
		"POST /api/contact-submissions/5/note",
		"DELETE /api/contact-submissions/5",
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("route[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestSubmissionFormDataDecodes(t *testing.T) {
	formData := `{"client":"ACME","type_plainte":"agent","description":"comportement"}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"submission": map[string]any{
				"id": 5, "form_type": "plainte", "nom": "Durand",
				"form_data": formData, "status": "pending",
			},
		})
	})

	sub, err := c.Submission(context.Background(), 5)
	if err != nil {
		t.Fatalf("Submission: %v", err)
	}
	data, err := sub.Complaint()
	if err != nil {
		t.Fatalf("Complaint: %v", err)
	}
	if data.Client != "ACME" || data.Type != "agent" {
		t.Errorf("ComplaintData = %+v", data)
	}
	if _, err := sub.Recruitment(); err == nil {
		t.Error("Recruitment() decoded a complaint")
	}
}

func TestSubmitRecruitmentValidatesCV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid CV reached the server")
	})
	ctx := context.Background()

	data := model.RecruitmentData{Motivation: "motivé", CVFilename: "cv.docx"}
	if err := c.SubmitRecruitment(ctx, "Durand", "d@example.test", "", data, []byte("x")); err == nil {
		t.Error("non-PDF CV accepted")
	}

	data.CVFilename = "cv.pdf"
	if err := c.SubmitRecruitment(ctx, "Durand", "d@example.test", "", data, nil); err == nil {
		t.Error("missing CV accepted")
	}
	if err := c.SubmitRecruitment(ctx, "Durand", "d@example.test", "", data, make([]byte, MaxUploadSize+1)); err == nil {
		t.Error("oversized CV accepted")
	}
}

func TestSubmitComplaintWire(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contact-submission" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body contactPayload
		json.NewDecoder(r.Body).Decode(&body)
		if body.FormType != model.FormComplaint || body.Nom != "Durand" {
			t.Errorf("payload = %+v", body)
		}
		// form_data is a JSON string, not a nested object.
		var data model.ComplaintData
		if err := json.Unmarshal([]byte(body.FormData), &data); err != nil {
			t.Errorf("form_data not a JSON string: %v", err)
		}
		if data.Client != "ACME" {
			t.Errorf("form data = %+v", data)
		}
		writeJSON(w, map[string]any{"success": true})
	})

	err := c.SubmitComplaint(context.Background(), "Durand", "d@example.test", "+32470000000",
		model.ComplaintData{Client: "ACME", Type: "facturation", Description: "erreur"})
	if err != nil {
		t.Fatalf("SubmitComplaint: %v", err)
	}
}
