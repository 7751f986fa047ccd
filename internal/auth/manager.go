// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// manager.go - Session lifecycle: persistence, inactivity, refresh, requests.

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/eaglesec/portal-tui/internal/model"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// InactivityTimeout ends the session after this much time without
	// recorded activity.
	InactivityTimeout = time.Hour

	// CheckInterval is the cadence of the background expiry/refresh check.
	CheckInterval = 30 * time.Second

	// RefreshWindow is how long before expiry the token gets refreshed.
	RefreshWindow = 10 * time.Minute
)

// Store keys. last_activity holds epoch milliseconds as a decimal string.
const (
	keyToken        = "token"
	keyUser         = "user"
	keyLastActivity = "last_activity"
)

// Navigation delays used with Navigator.GoToLater.
const (
	deniedRedirectDelay = 1500 * time.Millisecond
	loggedInNavDelay    = time.Second
)

// maxRefreshBody caps the refresh response size.
const maxRefreshBody = 1 << 20

// =============================================================================
// MANAGER
// =============================================================================

// Manager owns the portal session. All state lives in the Store so a
// restart of the app resumes the session; the Manager itself only holds
// the tracking flag and the background check handle.
//
// Safe for concurrent use: the background check goroutine and the UI
// goroutine interleave freely, last write wins.
type Manager struct {
	store    Store
	client   *http.Client
	notifier Notifier
	nav      Navigator
	apiBase  string

	clock  Clock
	logger *log.Logger

	mu        sync.Mutex
	tracking  bool
	checkStop chan struct{}
}

// New builds a Manager. The session is whatever the store already holds;
// call Resume afterwards to restart tracking for a persisted session.
func New(store Store, client *http.Client, notifier Notifier, nav Navigator, apiBase string) *Manager {
	if client == nil {
		client = http.DefaultClient
	}
	return &Manager{
		store:    store,
		client:   client,
		notifier: notifier,
		nav:      nav,
		apiBase:  apiBase,
		clock:    systemClock{},
		logger:   log.Default(),
	}
}

// WithClock replaces the time source. Returns the manager for chaining.
func (m *Manager) WithClock(c Clock) *Manager {
	m.clock = c
	return m
}

// WithLogger replaces the default logger. Returns the manager for chaining.
func (m *Manager) WithLogger(l *log.Logger) *Manager {
	m.logger = l
	return m
}

// Resume restarts activity tracking and the background check when a valid
// session was persisted from a previous run. Returns true if a session is
// live.
func (m *Manager) Resume() bool {
	if !m.IsAuthenticated() {
		return false
	}
	m.StartActivityTracking()
	m.StartTokenCheck()
	return true
}

// =============================================================================
// SESSION STATE
// =============================================================================

// IsAuthenticated reports whether both a token and a user record are
// stored. It does not consult the inactivity clock; pair it with Expired
// for page guards.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, hasToken := m.store.Get(keyToken)
	_, hasUser := m.store.Get(keyUser)
	return hasToken && hasUser
}

// Token returns the stored bearer token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	tok, _ := m.store.Get(keyToken)
	return tok
}

// User returns the stored user record, or nil when logged out or when the
// stored record does not decode.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.store.Get(keyUser)
	if !ok {
		return nil
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		m.logger.Printf("session: stored user record unreadable: %v", err)
		return nil
	}
	return &u
}

// SetAuth installs a fresh session: token, user and activity stamp are
// written together, then tracking and the background check (re)start. An
// existing background check is stopped first so a re-login never leaves a
// second ticker running.
func (m *Manager) SetAuth(token string, user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.setKey(keyToken, token)
	m.setKey(keyUser, string(raw))
	m.touchLocked()
	m.tracking = true
	m.stopTokenCheckLocked()
	m.startTokenCheckLocked()
	return nil
}

// Logout clears the session, stops tracking and the background check, and
// navigates to the login page. With notify set, the operator is told the
// session ended; pass false when the caller shows its own message.
func (m *Manager) Logout(notify bool) {
	m.mu.Lock()
	m.delKey(keyToken)
	m.delKey(keyUser)
	m.delKey(keyLastActivity)
	m.tracking = false
	m.stopTokenCheckLocked()
	m.mu.Unlock()

	if notify && m.notifier != nil {
		m.notifier.Notify(KindInfo, "Session expirée", "Veuillez vous reconnecter.")
	}
	if m.nav != nil {
		m.nav.GoTo(RouteLogin)
	}
}

// =============================================================================
// ACTIVITY
// =============================================================================

// Touch stamps the last-activity key with the current time.
func (m *Manager) Touch() {
	m.mu.Lock()
	m.touchLocked()
	m.mu.Unlock()
}

// RecordActivity stamps activity only while tracking is on. The UI calls
// this for every input event, so it must stay a no-op after logout.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	if m.tracking {
		m.touchLocked()
	}
	m.mu.Unlock()
}

// StartActivityTracking enables the activity stamp on input events.
// Idempotent.
func (m *Manager) StartActivityTracking() {
	m.mu.Lock()
	m.tracking = true
	m.mu.Unlock()
}

// StopActivityTracking disables the activity stamp. Idempotent; stopping
// without a prior start is fine.
func (m *Manager) StopActivityTracking() {
	m.mu.Lock()
	m.tracking = false
	m.mu.Unlock()
}

// InactivityTime returns how long the session has been idle. A missing or
// unreadable activity stamp counts as just past the timeout, forcing
// expiry.
func (m *Manager) InactivityTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inactivityLocked()
}

// Expired reports whether the inactivity timeout has elapsed. Exactly at
// the timeout the session is still live; one millisecond past it is not.
func (m *Manager) Expired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inactivityLocked() > InactivityTimeout
}

func (m *Manager) inactivityLocked() time.Duration {
	raw, ok := m.store.Get(keyLastActivity)
	if !ok {
		return InactivityTimeout + time.Millisecond
	}
	last, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return InactivityTimeout + time.Millisecond
	}
	return time.Duration(m.clock.Now().UnixMilli()-last) * time.Millisecond
}

func (m *Manager) touchLocked() {
	m.setKey(keyLastActivity, strconv.FormatInt(m.clock.Now().UnixMilli(), 10))
}

func (m *Manager) setKey(key, value string) {
	if err := m.store.Set(key, value); err != nil {
		m.logger.Printf("session: store write %q: %v", key, err)
	}
}

func (m *Manager) delKey(key string) {
	if err := m.store.Delete(key); err != nil {
		m.logger.Printf("session: store delete %q: %v", key, err)
	}
}

// =============================================================================
// BACKGROUND CHECK
// =============================================================================

// StartTokenCheck launches the periodic expiry/refresh check. Idempotent:
// a second start while running does nothing.
func (m *Manager) StartTokenCheck() {
	m.mu.Lock()
	m.startTokenCheckLocked()
	m.mu.Unlock()
}

// StopTokenCheck stops the periodic check. Idempotent; stopping a manager
// that never started is fine.
func (m *Manager) StopTokenCheck() {
	m.mu.Lock()
	m.stopTokenCheckLocked()
	m.mu.Unlock()
}

func (m *Manager) startTokenCheckLocked() {
	if m.checkStop != nil {
		return
	}
	stop := make(chan struct{})
	m.checkStop = stop
	go m.runTokenCheck(stop)
}

func (m *Manager) stopTokenCheckLocked() {
	if m.checkStop == nil {
		return
	}
	close(m.checkStop)
	m.checkStop = nil
}

func (m *Manager) runTokenCheck(stop <-chan struct{}) {
	ticker := time.NewTicker(CheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.CheckAndRefresh(context.Background())
		}
	}
}

// CheckAndRefresh is one pass of the background check: logged out it does
// nothing, past the timeout it force-logs-out, within the refresh window
// it refreshes the token. Refresh failures other than a 401 are logged and
// left for the next pass.
func (m *Manager) CheckAndRefresh(ctx context.Context) {
	if !m.IsAuthenticated() {
		return
	}

	idle := m.InactivityTime()
	if idle > InactivityTimeout {
		m.logger.Printf("session: idle %s, ending session", idle.Round(time.Second))
		m.Logout(true)
		return
	}

	if InactivityTimeout-idle < RefreshWindow {
		if err := m.Refresh(ctx); err != nil {
			m.logger.Printf("session: token refresh failed: %v", err)
		}
	}
}

// Refresh exchanges the current token for a fresh one. On success the new
// token replaces the old and the activity stamp is renewed, so an open,
// active portal keeps its session alive indefinitely. A 401 means the
// server no longer honors the token: the session ends immediately.
func (m *Manager) Refresh(ctx context.Context) error {
	tok := m.Token()
	if tok == "" {
		return ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiBase+"/api/refresh-token", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		m.logger.Printf("session: refresh rejected, ending session")
		m.Logout(true)
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("refresh: unexpected status %s", resp.Status)
	}

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRefreshBody)).Decode(&body); err != nil {
		return fmt.Errorf("refresh: decode response: %w", err)
	}
	if !body.Success || body.Token == "" {
		return fmt.Errorf("refresh: response carried no token")
	}

	m.mu.Lock()
	m.setKey(keyToken, body.Token)
	m.touchLocked()
	m.mu.Unlock()
	return nil
}

// =============================================================================
// AUTHENTICATED REQUESTS
// =============================================================================

// Do sends an authenticated request. The Authorization and Content-Type
// headers are set here and always win over whatever the caller put on the
// request.
//
//   - no stored token: ErrNotAuthenticated, nothing is sent
//   - session idle past the timeout: forced logout, ErrSessionExpired
//   - server answers 401: forced logout, ErrSessionExpired, no response
//   - transport error: logged and returned unchanged
//   - 2xx: activity stamp renewed
//
// Non-2xx statuses other than 401 are the caller's business; the response
// is returned as-is.
func (m *Manager) Do(req *http.Request) (*http.Response, error) {
	tok := m.Token()
	if tok == "" {
		return nil, ErrNotAuthenticated
	}

	if m.Expired() {
		m.Logout(true)
		return nil, ErrSessionExpired
	}

	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Printf("session: request %s %s: %v", req.Method, req.URL.Path, err)
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		m.logger.Printf("session: 401 from %s, ending session", req.URL.Path)
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxRefreshBody))
		resp.Body.Close()
		m.Logout(true)
		return nil, ErrSessionExpired
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		m.Touch()
	}
	return resp, nil
}

// =============================================================================
// PAGE GUARDS
// =============================================================================

// RequireAuth guards a protected page. Logged out: warns and schedules a
// return to the login page. Expired: forced logout. Returns whether the
// page may render.
func (m *Manager) RequireAuth() bool {
	if !m.IsAuthenticated() {
		if m.notifier != nil {
			m.notifier.Notify(KindWarning, "Accès refusé", "Veuillez vous connecter.")
		}
		if m.nav != nil {
			m.nav.GoToLater(RouteLogin, deniedRedirectDelay)
		}
		return false
	}
	if m.Expired() {
		m.Logout(true)
		return false
	}
	return true
}

// RedirectIfAuthenticated sends an already-connected operator from the
// login page to the dashboard. Returns true when the redirect was
// scheduled.
func (m *Manager) RedirectIfAuthenticated() bool {
	if m.IsAuthenticated() && !m.Expired() {
		if m.notifier != nil {
			m.notifier.Notify(KindInfo, "Déjà connecté", "Redirection...")
		}
		if m.nav != nil {
			m.nav.GoToLater(RouteDashboard, loggedInNavDelay)
		}
		return true
	}
	return false
}
