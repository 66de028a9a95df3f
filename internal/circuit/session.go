package circuit

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/jaskrrish/Go-QLab/internal/circuit/results"
	models "github.com/jaskrrish/Go-QLab/internal/models/circuit"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session is one learner's workspace: the circuit, the gate picked in the
// palette, the last run and the screen being shown.
type Session struct {
	ID         uuid.UUID
	Circuit    *Circuit
	Selected   quantum.GateKind
	Outcomes   []quantum.Outcome
	Results    *results.FrequencyTable
	RunMode    RunMode
	RanAt      time.Time
	ActiveView models.View
	CreatedAt  time.Time
	LastActive time.Time
	ExpiresAt  time.Time
}

// ManagerOptions configures a SessionManager
type ManagerOptions struct {
	// InitialQubits is the lane count for sessions that don't ask for one
	InitialQubits int
	// MaxQubits caps lanes per session; zero means unbounded
	MaxQubits int
	// MaxSessions bounds memory; the least recently used session is evicted
	MaxSessions int
	// SessionTTL is how long an idle session survives
	SessionTTL time.Duration
	// Tokens generates gate id tokens; nil uses nanoid
	Tokens TokenSource
}

// DefaultManagerOptions mirrors the builder's initial two-qubit layout
func DefaultManagerOptions() ManagerOptions {
	return ManagerOptions{
		InitialQubits: 2,
		MaxQubits:     8,
		MaxSessions:   1024,
		SessionTTL:    2 * time.Hour,
	}
}

// SessionManager owns circuit sessions and serializes access to them
type SessionManager struct {
	sessions *lru.Cache[uuid.UUID, *Session]
	mutex    sync.RWMutex
	backend  Backend
	opts     ManagerOptions
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionManager creates a new session manager
func NewSessionManager(backend Backend, opts ManagerOptions, logger *zap.Logger) (*SessionManager, error) {
	if backend == nil {
		return nil, errors.New("session manager: backend is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.InitialQubits < 1 {
		opts.InitialQubits = 1
	}
	if opts.MaxSessions < 1 {
		return nil, errors.Errorf("session manager: max sessions must be positive, got %d", opts.MaxSessions)
	}
	if opts.SessionTTL <= 0 {
		return nil, errors.Errorf("session manager: session TTL must be positive, got %s", opts.SessionTTL)
	}
	if opts.Tokens == nil {
		opts.Tokens = NewNanoTokens()
	}

	sm := &SessionManager{
		backend: backend,
		opts:    opts,
		logger:  logger.With(zap.String("component", "session_manager")),
		now:     time.Now,
	}

	cache, err := lru.NewWithEvict[uuid.UUID, *Session](opts.MaxSessions, func(id uuid.UUID, _ *Session) {
		sm.logger.Debug("session released", zap.String("session_id", id.String()))
	})
	if err != nil {
		return nil, errors.Wrap(err, "session manager: create session cache")
	}
	sm.sessions = cache

	return sm, nil
}

// Backend returns the backend used for runs
func (sm *SessionManager) Backend() Backend {
	return sm.backend
}

// CreateSession opens a new session with empty lanes
func (sm *SessionManager) CreateSession(req *models.SessionCreateRequest) (*models.SessionView, error) {
	if req == nil {
		req = &models.SessionCreateRequest{}
	}
	if err := req.Validate(sm.opts.InitialQubits, sm.opts.MaxQubits); err != nil {
		return nil, err
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := sm.now()
	session := &Session{
		ID:         uuid.New(),
		Circuit:    NewCircuit(req.Qubits, sm.opts.Tokens),
		ActiveView: models.ViewBuilder,
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(sm.opts.SessionTTL),
	}

	if evicted := sm.sessions.Add(session.ID, session); evicted {
		sm.logger.Info("session capacity reached, evicted least recently used session")
	}
	sessionsCreatedTotal.Inc()
	sessionsActive.Set(float64(sm.sessions.Len()))

	sm.logger.Info("session created",
		zap.String("session_id", session.ID.String()),
		zap.Int("qubits", req.Qubits),
	)

	return session.view(), nil
}

// GetSession returns a snapshot of a session
func (sm *SessionManager) GetSession(sessionID uuid.UUID) (*models.SessionView, error) {
	return sm.withSession(sessionID, "", func(*Session) bool { return false })
}

// DeleteSession discards a session
func (sm *SessionManager) DeleteSession(sessionID uuid.UUID) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if !sm.sessions.Remove(sessionID) {
		return models.ErrSessionNotFound
	}
	sessionsActive.Set(float64(sm.sessions.Len()))

	return nil
}

// AddQubit appends a lane. Past MaxQubits the call changes nothing.
func (sm *SessionManager) AddQubit(sessionID uuid.UUID) (*models.SessionView, error) {
	return sm.withSession(sessionID, "add_qubit", func(s *Session) bool {
		if sm.opts.MaxQubits > 0 && s.Circuit.NumQubits() >= sm.opts.MaxQubits {
			return false
		}
		s.Circuit.AddLane()
		return true
	})
}

// RemoveQubit drops the last lane; the final lane is never removed
func (sm *SessionManager) RemoveQubit(sessionID uuid.UUID) (*models.SessionView, error) {
	return sm.withSession(sessionID, "remove_qubit", func(s *Session) bool {
		return s.Circuit.RemoveLane()
	})
}

// SelectGate sets the palette gate used by PlaceGate. GateNone clears it.
func (sm *SessionManager) SelectGate(sessionID uuid.UUID, kind quantum.GateKind) (*models.SessionView, error) {
	if kind != quantum.GateNone && !kind.Valid() {
		return nil, errors.Wrapf(quantum.ErrUnknownGate, "kind %d", int(kind))
	}

	return sm.withSession(sessionID, "select_gate", func(s *Session) bool {
		s.Selected = kind
		return true
	})
}

// PlaceGate adds a gate to a lane. With kind == GateNone the session's
// selected gate is used; with nothing selected, or an unknown lane, the
// circuit is left as is.
func (sm *SessionManager) PlaceGate(sessionID uuid.UUID, laneID string, kind quantum.GateKind) (*models.SessionView, error) {
	return sm.withSession(sessionID, "place_gate", func(s *Session) bool {
		if kind == quantum.GateNone {
			kind = s.Selected
		}
		_, placed := s.Circuit.PlaceGate(laneID, kind)
		return placed
	})
}

// RemoveGate removes a placed gate if it is on the lane
func (sm *SessionManager) RemoveGate(sessionID uuid.UUID, laneID, gateID string) (*models.SessionView, error) {
	return sm.withSession(sessionID, "remove_gate", func(s *Session) bool {
		return s.Circuit.RemoveGate(laneID, gateID)
	})
}

// Reset clears all gates and the last results, and returns to the builder
func (sm *SessionManager) Reset(sessionID uuid.UUID) (*models.SessionView, error) {
	return sm.withSession(sessionID, "reset", func(s *Session) bool {
		s.Circuit.Reset()
		s.clearResults()
		s.ActiveView = models.ViewBuilder
		return true
	})
}

// Run measures the circuit, replacing any earlier results, and switches the
// session to the results view
func (sm *SessionManager) Run(sessionID uuid.UUID) (*models.SessionView, error) {
	return sm.withSession(sessionID, "", func(s *Session) bool {
		start := sm.now()

		mode := ClassifyRun(s.Circuit)
		outcomes := sm.backend.Run(s.Circuit)

		s.Outcomes = outcomes
		s.Results = results.Aggregate(outcomes)
		s.RunMode = mode
		s.RanAt = start
		s.ActiveView = models.ViewResults

		runsTotal.WithLabelValues(string(mode)).Inc()
		runDuration.Observe(sm.now().Sub(start).Seconds())

		sm.logger.Debug("circuit run",
			zap.String("session_id", s.ID.String()),
			zap.String("backend", sm.backend.Name()),
			zap.String("mode", string(mode)),
			zap.Int("outcomes", len(outcomes)),
			zap.Int("distinct", len(s.Results.Entries)),
		)
		return true
	})
}

// SetView switches between the builder and results screens
func (sm *SessionManager) SetView(sessionID uuid.UUID, view models.View) (*models.SessionView, error) {
	if !view.Valid() {
		return nil, models.ErrInvalidView
	}

	return sm.withSession(sessionID, "", func(s *Session) bool {
		s.ActiveView = view
		return true
	})
}

// ExportQASM returns the session circuit as OpenQASM together with its
// fingerprint
func (sm *SessionManager) ExportQASM(sessionID uuid.UUID) (string, string, error) {
	var qasm, fingerprint string
	_, err := sm.withSession(sessionID, "", func(s *Session) bool {
		qasm = ExportQASM(s.Circuit)
		fingerprint = Fingerprint(s.Circuit)
		return false
	})
	if err != nil {
		return "", "", err
	}

	return qasm, fingerprint, nil
}

// SessionCount returns the number of sessions held, expired or not
func (sm *SessionManager) SessionCount() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	return sm.sessions.Len()
}

// CleanupExpiredSessions removes sessions idle past their TTL
func (sm *SessionManager) CleanupExpiredSessions() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := sm.now()
	removed := 0

	for _, id := range sm.sessions.Keys() {
		session, ok := sm.sessions.Peek(id)
		if ok && now.After(session.ExpiresAt) {
			sm.sessions.Remove(id)
			removed++
		}
	}

	if removed > 0 {
		sessionsActive.Set(float64(sm.sessions.Len()))
		sm.logger.Info("expired sessions removed", zap.Int("count", removed))
	}

	return removed
}

// withSession runs fn on a live session under the manager lock. fn reports
// whether it changed anything; op, when set, labels the mutation metric.
func (sm *SessionManager) withSession(sessionID uuid.UUID, op string, fn func(s *Session) bool) (*models.SessionView, error) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions.Get(sessionID)
	if !exists {
		return nil, models.ErrSessionNotFound
	}

	now := sm.now()
	if now.After(session.ExpiresAt) {
		sm.sessions.Remove(sessionID)
		sessionsActive.Set(float64(sm.sessions.Len()))
		return nil, models.ErrSessionExpired
	}

	applied := fn(session)
	session.LastActive = now
	session.ExpiresAt = now.Add(sm.opts.SessionTTL)

	if op != "" {
		mutationsTotal.WithLabelValues(op, boolLabel(applied)).Inc()
		if applied {
			sm.logger.Debug("circuit mutated",
				zap.String("session_id", sessionID.String()),
				zap.String("op", op),
				zap.String("state", session.Circuit.State()),
			)
		}
	}

	return session.view(), nil
}

func (s *Session) clearResults() {
	s.Outcomes = nil
	s.Results = nil
	s.RunMode = ""
	s.RanAt = time.Time{}
}

func (s *Session) view() *models.SessionView {
	lanes := s.Circuit.Lanes()
	qubits := make([]models.LaneView, len(lanes))
	for i, l := range lanes {
		gates := make([]models.GateView, len(l.Gates))
		for j, g := range l.Gates {
			gates[j] = models.GateView{ID: g.ID, Gate: g.Kind.String(), Order: g.Order}
		}
		qubits[i] = models.LaneView{ID: l.ID, Gates: gates}
	}

	v := &models.SessionView{
		SessionID:   s.ID,
		Qubits:      qubits,
		State:       s.Circuit.State(),
		ActiveView:  s.ActiveView,
		Fingerprint: Fingerprint(s.Circuit),
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
	if s.Selected.Valid() {
		v.SelectedGate = s.Selected.String()
	}

	if s.Outcomes != nil {
		outcomes := make([]quantum.Outcome, len(s.Outcomes))
		copy(outcomes, s.Outcomes)
		v.Results = &models.ResultsView{
			Outcomes:    outcomes,
			Measured:    s.RunMode != RunNoMeasurement,
			Mode:        string(s.RunMode),
			Frequencies: s.Results,
			RanAt:       s.RanAt,
		}
	}

	return v
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
