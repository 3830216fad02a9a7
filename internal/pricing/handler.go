package pricing

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"innkeeper/internal/core"
	"innkeeper/internal/settings"
)

// Handler exposes the calculator over HTTP. Sessions live in memory
// and do not survive a restart.
type Handler struct {
	events   core.EventReader
	settings *settings.Service
	client   AnalysisClient

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewHandler(events core.EventReader, settingsService *settings.Service, client AnalysisClient) *Handler {
	return &Handler{
		events:   events,
		settings: settingsService,
		client:   client,
		sessions: make(map[string]*Session),
	}
}

// --------------------------------------------------
// Open a calculator session for an event
// --------------------------------------------------
func (h *Handler) CreateSession(c *gin.Context) {
	var req struct {
		EventID int `json:"event_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record, err := h.events.GetEventRecord(c.Request.Context(), req.EventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	policy := h.settings.Policy(c.Request.Context())
	session := NewSession(snapshotFromRecord(record), policy, h.client)

	id := uuid.New().String()
	h.mu.Lock()
	h.sessions[id] = session
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"snapshot":   session.Snapshot(),
	})
}

func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": session.Snapshot()})
}

// --------------------------------------------------
// Apply one field edit
// --------------------------------------------------
func (h *Handler) EditSession(c *gin.Context) {
	session, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Accept both a JSON number and a quoted string; anything
	// non-numeric coerces to 0 inside Set.
	raw := strings.Trim(string(req.Value), `"`)
	if err := session.Set(req.Field, raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": session.Snapshot()})
}

func (h *Handler) CloseSession(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	session, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	session.Close()
	c.JSON(http.StatusOK, gin.H{"closed": id})
}

// --------------------------------------------------
// Stateless estimate (no session, no baseline fetch)
// --------------------------------------------------
func (h *Handler) Estimate(c *gin.Context) {
	var req struct {
		State    CalculatorState `json:"state"`
		Baseline *Baseline       `json:"baseline,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	policy := h.settings.Policy(c.Request.Context())
	costs := ComputeCosts(req.State)

	c.JSON(http.StatusOK, gin.H{
		"costs":          costs,
		"recommendation": Recommend(costs, req.Baseline, policy.VATPercent, req.State.ProfitMargin),
	})
}

func (h *Handler) lookup(id string) (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, ok := h.sessions[id]
	return session, ok
}

func snapshotFromRecord(record *core.EventRecord) EventSnapshot {
	snapshot := EventSnapshot{
		GuestCount:           record.GuestCount,
		StartTime:            record.StartTime,
		EndTime:              record.EndTime,
		TravelDistanceMeters: record.TravelDistanceMeters,
		TravelDurationSec:    record.TravelDurationSec,
		Price:                record.Price,
	}
	if record.EventType != nil {
		snapshot.EventType = &EventType{
			Code:  record.EventType.Code,
			Label: record.EventType.Label,
		}
	}
	return snapshot
}
