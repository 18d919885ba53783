package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditAction classifies a mutating request for the audit trail
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionOther  AuditAction = "other"
)

// AuditEntry is one row of the audit trail. Entries are written asynchronously
// and never block the request path.
type AuditEntry struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"company_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	UserRole  string      `json:"user_role,omitempty"`
	Action    AuditAction `json:"action"`
	Resource  string      `json:"resource"`
	Method    string      `json:"method"`
	Path      string      `json:"path"`
	Status    int         `json:"status"`
	IPAddress string      `json:"ip_address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuditConfig holds configuration for the audit trail
type AuditConfig struct {
	// DB is the PostgreSQL pool audit rows are written to. Nil disables writes
	// but the trail still passes through the recorder, which tests use.
	DB *pgxpool.Pool
	// BufferSize caps the async buffer; full buffer drops entries
	BufferSize int
	// FlushInterval is how often buffered entries are written
	FlushInterval time.Duration
	// SkipPaths lists paths that are never audited
	SkipPaths []string
}

// AuditRecorder buffers audit entries and writes them in the background
type AuditRecorder struct {
	config AuditConfig
	buffer chan *AuditEntry
	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once

	mu        sync.Mutex
	collected []*AuditEntry
	collect   bool
}

// NewAuditRecorder creates a recorder and starts its background writer
func NewAuditRecorder(config AuditConfig) *AuditRecorder {
	if config.BufferSize <= 0 {
		config.BufferSize = 1000
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = 5 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &AuditRecorder{
		config: config,
		buffer: make(chan *AuditEntry, config.BufferSize),
		cancel: cancel,
	}

	r.wg.Add(1)
	go r.worker(ctx)
	return r
}

// Record buffers an entry without blocking; a full buffer drops it
func (r *AuditRecorder) Record(entry *AuditEntry) {
	select {
	case r.buffer <- entry:
	default:
	}
}

// Close flushes buffered entries and stops the writer
func (r *AuditRecorder) Close() {
	r.once.Do(func() {
		r.cancel()
		close(r.buffer)
		r.wg.Wait()
	})
}

// Collect switches the recorder to collecting entries in memory instead of
// writing them. Tests use this.
func (r *AuditRecorder) Collect() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collect = true
	r.collected = nil
}

// Collected returns entries gathered while collecting
func (r *AuditRecorder) Collected() []*AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*AuditEntry, len(r.collected))
	copy(out, r.collected)
	return out
}

func (r *AuditRecorder) worker(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.FlushInterval)
	defer ticker.Stop()

	batch := make([]*AuditEntry, 0, 100)

	for {
		select {
		case entry, ok := <-r.buffer:
			if !ok {
				r.flush(batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= 100 {
				r.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			r.flush(batch)
			batch = batch[:0]
		case <-ctx.Done():
			r.flush(batch)
			return
		}
	}
}

func (r *AuditRecorder) flush(entries []*AuditEntry) {
	if len(entries) == 0 {
		return
	}

	r.mu.Lock()
	if r.collect {
		r.collected = append(r.collected, entries...)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	if r.config.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := `
		INSERT INTO audit_logs (id, company_id, user_id, user_role, action, resource, method, path, status, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, entry := range entries {
		// Failed audit writes must not affect the application
		_, _ = r.config.DB.Exec(ctx, query,
			entry.ID, entry.CompanyID, entry.UserID, entry.UserRole,
			string(entry.Action), entry.Resource, entry.Method, entry.Path,
			entry.Status, entry.IPAddress, entry.CreatedAt,
		)
	}
}

// Audit records every mutating request after it completes. Reads are not
// audited.
func Audit(recorder *AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		for _, path := range recorder.config.SkipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		c.Next()

		userID, _ := GetUserID(c)
		role, _ := GetRole(c)
		companyID, _ := GetEffectiveCompany(c)

		recorder.Record(&AuditEntry{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			UserID:    userID,
			UserRole:  role.String(),
			Action:    actionForMethod(c.Request.Method),
			Resource:  resourceFromPath(c.Request.URL.Path),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IPAddress: c.ClientIP(),
			CreatedAt: time.Now(),
		})
	}
}

func actionForMethod(method string) AuditAction {
	switch method {
	case "POST":
		return AuditActionCreate
	case "PUT", "PATCH":
		return AuditActionUpdate
	case "DELETE":
		return AuditActionDelete
	default:
		return AuditActionOther
	}
}

// resourceFromPath extracts the first meaningful path segment after the API
// version prefix, e.g. /api/v1/venues/123 -> venues
func resourceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == "v1" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}
