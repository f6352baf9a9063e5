// Package businessflow contains the business logic for the gateway.
package businessflow

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/repository"
	"github.com/resonatefm/resonate-gateway/utils"
)

// ClientMetadata holds all client-related information for audit logging and request tracking
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// AuditEntry describes one audit-trail record written by a flow
type AuditEntry struct {
	Action       string
	Description  string
	Success      bool
	ErrorMessage *string
	UserID       *string
	ArtistID     *string
	ReleaseID    *string
	FollowerIDs  []string
	Extra        json.RawMessage
}

// writeAuditLog persists an audit entry. Audit failures are reported to the
// caller but flows treat them as best-effort and ignore the error.
func writeAuditLog(ctx context.Context, repo repository.AuditLogRepository, entry AuditEntry, metadata *ClientMetadata) error {
	if repo == nil {
		return nil
	}

	auditLog := &models.AuditLog{
		UUID:         uuid.New().String(),
		UserID:       entry.UserID,
		ArtistID:     entry.ArtistID,
		ReleaseID:    entry.ReleaseID,
		Action:       entry.Action,
		Description:  utils.ToPtr(entry.Description),
		FollowerIDs:  entry.FollowerIDs,
		Metadata:     entry.Extra,
		Success:      utils.ToPtr(entry.Success),
		ErrorMessage: entry.ErrorMessage,
		CreatedAt:    utils.UTCNow(),
	}

	if metadata != nil {
		if metadata.IPAddress != "" {
			auditLog.IPAddress = utils.ToPtr(metadata.IPAddress)
		}
		if metadata.UserAgent != "" {
			auditLog.UserAgent = utils.ToPtr(metadata.UserAgent)
		}
		if metadata.RequestID != "" {
			auditLog.RequestID = utils.ToPtr(metadata.RequestID)
		}
	}

	return repo.Save(ctx, auditLog)
}

// redisKey builds a namespaced cache key
func redisKey(cfg config.CacheConfig, parts ...string) string {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "resonate:gateway"
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// taskGroup tracks detached goroutines so graceful shutdown can drain them
type taskGroup struct {
	wg sync.WaitGroup
}

func (g *taskGroup) Go(fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		fn()
	}()
}

func (g *taskGroup) Wait() {
	g.wg.Wait()
}

// normalizePage applies defaults for forwarded pagination parameters
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
