// Package models contains domain entities persisted by the gateway
package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// AuditLog is an append-only record of gateway actions and fan-out outcomes.
// It is the out-of-band channel for failures that must never surface to the
// HTTP caller (owner lookups, follower paging, batch dispatch).
type AuditLog struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UUID         string          `gorm:"size:36;uniqueIndex:idx_audit_uuid" json:"uuid"`
	UserID       *string         `gorm:"size:64;index:idx_audit_user_id" json:"user_id,omitempty"`
	ArtistID     *string         `gorm:"size:64;index:idx_audit_artist_id" json:"artist_id,omitempty"`
	ReleaseID    *string         `gorm:"size:64;index:idx_audit_release_id" json:"release_id,omitempty"`
	Action       string          `gorm:"size:64;not null;index:idx_audit_action" json:"action"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	FollowerIDs  pq.StringArray  `gorm:"type:text[]" json:"follower_ids,omitempty"`
	IPAddress    *string         `gorm:"type:inet" json:"ip_address,omitempty"`
	UserAgent    *string         `gorm:"type:text" json:"user_agent,omitempty"`
	RequestID    *string         `gorm:"size:255;index:idx_audit_request_id" json:"request_id,omitempty"`
	Metadata     json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	Success      *bool           `gorm:"default:true;index:idx_audit_success" json:"success"`
	ErrorMessage *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP;index:idx_audit_created_at" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}

// Audit action constants
const (
	AuditActionReleaseCreated            = "release_created"
	AuditActionReleaseCreationFailed     = "release_creation_failed"
	AuditActionOwnerLookupFailed         = "owner_lookup_failed"
	AuditActionFollowerPageFetchFailed   = "follower_page_fetch_failed"
	AuditActionNotificationBatchSent     = "notification_batch_sent"
	AuditActionNotificationBatchFailed   = "notification_batch_failed"
	AuditActionReleaseMetricRecordFailed = "release_metric_record_failed"
	AuditActionFanoutCompleted           = "fanout_completed"
	AuditActionSongCreated               = "song_created"
	AuditActionPlaylistCreated           = "playlist_created"
)

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID            *uint
	UserID        *string
	ArtistID      *string
	ReleaseID     *string
	Action        *string
	Success       *bool
	RequestID     *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (a *AuditLog) IsFailed() bool {
	return a.Success != nil && !*a.Success
}
