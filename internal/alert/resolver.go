package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/emergencycontact"
	"tora-app.io/tora/ent/user"
	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
)

// Recipients is the resolved target set for one child's alert.
type Recipients struct {
	ParentID string           `json:"parent_id"`
	Contacts []notify.Contact `json:"contacts"`
}

// RecipientResolver resolves the owning parent and emergency contacts for
// a child. Lookups are cached briefly; contact edits within the TTL reach
// the next alert, which is acceptable for this data.
type RecipientResolver struct {
	client *ent.Client
	cache  *redis.Client // nil disables caching
	ttl    time.Duration
}

// NewRecipientResolver creates a resolver. Pass a nil cache to resolve
// from the store on every call.
func NewRecipientResolver(client *ent.Client, cache *redis.Client, ttl time.Duration) *RecipientResolver {
	return &RecipientResolver{client: client, cache: cache, ttl: ttl}
}

// Child loads a child account by ID.
func (r *RecipientResolver) Child(ctx context.Context, childID string) (*ent.User, error) {
	child, err := r.client.User.Query().
		Where(
			user.IDEQ(childID),
			user.RoleEQ(user.RoleCHILD),
			user.ActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrChildNotFoundf(childID)
		}
		return nil, fmt.Errorf("query child: %w", err)
	}
	return child, nil
}

// ChildIDs returns the IDs of a parent's active children.
func (r *RecipientResolver) ChildIDs(ctx context.Context, parentID string) ([]string, error) {
	ids, err := r.client.User.Query().
		Where(
			user.ParentIDEQ(parentID),
			user.RoleEQ(user.RoleCHILD),
			user.ActiveEQ(true),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	return ids, nil
}

// Resolve returns the parent and ordered emergency contacts for a child.
// A child without a parent yields an empty result, not an error; a
// missing parent must not abort the alert pipeline, the push channel can
// still reach the child's own devices.
func (r *RecipientResolver) Resolve(ctx context.Context, childID string) (Recipients, error) {
	if cached, ok := r.fromCache(ctx, childID); ok {
		return cached, nil
	}

	child, err := r.Child(ctx, childID)
	if err != nil {
		return Recipients{}, err
	}
	if child.ParentID == "" {
		logger.Warn("Child has no parent, alert limited to child devices",
			zap.String("child_id", childID),
		)
		return Recipients{}, nil
	}

	rows, err := r.client.EmergencyContact.Query().
		Where(
			emergencycontact.ParentIDEQ(child.ParentID),
			emergencycontact.ActiveEQ(true),
			emergencycontact.ReceiveAlertsEQ(true),
		).
		Order(
			ent.Asc(emergencycontact.FieldPriority),
			ent.Asc(emergencycontact.FieldName),
		).
		All(ctx)
	if err != nil {
		logger.Warn("Emergency contact lookup failed, alert limited to push",
			zap.String("child_id", childID),
			zap.Error(err),
		)
		return Recipients{ParentID: child.ParentID}, nil
	}

	recipients := Recipients{ParentID: child.ParentID}
	for _, row := range rows {
		recipients.Contacts = append(recipients.Contacts, notify.Contact{
			ID:            row.ID,
			Name:          row.Name,
			Phone:         row.Phone,
			Email:         row.Email,
			Relationship:  row.Relationship,
			ReceiveAlerts: row.ReceiveAlerts,
			Priority:      row.Priority,
		})
	}

	r.toCache(ctx, childID, recipients)
	return recipients, nil
}

// InvalidateCache drops the cached recipient set for all children of a
// parent, called after contact mutations.
func (r *RecipientResolver) InvalidateCache(ctx context.Context, parentID string) {
	if r.cache == nil {
		return
	}
	childIDs, err := r.ChildIDs(ctx, parentID)
	if err != nil {
		logger.Warn("Cache invalidation lookup failed", zap.Error(err))
		return
	}
	for _, id := range childIDs {
		if err := r.cache.Del(ctx, recipientCacheKey(id)).Err(); err != nil {
			logger.Warn("Cache invalidation failed",
				zap.String("child_id", id),
				zap.Error(err),
			)
		}
	}
}

func recipientCacheKey(childID string) string {
	return "tora:recipients:" + childID
}

func (r *RecipientResolver) fromCache(ctx context.Context, childID string) (Recipients, bool) {
	if r.cache == nil {
		return Recipients{}, false
	}
	raw, err := r.cache.Get(ctx, recipientCacheKey(childID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Recipient cache read failed", zap.Error(err))
		}
		return Recipients{}, false
	}
	var recipients Recipients
	if err := json.Unmarshal(raw, &recipients); err != nil {
		logger.Warn("Recipient cache decode failed", zap.Error(err))
		return Recipients{}, false
	}
	return recipients, true
}

func (r *RecipientResolver) toCache(ctx context.Context, childID string, recipients Recipients) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(recipients)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, recipientCacheKey(childID), raw, r.ttl).Err(); err != nil {
		logger.Warn("Recipient cache write failed", zap.Error(err))
	}
}
