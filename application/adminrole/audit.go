package adminrole

import (
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
)

// AuditEvent describes an applied transition of target, made by actor.
func AuditEvent(action constant.AuditAction, actorID, targetID uint64, from, to State, reason string, at time.Time) *model.AdminAuditEvent {
	return &model.AdminAuditEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		ActorID:    actorID,
		TargetID:   targetID,
		AdminType:  to.Type,
		FromStatus: from.Status,
		ToStatus:   to.Status,
		Reason:     reason,
		OccurredAt: at.UTC(),
	}
}
