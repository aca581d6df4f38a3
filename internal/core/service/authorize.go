package service

import (
	"fmt"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/metrics"
)

// authorize is the one choke point between services and the policy engine:
// it evaluates the decision, records it, and converts a denial into the
// matching domain sentinel so the transport layer maps it to the right
// status code. Returns nil when allowed.
func authorize(actor authz.Actor, action authz.Action, res authz.Resource) error {
	d := authz.Decide(actor, action, res)
	outcome := "allow"
	if !d.Allowed {
		outcome = "deny"
	}
	metrics.AuthzDecisionsTotal.WithLabelValues(string(action), outcome).Inc()
	if d.Allowed {
		return nil
	}
	metrics.AuthzDenialsTotal.WithLabelValues(string(d.Reason)).Inc()

	switch d.Reason {
	case authz.ReasonNotAuthenticated:
		return domain.ErrNotAuthenticated
	case authz.ReasonNotFound:
		// No relationship to the project: indistinguishable from a missing
		// project.
		return domain.ErrProjectNotFound
	default:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, d.Detail)
	}
}

// actorRef describes the acting principal for audit entries.
func actorRef(actor authz.Actor) (kind, id string) {
	if actor.Kind == authz.ActorAPIKey {
		return "api_key", actor.KeyID
	}
	return "user", actor.UserID
}
