package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// APIKeyService mints, lists, and revokes project API keys. The raw token is
// returned exactly once at creation; only its digest is stored.
type APIKeyService struct {
	keys     ports.APIKeyRepository
	cache    ports.APIKeyCacheInvalidator
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewAPIKeyService(keys ports.APIKeyRepository, cache ports.APIKeyCacheInvalidator, recorder ports.ActivityRecorder, logger zerolog.Logger) *APIKeyService {
	return &APIKeyService{keys: keys, cache: cache, recorder: recorder, logger: logger}
}

// Create mints a key with a role fixed for its lifetime and scoped to
// projectID forever.
func (s *APIKeyService) Create(ctx context.Context, actor authz.Actor, projectID, name, role string) (*domain.APIKey, string, error) {
	if err := authorize(actor, authz.ActionCreateAPIKey, authz.Resource{}); err != nil {
		return nil, "", err
	}
	if !domain.ValidKeyRole(role) {
		return nil, "", domain.ErrInvalidRole
	}

	token := generateKeyToken()
	key := &domain.APIKey{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		Role:      role,
		TokenHash: domain.HashAPIKeyToken(token),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.keys.Create(ctx, key); err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("project_id", projectID).Str("key_id", key.ID).Str("role", role).Msg("api key created")
	s.record(actor, projectID, "key.created", key.ID)
	return key, token, nil
}

func (s *APIKeyService) List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.APIKey, error) {
	if err := authorize(actor, authz.ActionListAPIKeys, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.keys.ListByProject(ctx, projectID)
}

// Revoke stamps the key and drops it from the resolver cache so it stops
// authenticating immediately on this node and within one cache TTL
// elsewhere. Revocation is permanent.
func (s *APIKeyService) Revoke(ctx context.Context, actor authz.Actor, projectID, keyID string) error {
	if err := authorize(actor, authz.ActionRevokeAPIKey, authz.Resource{}); err != nil {
		return err
	}

	key, err := s.keys.FindByID(ctx, projectID, keyID)
	if err != nil {
		return err
	}

	if err := s.keys.Revoke(ctx, projectID, keyID, time.Now().UTC()); err != nil {
		return err
	}
	if err := s.cache.Forget(ctx, key.TokenHash); err != nil {
		s.logger.Warn().Err(err).Str("key_id", keyID).Msg("failed to drop revoked key from cache")
	}

	s.logger.Info().Str("project_id", projectID).Str("key_id", keyID).Msg("api key revoked")
	s.record(actor, projectID, "key.revoked", keyID)
	return nil
}

// generateKeyToken returns a fresh raw token in the lk_<hex> format.
func generateKeyToken() string {
	raw := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	return domain.APIKeyPrefix + raw
}

func (s *APIKeyService) record(actor authz.Actor, projectID, action, resource string) {
	kind, id := actorRef(actor)
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: projectID,
		ActorKind: kind,
		ActorID:   id,
		Action:    action,
		Resource:  resource,
		CreatedAt: time.Now().UTC(),
	})
}
