package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
	"github.com/localekit/localization-system/internal/metrics"
)

// TranslationService handles translation reads and writes. Writes are atomic
// upserts on (term, locale): two concurrent writers that both miss converge
// on one row, with the loser retried once as an update.
type TranslationService struct {
	terms        ports.TermRepository
	locales      ports.LocaleRepository
	translations ports.TranslationRepository
	recorder     ports.ActivityRecorder
	logger       zerolog.Logger
}

func NewTranslationService(terms ports.TermRepository, locales ports.LocaleRepository, translations ports.TranslationRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *TranslationService {
	return &TranslationService{terms: terms, locales: locales, translations: translations, recorder: recorder, logger: logger}
}

// Upsert writes the value of a term in one locale. The decision folds in
// both the term's lock snapshot and, for locale-scoped editors, the target
// locale; both must pass. The locale check runs before the fetch so that an
// unauthorized caller gets the same denial whether or not the term exists.
func (s *TranslationService) Upsert(ctx context.Context, actor authz.Actor, projectID, termID, locale, value string) (*domain.Translation, error) {
	if err := authorize(actor, authz.ActionTranslateLocale, authz.Resource{Locale: locale}); err != nil {
		return nil, err
	}

	term, err := s.terms.FindByID(ctx, projectID, termID)
	if err != nil {
		return nil, err
	}

	ok, err := s.locales.Exists(ctx, projectID, locale)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrLocaleNotFound
	}

	if err := authorize(actor, authz.ActionTranslateLocale, authz.Resource{TermLocked: term.Locked, Locale: locale}); err != nil {
		return nil, err
	}

	tr := &domain.Translation{
		TermID:    termID,
		ProjectID: projectID,
		Locale:    locale,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	created, err := s.translations.Upsert(ctx, tr)
	if errors.Is(err, domain.ErrTranslationConflict) {
		// Lost a creation race; the row exists now, retry as an update.
		metrics.TranslationUpsertsTotal.WithLabelValues("conflict_retried").Inc()
		created, err = s.translations.Upsert(ctx, tr)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("term_id", termID).Str("locale", locale).Msg("translation upsert failed")
		return nil, err
	}

	result := "updated"
	if created {
		result = "created"
	}
	metrics.TranslationUpsertsTotal.WithLabelValues(result).Inc()

	kind, id := actorRef(actor)
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: projectID,
		ActorKind: kind,
		ActorID:   id,
		Action:    "translation.updated",
		Resource:  termID + "/" + locale,
		CreatedAt: tr.UpdatedAt,
	})

	return tr, nil
}

// ListByLocale returns every translation of the project in one locale.
func (s *TranslationService) ListByLocale(ctx context.Context, actor authz.Actor, projectID, locale string) ([]*domain.Translation, error) {
	if err := authorize(actor, authz.ActionViewProject, authz.Resource{}); err != nil {
		return nil, err
	}

	ok, err := s.locales.Exists(ctx, projectID, locale)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrLocaleNotFound
	}

	return s.translations.ListByLocale(ctx, projectID, locale)
}
