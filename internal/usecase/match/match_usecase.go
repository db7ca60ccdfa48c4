// Package match is the bidirectional query facade over the matching engine:
// properties for an investor, investors for a property. Both directions share
// the same scorer, ranking and pagination; they differ only in which side of
// the pair is fixed.
package match

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/matching"
	"github.com/lettora/lettora-backend/internal/repository"
)

type UseCase struct {
	preferenceRepo repository.PreferenceRepository
	propertyRepo   repository.PropertyRepository
	engine         *matching.Engine
	logger         *zap.Logger
}

func NewUseCase(
	preferenceRepo repository.PreferenceRepository,
	propertyRepo repository.PropertyRepository,
	engine *matching.Engine,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		preferenceRepo: preferenceRepo,
		propertyRepo:   propertyRepo,
		engine:         engine,
		logger:         logger,
	}
}

// PropertyMatchPage is one page of ranked properties for an investor.
type PropertyMatchPage struct {
	Properties     []domain.PropertyMatch `json:"properties"`
	Total          int                    `json:"total"`
	HasPreferences bool                   `json:"has_preferences"`
	Preferences    *domain.Criteria       `json:"preferences,omitempty"`
}

// InvestorMatchPage is one page of ranked investors for a property.
type InvestorMatchPage struct {
	Investors []domain.InvestorMatch `json:"investors"`
	Total     int                    `json:"total"`
}

// MatchPropertiesForInvestor scores the active catalog against the investor's
// active preference profile. An absent or empty profile short-circuits with
// HasPreferences=false before the catalog is ever read; that is the signal to
// prompt the investor to configure preferences, not an error.
func (uc *UseCase) MatchPropertiesForInvestor(ctx context.Context, investorID uuid.UUID, query domain.MatchQuery) (*PropertyMatchPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	profile, err := uc.preferenceRepo.GetActiveByInvestorID(ctx, investorID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return &PropertyMatchPage{Properties: []domain.PropertyMatch{}, HasPreferences: false}, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileLookup, err)
	}
	if profile.Criteria.IsEmpty() {
		return &PropertyMatchPage{Properties: []domain.PropertyMatch{}, HasPreferences: false}, nil
	}

	properties, err := uc.propertyRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLookup, err)
	}

	candidates := uc.scoreProperties(ctx, profile.Criteria, properties)
	page := matching.Rank(candidates, query)

	byID := make(map[uuid.UUID]*domain.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	scoredAt := time.Now().UTC()
	matches := make([]domain.PropertyMatch, 0, len(page.Items))
	for _, c := range page.Items {
		matches = append(matches, domain.PropertyMatch{
			Property: *byID[c.ID],
			Score:    c.Score,
			ScoredAt: scoredAt,
		})
	}

	uc.logger.Debug("matched properties for investor",
		zap.String("investor_id", investorID.String()),
		zap.Int("catalog_size", len(properties)),
		zap.Int("total", page.Total),
	)

	criteria := profile.Criteria
	return &PropertyMatchPage{
		Properties:     matches,
		Total:          page.Total,
		HasPreferences: true,
		Preferences:    &criteria,
	}, nil
}

// MatchInvestorsForProperty is the inverse query: the property is fixed and
// every investor holding an active, non-empty preference profile is iterated.
// Scores are identical to the forward direction for the same pair.
func (uc *UseCase) MatchInvestorsForProperty(ctx context.Context, propertyID uuid.UUID, query domain.MatchQuery) (*InvestorMatchPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLookup, err)
	}

	profiles, err := uc.preferenceRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileLookup, err)
	}

	// Empty-criteria profiles never match anything; drop them up front.
	kept := profiles[:0]
	for _, p := range profiles {
		if !p.Criteria.IsEmpty() {
			kept = append(kept, p)
		}
	}

	candidates := uc.scoreProfiles(ctx, kept, *property)
	page := matching.Rank(candidates, query)

	scoredAt := time.Now().UTC()
	matches := make([]domain.InvestorMatch, 0, len(page.Items))
	for _, c := range page.Items {
		matches = append(matches, domain.InvestorMatch{
			InvestorID: c.ID,
			Score:      c.Score,
			ScoredAt:   scoredAt,
		})
	}

	uc.logger.Debug("matched investors for property",
		zap.String("property_id", propertyID.String()),
		zap.Int("profiles", len(kept)),
		zap.Int("total", page.Total),
	)

	return &InvestorMatchPage{Investors: matches, Total: page.Total}, nil
}

// scoreProperties scores every catalog entry against one fixed criteria set.
// Candidates are independent, so the work is spread over a bounded pool and
// written back by index to keep the merge deterministic.
func (uc *UseCase) scoreProperties(ctx context.Context, criteria domain.Criteria, properties []*domain.Property) []matching.Candidate {
	candidates := make([]matching.Candidate, len(properties))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	scheduled := 0
	for i, p := range properties {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p *domain.Property) {
			defer wg.Done()
			defer func() { <-sem }()
			candidates[i] = matching.Candidate{
				ID:        p.ID,
				CreatedAt: p.CreatedAt,
				Score:     uc.engine.Score(criteria, *p),
			}
		}(i, p)
		scheduled = i + 1
	}
	wg.Wait()
	return candidates[:scheduled]
}

func (uc *UseCase) scoreProfiles(ctx context.Context, profiles []*domain.PreferenceProfile, property domain.Property) []matching.Candidate {
	candidates := make([]matching.Candidate, len(profiles))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	scheduled := 0
	for i, p := range profiles {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p *domain.PreferenceProfile) {
			defer wg.Done()
			defer func() { <-sem }()
			candidates[i] = matching.Candidate{
				ID:        p.InvestorID,
				CreatedAt: p.CreatedAt,
				Score:     uc.engine.Score(p.Criteria, property),
			}
		}(i, p)
		scheduled = i + 1
	}
	wg.Wait()
	return candidates[:scheduled]
}
