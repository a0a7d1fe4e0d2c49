package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"skillscore-backend/lib/profileurl"
	"skillscore-backend/lib/scrapers/skillsboost"
	"skillscore-backend/services/roster"
	"skillscore-backend/services/scoring"
)

var tracer = otel.Tracer("services/calculator")

// ErrNotEnrolled is returned for profiles that are valid but absent
// from the roster.
var ErrNotEnrolled = errors.New("profile is not enrolled in the program")

// Service wires the pipeline together: enrollment gate, fetch,
// normalize, score. The config and allow-list are loaded once and
// treated as immutable, so concurrent requests need no locking.
type Service struct {
	client *skillsboost.Client
	roster roster.Store
	config scoring.Config
	allow  scoring.AllowList
	now    func() time.Time
}

type ServiceOptions struct {
	Client *skillsboost.Client
	Roster roster.Store
	Config scoring.Config
	Allow  scoring.AllowList
	// Now overrides the clock, used by tests. nil means time.Now.
	Now func() time.Time
}

func NewService(opts ServiceOptions) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		client: opts.Client,
		roster: opts.Roster,
		config: opts.Config,
		allow:  opts.Allow,
		now:    now,
	}
}

// CalculateResult is the full response for a scored profile.
type CalculateResult struct {
	Participant roster.Participant `json:"participant"`
	Profile     ProfileSummary     `json:"profile"`
	scoring.Result
}

type ProfileSummary struct {
	URL      string               `json:"url"`
	UserInfo skillsboost.UserInfo `json:"userInfo"`
	Stats    skillsboost.Stats    `json:"stats"`
}

// CalculatePoints runs the whole pipeline for one profile url. The
// enrollment check runs before any network call so unenrolled urls
// cost nothing.
func (s *Service) CalculatePoints(ctx context.Context, profileUrl string) (CalculateResult, error) {
	ctx, span := tracer.Start(ctx, "calculator:CalculatePoints")
	defer span.End()

	canonical, ok := profileurl.Normalize(profileUrl)
	if !ok {
		span.SetStatus(codes.Error, "invalid profile url")
		return CalculateResult{}, fmt.Errorf("%w: %q", skillsboost.ErrInvalidURL, profileUrl)
	}
	span.SetAttributes(attribute.String("profile_url", canonical))

	if !s.roster.IsEnrolled(canonical) {
		span.SetStatus(codes.Error, "not enrolled")
		return CalculateResult{}, ErrNotEnrolled
	}

	raw, err := s.client.FetchProfile(ctx, canonical)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return CalculateResult{}, err
	}

	normalized := scoring.Normalize(raw)
	result := scoring.Score(normalized, s.config, s.allow, s.now())

	participant, _ := s.lookupParticipant(canonical)

	slog.InfoContext(ctx, "calculated points",
		"profile", canonical,
		"total", result.TotalPoints,
		"badges", result.Breakdown.Badges.Count,
		"games", result.Breakdown.Games.Count,
	)

	return CalculateResult{
		Participant: participant,
		Profile: ProfileSummary{
			URL:      normalized.ProfileURL,
			UserInfo: normalized.UserInfo,
			Stats:    normalized.Stats,
		},
		Result: result,
	}, nil
}

// ProfileStatus is the outcome of an accessibility probe.
type ProfileStatus string

const (
	StatusAccessible ProfileStatus = "accessible"
	StatusPrivate    ProfileStatus = "private"
	StatusError      ProfileStatus = "error"
)

type CheckResult struct {
	Status ProfileStatus `json:"status"`
	// human-readable detail for private and error outcomes
	Detail string `json:"detail,omitempty"`
}

// CheckProfile probes whether a profile url is publicly readable.
// There is no enrollment gate here: the probe exists so participants
// can verify their privacy settings before enrolling.
func (s *Service) CheckProfile(ctx context.Context, profileUrl string) (CheckResult, error) {
	ctx, span := tracer.Start(ctx, "calculator:CheckProfile")
	defer span.End()

	canonical, ok := profileurl.Normalize(profileUrl)
	if !ok {
		span.SetStatus(codes.Error, "invalid profile url")
		return CheckResult{}, fmt.Errorf("%w: %q", skillsboost.ErrInvalidURL, profileUrl)
	}

	_, err := s.client.FetchProfile(ctx, canonical)
	switch {
	case err == nil:
		return CheckResult{Status: StatusAccessible}, nil
	case errors.Is(err, skillsboost.ErrPrivateProfile):
		return CheckResult{
			Status: StatusPrivate,
			Detail: "profile is set to private, update visibility settings",
		}, nil
	default:
		span.RecordError(err)
		return CheckResult{Status: StatusError, Detail: err.Error()}, nil
	}
}

// Participants returns the current roster.
func (s *Service) Participants() []roster.Participant {
	return s.roster.List()
}

// ScoringConfig exposes the active rubric for transparency.
func (s *Service) ScoringConfig() scoring.Config {
	return s.config
}

func (s *Service) lookupParticipant(profileUrl string) (roster.Participant, bool) {
	id, ok := profileurl.ExtractID(profileUrl)
	if !ok {
		return roster.Participant{}, false
	}
	return s.roster.GetByProfileID(id)
}
