// Package ratings maintains exponentially smoothed per-team power ratings,
// updated once per team per completed game, strictly in chronological order.
package ratings

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const (
	// Smoothing weights: new = old*carry + performance*blend. Order matters:
	// reprocessing games out of sequence silently corrupts ratings, which is
	// why updates carry sequence tokens.
	carryWeight = 0.9
	blendWeight = 0.1

	// opponentWeight scales how much of the opponent's current rating feeds
	// into the performance score
	opponentWeight = 0.25
)

// homeFieldBySport holds the fixed per-sport home-field constant in points
var homeFieldBySport = map[models.Sport]float64{
	models.SportNFL:   2.5,
	models.SportNCAAF: 3.0,
}

// HomeField returns the home-field constant for a sport
func HomeField(sport models.Sport) float64 {
	if v, ok := homeFieldBySport[sport]; ok {
		return v
	}
	return 2.5
}

// scopeKey identifies an independent ordering scope. Different sports and
// seasons never share a chronological sequence, so their writers need not be
// serialized against each other.
type scopeKey struct {
	Sport  models.Sport
	Season int
}

type teamKey struct {
	Sport models.Sport
	Team  string
}

type scope struct {
	mu      sync.Mutex
	lastSeq int64
	applied map[int64]struct{}
}

// Store is the keyed, mutable power rating store. Reads may happen from any
// goroutine; writes within one (sport, season) scope are serialized and must
// carry monotonically increasing sequence tokens.
type Store struct {
	mu     sync.RWMutex
	teams  map[teamKey]*models.TeamRating
	scopes map[scopeKey]*scope
	logger *logrus.Logger
}

// NewStore creates an empty rating store
func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		teams:  make(map[teamKey]*models.TeamRating),
		scopes: make(map[scopeKey]*scope),
		logger: logger,
	}
}

// Get returns a copy of a team's rating record, or a zero-seeded record for
// unseen teams (cold start is not an error).
func (s *Store) Get(sport models.Sport, team string) models.TeamRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.teams[teamKey{Sport: sport, Team: team}]; ok {
		return copyRating(r)
	}
	return copyRating(models.NewTeamRating(sport, team))
}

// Rating returns just the current rating value for a team (0.0 if unseen)
func (s *Store) Rating(sport models.Sport, team string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.teams[teamKey{Sport: sport, Team: team}]; ok {
		return r.Rating
	}
	return 0.0
}

// All returns copies of every rating record for external persistence
func (s *Store) All() []models.TeamRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TeamRating, 0, len(s.teams))
	for _, r := range s.teams {
		out = append(out, copyRating(r))
	}
	return out
}

// TeamCount reports how many teams the store currently tracks
func (s *Store) TeamCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}

// Seed installs a previously persisted rating record, replacing any existing
// entry for the team. The record's season/sequence watermark is restored into
// its ordering scope so results already folded in before persistence are
// rejected as replays, not applied a second time.
func (s *Store) Seed(rating models.TeamRating) error {
	if err := rating.Validate(); err != nil {
		return fmt.Errorf("refusing to seed invalid rating for %s: %w", rating.Team, err)
	}

	if rating.Season > 0 && rating.LastSequence >= 0 {
		sc := s.scope(scopeKey{Sport: rating.Sport, Season: rating.Season})
		sc.mu.Lock()
		if rating.LastSequence > sc.lastSeq {
			sc.lastSeq = rating.LastSequence
		}
		sc.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := copyRating(&rating)
	s.teams[teamKey{Sport: rating.Sport, Team: rating.Team}] = &r
	return nil
}

// UpdateResult holds the post-update ratings for both teams of a game
type UpdateResult struct {
	HomeRating float64
	AwayRating float64
}

// ApplyResult applies one completed game to both teams' ratings.
//
//	performance = score differential
//	            + opponent rating contribution
//	            + injury differential
//	            - home field adjustment (home team only)
//	new rating  = old*0.9 + performance*0.1
//
// The result's sequence token must be strictly greater than the last token
// applied in its (sport, season) scope; replays and out-of-order updates are
// rejected with ErrStaleSequence so double-application cannot corrupt the
// smoothed history.
func (s *Store) ApplyResult(result models.GameResult, homeInjuryImpact, awayInjuryImpact float64) (UpdateResult, error) {
	sc := s.scope(scopeKey{Sport: result.Sport, Season: result.Season})

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if _, seen := sc.applied[result.Sequence]; seen || result.Sequence <= sc.lastSeq {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"sport":    result.Sport,
				"season":   result.Season,
				"sequence": result.Sequence,
				"last":     sc.lastSeq,
			}).Warn("Rejected stale or replayed rating update")
		}
		return UpdateResult{}, fmt.Errorf("sequence %d in %s/%d: %w",
			result.Sequence, result.Sport, result.Season, models.ErrStaleSequence)
	}

	s.mu.Lock()
	home := s.ratingFor(result.Sport, result.HomeTeam)
	away := s.ratingFor(result.Sport, result.AwayTeam)

	scoreDiff := result.ScoreDifferential()
	homeField := HomeField(result.Sport)
	// Winning while injured is more impressive; beating an injured team less so
	injuryDiff := homeInjuryImpact - awayInjuryImpact

	homePerf := scoreDiff + away.Rating*opponentWeight + injuryDiff - homeField
	awayPerf := -scoreDiff + home.Rating*opponentWeight - injuryDiff

	applyPerformance(home, homePerf, result.Season, result.Sequence)
	applyPerformance(away, awayPerf, result.Season, result.Sequence)
	// Snapshot under s.mu: a writer in another scope may touch these teams
	// the moment the lock is released.
	homeRating, awayRating := home.Rating, away.Rating
	s.mu.Unlock()

	sc.lastSeq = result.Sequence
	sc.applied[result.Sequence] = struct{}{}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"home":        result.HomeTeam,
			"away":        result.AwayTeam,
			"home_rating": homeRating,
			"away_rating": awayRating,
			"sequence":    result.Sequence,
		}).Debug("Ratings updated")
	}
	return UpdateResult{HomeRating: homeRating, AwayRating: awayRating}, nil
}

func applyPerformance(r *models.TeamRating, performance float64, season int, sequence int64) {
	r.Rating = r.Rating*carryWeight + performance*blendWeight
	r.GamesPlayed++
	r.RatingHistory = append(r.RatingHistory, r.Rating)
	r.Season = season
	r.LastSequence = sequence
	r.UpdatedAt = time.Now().UTC()
}

// ratingFor returns the mutable record for a team, seeding unseen teams at
// 0.0. Caller must hold s.mu.
func (s *Store) ratingFor(sport models.Sport, team string) *models.TeamRating {
	key := teamKey{Sport: sport, Team: team}
	if r, ok := s.teams[key]; ok {
		return r
	}
	r := models.NewTeamRating(sport, team)
	s.teams[key] = r
	return r
}

func (s *Store) scope(key scopeKey) *scope {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sc, ok := s.scopes[key]; ok {
		return sc
	}
	sc := &scope{lastSeq: -1, applied: make(map[int64]struct{})}
	s.scopes[key] = sc
	return sc
}

func copyRating(r *models.TeamRating) models.TeamRating {
	out := *r
	out.RatingHistory = append([]float64(nil), r.RatingHistory...)
	return out
}
