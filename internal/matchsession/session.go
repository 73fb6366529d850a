// Package matchsession holds the client-local state of one active match being
// scored: the two selected teams, the running scores, and the match record the
// backend returned at creation. Local state is soft truth; the backend is hard
// truth. Score persistence is deliberately fire-and-forget with no rollback,
// so a failed sync leaves the two out of step until the match is refetched.
package matchsession

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// Side identifies which team's score an operation touches.
type Side int

const (
	Home Side = iota
	Away
)

func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "away"
}

// State is the lifecycle of a session. There is no transition from Ended back
// to Active: scoring again means creating a new session.
type State int

const (
	Idle State = iota
	Active
	Ended
)

// ErrNotActive is returned by score and end-match operations outside the
// Active state.
var ErrNotActive = errors.New("matchsession: no active match session")

// Backend is the slice of the gateway the session needs.
type Backend interface {
	UpdateScore(ctx context.Context, matchID int, update scoreboard.ScoreUpdate, token string) error
	EndMatch(ctx context.Context, matchID int, token string) error
}

// Session mirrors one active match. It is driven from a single goroutine (the
// interactive loop); the only concurrency it creates is the fire-and-forget
// score sync, which operates on copied values.
type Session struct {
	backend Backend
	token   string

	match scoreboard.Match
	teamA scoreboard.Team
	teamB scoreboard.Team

	scoreA int
	scoreB int
	state  State

	syncs sync.WaitGroup
}

// New seeds an Active session from a freshly created match and the two
// selected teams, with both scores at zero.
func New(backend Backend, token string, match scoreboard.Match, teamA, teamB scoreboard.Team) *Session {
	return &Session{
		backend: backend,
		token:   token,
		match:   match,
		teamA:   teamA,
		teamB:   teamB,
		state:   Active,
	}
}

// State reports the session lifecycle state.
func (s *Session) State() State { return s.state }

// Match returns the match record the session was seeded with.
func (s *Session) Match() scoreboard.Match { return s.match }

// Scores returns the current local scores, home then away.
func (s *Session) Scores() (int, int) { return s.scoreA, s.scoreB }

// Score returns the current local score for one side.
func (s *Session) Score(side Side) int {
	if side == Home {
		return s.scoreA
	}
	return s.scoreB
}

// TeamName returns the display name for one side.
func (s *Session) TeamName(side Side) string {
	if side == Home {
		return s.teamA.Name
	}
	return s.teamB.Name
}

// Increment bumps the local score for side by one and dispatches a best-effort
// persist of both scores. The local update is synchronous and is never rolled
// back if the persist fails; the failure is only logged.
func (s *Session) Increment(side Side) (int, error) {
	if s.state != Active {
		return 0, ErrNotActive
	}
	if side == Home {
		s.scoreA++
	} else {
		s.scoreB++
	}
	s.dispatchSync()
	return s.Score(side), nil
}

// Decrement lowers the local score for side by one. At zero it is a no-op
// that leaves the score at zero and dispatches no backend call.
func (s *Session) Decrement(side Side) (int, error) {
	if s.state != Active {
		return 0, ErrNotActive
	}
	if s.Score(side) == 0 {
		return 0, nil
	}
	if side == Home {
		s.scoreA--
	} else {
		s.scoreB--
	}
	s.dispatchSync()
	return s.Score(side), nil
}

// dispatchSync persists both current scores without blocking the caller.
// Updates are issued in press order but carry no sequence number, so the
// backend may apply two rapid updates out of order.
func (s *Session) dispatchSync() {
	update := scoreboard.ScoreUpdate{ScoreA: s.scoreA, ScoreB: s.scoreB}
	matchID := s.match.ID
	s.syncs.Add(1)
	go func() {
		defer s.syncs.Done()
		if err := s.backend.UpdateScore(context.Background(), matchID, update, s.token); err != nil {
			log.Warn().Err(err).Int("match", matchID).
				Int("scoreA", update.ScoreA).Int("scoreB", update.ScoreB).
				Msg("score sync failed, local score kept")
		}
	}()
}

// End marks the match ended on the backend. On success the session moves to
// Ended; on failure it stays Active and the call may simply be re-invoked.
func (s *Session) End(ctx context.Context) error {
	if s.state != Active {
		return ErrNotActive
	}
	if s.match.ID == 0 {
		return fmt.Errorf("End: match identifier not known")
	}
	if err := s.backend.EndMatch(ctx, s.match.ID, s.token); err != nil {
		return fmt.Errorf("End: %w", err)
	}
	s.state = Ended
	return nil
}

// Teardown waits out any in-flight score syncs and returns the session to
// Idle. In-flight syncs are never cancelled, only drained.
func (s *Session) Teardown() {
	s.syncs.Wait()
	s.state = Idle
}

// FormatScore renders a score the way the scoreboard displays it: zero-padded
// below ten ("01"), plain above.
func FormatScore(n int) string {
	if n < 10 {
		return fmt.Sprintf("0%d", n)
	}
	return strconv.Itoa(n)
}

// LiveURL is the public page where a shared match can be followed.
func LiveURL(matchCode string) string {
	return "https://scoreboard.xyzdemowebsites.com/match/" + matchCode
}

// ShareText formats the message dispatched through every share channel.
func (s *Session) ShareText() string {
	code := s.match.MatchCode
	if code == "" {
		code = "Unknown"
	}
	return fmt.Sprintf("Match Details\nMatch ID: %s\n%s vs %s\n\nCheck live: %s",
		code, s.teamA.Name, s.teamB.Name, LiveURL(code))
}
