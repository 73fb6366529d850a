package matchsession

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// fakeBackend records score syncs and end-match calls. Syncs arrive from
// goroutines, so access is locked.
type fakeBackend struct {
	mu      sync.Mutex
	updates []scoreboard.ScoreUpdate
	endErr  error
	ended   int
}

func (f *fakeBackend) UpdateScore(_ context.Context, _ int, update scoreboard.ScoreUpdate, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakeBackend) EndMatch(_ context.Context, _ int, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.endErr != nil {
		return f.endErr
	}
	f.ended++
	return nil
}

func (f *fakeBackend) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func newTestSession(backend *fakeBackend) *Session {
	return New(backend, "tok",
		scoreboard.Match{ID: 11, MatchCode: "KX42P"},
		scoreboard.Team{ID: 1, Name: "Lions"},
		scoreboard.Team{ID: 2, Name: "Sharks"},
	)
}

func TestIncrementUpdatesLocallyAndSyncs(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSession(backend)

	score, err := s.Increment(Home)
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, "01", FormatScore(score))

	score, err = s.Increment(Away)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	s.syncs.Wait()
	assert.Equal(t, 2, backend.updateCount())
}

func TestDecrementAtZeroIsNoOpWithoutBackendCall(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSession(backend)

	score, err := s.Decrement(Home)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	score, err = s.Decrement(Away)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	s.syncs.Wait()
	assert.Zero(t, backend.updateCount())
}

func TestScoreNeverNegative(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSession(backend)

	ops := []struct {
		inc  bool
		side Side
	}{
		{false, Home}, {false, Home}, {true, Home}, {false, Home},
		{false, Home}, {true, Away}, {true, Away}, {false, Away},
		{false, Away}, {false, Away},
	}
	for _, op := range ops {
		var err error
		if op.inc {
			_, err = s.Increment(op.side)
		} else {
			_, err = s.Decrement(op.side)
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Score(Home), 0)
		assert.GreaterOrEqual(t, s.Score(Away), 0)
	}

	home, away := s.Scores()
	assert.Equal(t, 0, home)
	assert.Equal(t, 0, away)
}

func TestSyncCarriesBothScores(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSession(backend)

	s.Increment(Home)
	s.Increment(Home)
	s.Increment(Away)
	s.syncs.Wait()

	backend.mu.Lock()
	last := backend.updates[len(backend.updates)-1]
	backend.mu.Unlock()
	assert.Equal(t, scoreboard.ScoreUpdate{ScoreA: 2, ScoreB: 1}, last)
}

func TestSyncFailureKeepsLocalScore(t *testing.T) {
	s := New(&failingBackend{}, "tok",
		scoreboard.Match{ID: 11}, scoreboard.Team{ID: 1}, scoreboard.Team{ID: 2})

	score, err := s.Increment(Home)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	s.syncs.Wait()
	// No rollback: the failure was logged, local state stands.
	assert.Equal(t, 1, s.Score(Home))
}

type failingBackend struct{}

func (failingBackend) UpdateScore(context.Context, int, scoreboard.ScoreUpdate, string) error {
	return errors.New("backend down")
}

func (failingBackend) EndMatch(context.Context, int, string) error {
	return errors.New("backend down")
}

func TestEndMatchTransitionsToEnded(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSession(backend)
	s.Increment(Home)

	require.NoError(t, s.End(context.Background()))
	assert.Equal(t, Ended, s.State())
	assert.Equal(t, 1, backend.ended)

	// No transition from Ended back to Active.
	_, err := s.Increment(Home)
	assert.ErrorIs(t, err, ErrNotActive)
	assert.ErrorIs(t, s.End(context.Background()), ErrNotActive)

	s.Teardown()
	assert.Equal(t, Idle, s.State())
}

func TestEndMatchFailureKeepsSessionActive(t *testing.T) {
	backend := &fakeBackend{endErr: errors.New("backend down")}
	s := newTestSession(backend)

	err := s.End(context.Background())
	require.Error(t, err)
	assert.Equal(t, Active, s.State())

	// Retryable: clearing the fault lets the same call succeed.
	backend.mu.Lock()
	backend.endErr = nil
	backend.mu.Unlock()
	require.NoError(t, s.End(context.Background()))
	assert.Equal(t, Ended, s.State())
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "00", FormatScore(0))
	assert.Equal(t, "01", FormatScore(1))
	assert.Equal(t, "09", FormatScore(9))
	assert.Equal(t, "10", FormatScore(10))
	assert.Equal(t, "123", FormatScore(123))
}

func TestShareText(t *testing.T) {
	s := newTestSession(&fakeBackend{})
	text := s.ShareText()
	assert.Contains(t, text, "Match ID: KX42P")
	assert.Contains(t, text, "Lions vs Sharks")
	assert.Contains(t, text, LiveURL("KX42P"))
}

func TestShareTextUnknownCode(t *testing.T) {
	s := New(&fakeBackend{}, "tok", scoreboard.Match{ID: 1}, scoreboard.Team{Name: "A"}, scoreboard.Team{Name: "B"})
	assert.Contains(t, s.ShareText(), "Match ID: Unknown")
}
