package editteams

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsynz/scorectl/internal/scoreboard"
	"github.com/sportsynz/scorectl/internal/session"
	"github.com/sportsynz/scorectl/internal/tools/authflow"
)

type counters struct {
	uploads int64
	creates int64
	updates int64
	deletes int64
}

func newTestContext(t *testing.T, handler http.HandlerFunc) (*Context, *counters) {
	t.Helper()
	c := &counters{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/upload":
			atomic.AddInt64(&c.uploads, 1)
		case r.URL.Path == "/api/teams" && r.Method == http.MethodPost:
			atomic.AddInt64(&c.creates, 1)
		case r.Method == http.MethodPut:
			atomic.AddInt64(&c.updates, 1)
		case r.Method == http.MethodDelete:
			atomic.AddInt64(&c.deletes, 1)
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.SaveLogin("tok", scoreboard.User{ID: 1}, true))

	ctx := NewContext(context.Background())
	ctx.Client = scoreboard.NewClient(scoreboard.Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	ctx.Store = store
	ctx.Out = &bytes.Buffer{}
	ctx.Force = true
	return ctx, c
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crest.png")
	require.NoError(t, os.WriteFile(path, []byte("fake-png"), 0o600))
	return path
}

func TestSaveTeamValidationBlocksEverything(t *testing.T) {
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no backend call expected")
	})
	ctx.Name = ""
	ctx.Country = "Kenya"

	_, err := SaveTeam(ctx)
	var verr *authflow.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, atomic.LoadInt64(&c.creates))
}

func TestSaveTeamCreateWithNewLogo(t *testing.T) {
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload":
			io.WriteString(w, `[{"id":42,"url":"/uploads/crest.png"}]`)
		case "/api/teams":
			var req scoreboard.CreateTeamRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 42, req.LogoID)
			json.NewEncoder(w).Encode(scoreboard.Team{ID: 5, Name: req.Name, Country: req.Country})
		default:
			t.Fatalf("unexpected call to %s", r.URL.Path)
		}
	})
	ctx.Name = "Lions"
	ctx.Country = "Kenya"
	ctx.ImagePath = writeTempImage(t)

	team, err := SaveTeam(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, team.ID)
	assert.EqualValues(t, 1, atomic.LoadInt64(&c.uploads))
	assert.EqualValues(t, 1, atomic.LoadInt64(&c.creates))
}

func TestSaveTeamUnchangedImageSkipsUpload(t *testing.T) {
	persisted := "https://backend/uploads/thumb_crest.png"
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var req scoreboard.CreateTeamRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Zero(t, req.LogoID)
		json.NewEncoder(w).Encode(scoreboard.Team{ID: 5, Name: req.Name})
	})
	ctx.TeamID = 5
	ctx.Name = "Lions"
	ctx.Country = "Kenya"
	ctx.ImagePath = persisted
	ctx.PersistedLogoURL = persisted

	_, err := SaveTeam(ctx)
	require.NoError(t, err)
	assert.Zero(t, atomic.LoadInt64(&c.uploads))
	assert.EqualValues(t, 1, atomic.LoadInt64(&c.updates))
}

func TestSaveTeamUploadFailureAbortsSave(t *testing.T) {
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/upload" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			io.WriteString(w, `{"error":{"message":"File too large"}}`)
			return
		}
		t.Fatalf("unexpected call to %s after failed upload", r.URL.Path)
	})
	ctx.Name = "Lions"
	ctx.Country = "Kenya"
	ctx.ImagePath = writeTempImage(t)

	_, err := SaveTeam(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "File too large")
	assert.Zero(t, atomic.LoadInt64(&c.creates))
	assert.Zero(t, atomic.LoadInt64(&c.updates))
}

func TestSaveTeamAtMostOneUpload(t *testing.T) {
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload":
			io.WriteString(w, `[{"id":42,"url":"/uploads/crest.png"}]`)
		default:
			json.NewEncoder(w).Encode(scoreboard.Team{ID: 5, Name: "Lions"})
		}
	})
	ctx.Name = "Lions"
	ctx.Country = "Kenya"
	ctx.ImagePath = writeTempImage(t)

	_, err := SaveTeam(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt64(&c.uploads))
}

func TestRmTeamRemovesOnlyAfterAck(t *testing.T) {
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})
	ctx.TeamID = 2
	roster := []scoreboard.Team{{ID: 1, Name: "Lions"}, {ID: 2, Name: "Sharks"}}

	out, err := RmTeam(ctx, roster)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
	assert.EqualValues(t, 1, atomic.LoadInt64(&c.deletes))
}

func TestRmTeamKeepsRosterOnFailure(t *testing.T) {
	ctx, _ := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ctx.TeamID = 2
	roster := []scoreboard.Team{{ID: 1, Name: "Lions"}, {ID: 2, Name: "Sharks"}}

	out, err := RmTeam(ctx, roster)
	require.Error(t, err)
	assert.Len(t, out, 2)
}

func TestRmTeamUnknownID(t *testing.T) {
	ctx, c := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx.TeamID = 99

	_, err := RmTeam(ctx, []scoreboard.Team{{ID: 1}})
	require.Error(t, err)
	assert.Zero(t, atomic.LoadInt64(&c.deletes))
}

func TestLsTeamsEmptyRosterOnBackendError(t *testing.T) {
	ctx, _ := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	out := &bytes.Buffer{}
	ctx.Out = out

	require.NoError(t, LsTeams(ctx))
	assert.Contains(t, out.String(), "No teams yet")
}

func TestLsTeamsNewestFirst(t *testing.T) {
	ctx, _ := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":1,"name":"Lions","country":"Kenya","createdAt":"2026-01-01T00:00:00Z"},{"id":2,"name":"Sharks","country":"Fiji","createdAt":"2026-02-01T00:00:00Z"}]`)
	})
	out := &bytes.Buffer{}
	ctx.Out = out

	require.NoError(t, LsTeams(ctx))
	rendered := out.String()
	assert.Less(t, bytes.Index([]byte(rendered), []byte("Sharks")), bytes.Index([]byte(rendered), []byte("Lions")))
}
