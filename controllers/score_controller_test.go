// file: controllers/score_controller_test.go
package controllers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/HelloPy-Korea/hellopy-game/dto"
	"github.com/HelloPy-Korea/hellopy-game/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitScoreRejectsUnregisteredEmail(t *testing.T) {
	r, b := setupTest(t)
	sub := b.Subscribe()

	resp := doRequest(t, r, "POST", "/score", `{"email":"ghost@x.com","score":42}`)
	assert.Equal(t, 2001, resp.Code)

	// 행도, 브로드캐스트 이벤트도 없어야 한다
	assert.EqualValues(t, 0, countRows(t, &models.Score{}))
	assert.Len(t, sub.C, 0)
}

func TestSubmitScoreRejectsNegativeScore(t *testing.T) {
	r, _ := setupTest(t)
	doRequest(t, r, "POST", "/register", `{"email":"a@x.com"}`)

	resp := doRequest(t, r, "POST", "/score", `{"email":"a@x.com","score":-5}`)
	assert.Equal(t, 1001, resp.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Score{}))
}

func TestSubmitScoreRequiresScoreField(t *testing.T) {
	r, _ := setupTest(t)
	doRequest(t, r, "POST", "/register", `{"email":"a@x.com"}`)

	resp := doRequest(t, r, "POST", "/score", `{"email":"a@x.com"}`)
	assert.Equal(t, 1001, resp.Code)
}

func TestSubmitScoreAcceptsZero(t *testing.T) {
	r, _ := setupTest(t)
	doRequest(t, r, "POST", "/register", `{"email":"a@x.com"}`)

	resp := doRequest(t, r, "POST", "/score", `{"email":"a@x.com","score":0}`)
	assert.Equal(t, 0, resp.Code)
	assert.EqualValues(t, 1, countRows(t, &models.Score{}))
}

func TestSubmitScoreBroadcastsSnapshot(t *testing.T) {
	r, b := setupTest(t)
	doRequest(t, r, "POST", "/register", `{"email":"a@x.com"}`)

	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	resp := doRequest(t, r, "POST", "/score", `{"email":"A@x.com","score":80}`)
	assert.Equal(t, 0, resp.Code)

	select {
	case ev := <-sub.C:
		assert.Equal(t, dto.EventTypeLeaderboard, ev.Type)
		require.Len(t, ev.AllTime, 1)
		assert.Equal(t, "a@x.com", ev.AllTime[0].Email)
		assert.Equal(t, 80, ev.AllTime[0].Score)
		assert.False(t, ev.GeneratedAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no leaderboard event was broadcast")
	}
}

func TestSubmitThenLeaderboardOrdering(t *testing.T) {
	r, _ := setupTest(t)
	doRequest(t, r, "POST", "/register", `{"email":"a@x.com"}`)
	doRequest(t, r, "POST", "/register", `{"email":"b@x.com"}`)

	doRequest(t, r, "POST", "/score", `{"email":"a@x.com","score":50}`)
	doRequest(t, r, "POST", "/score", `{"email":"b@x.com","score":80}`)

	resp := doRequest(t, r, "GET", "/leaderboard", "")
	require.Equal(t, 0, resp.Code)

	var snap dto.LeaderboardSnapshot
	require.NoError(t, json.Unmarshal(resp.Data, &snap))
	require.Len(t, snap.AllTime, 2)
	assert.Equal(t, "b@x.com", snap.AllTime[0].Email)
	assert.Equal(t, 80, snap.AllTime[0].Score)
	assert.Equal(t, "a@x.com", snap.AllTime[1].Email)
	assert.Equal(t, 50, snap.AllTime[1].Score)
}

func TestHealthzReportsSubscribers(t *testing.T) {
	r, b := setupTest(t)
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	resp := doRequest(t, r, "GET", "/healthz", "")
	require.Equal(t, 0, resp.Code)

	var data struct {
		OK          bool `json:"ok"`
		Subscribers int  `json:"subscribers"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.OK)
	assert.Equal(t, 1, data.Subscribers)
}
