package services

import (
	"testing"
	"time"

	"gabeesh-social/models"
	"gabeesh-social/repositories"
	"gabeesh-social/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPollFixture(t *testing.T) (PollService, repositories.PollRepository, repositories.UserRepository) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Init(repositories.CollectionPolls, []models.Poll{}))
	require.NoError(t, st.Init(repositories.CollectionUsers, []models.User{}))

	pollRepo := repositories.NewPollRepository(st)
	userRepo := repositories.NewUserRepository(st)

	for _, u := range []models.User{
		{Username: "adrian", Role: models.RoleLeader, VotePower: 6, SuperAdmin: true},
		{Username: "ish", Role: models.RoleMod, VotePower: 4, SuperAdmin: true},
		{Username: "member1", Role: models.RoleMember, VotePower: 1},
	} {
		user := u
		require.NoError(t, userRepo.Create(&user))
	}

	return NewPollService(pollRepo, userRepo), pollRepo, userRepo
}

func futureExpiry() string {
	return time.Now().Add(time.Hour).Format(models.ExpiryLayout)
}

func TestCreatePollValidation(t *testing.T) {
	svc, _, _ := newPollFixture(t)

	_, err := svc.Create(models.CreatePollRequest{
		Question:  "One option?",
		Options:   []string{"only"},
		ExpiresAt: futureExpiry(),
	})
	assert.ErrorIs(t, err, ErrMissingPollFields)

	_, err = svc.Create(models.CreatePollRequest{
		Options:   []string{"a", "b"},
		ExpiresAt: futureExpiry(),
	})
	assert.ErrorIs(t, err, ErrMissingPollFields)

	_, err = svc.Create(models.CreatePollRequest{
		Question: "No expiry?",
		Options:  []string{"a", "b"},
	})
	assert.ErrorIs(t, err, ErrMissingPollFields)

	_, err = svc.Create(models.CreatePollRequest{
		Question:  "Too many?",
		Options:   []string{"a", "b", "c", "d", "e", "f"},
		ExpiresAt: futureExpiry(),
	})
	assert.ErrorIs(t, err, ErrTooManyOptions)

	_, err = svc.Create(models.CreatePollRequest{
		Question:  "Bad expiry?",
		Options:   []string{"a", "b"},
		ExpiresAt: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrInvalidExpiry)
}

func TestCreatePollDropsBlankOptions(t *testing.T) {
	svc, _, _ := newPollFixture(t)

	poll, err := svc.Create(models.CreatePollRequest{
		Question:  "Five good ones?",
		Options:   []string{"a", "b", "c", "d", "e"},
		ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)
	assert.Len(t, poll.Options, 5)
	assert.Len(t, poll.Results, 5)
	assert.Equal(t, 1, poll.ID)

	// Two blanks leave only one real option
	_, err = svc.Create(models.CreatePollRequest{
		Question:  "Mostly blank?",
		Options:   []string{"a", "", "  "},
		ExpiresAt: futureExpiry(),
	})
	assert.ErrorIs(t, err, ErrMissingPollFields)
}

func TestWeightedVoteScenario(t *testing.T) {
	svc, pollRepo, _ := newPollFixture(t)

	poll, err := svc.Create(models.CreatePollRequest{
		Question:  "Where to meet?",
		Options:   []string{"park", "cafe"},
		ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.CastVote(poll.ID, "member1", 0, 1))
	got, err := pollRepo.GetByID(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, got.Results)
	assert.Equal(t, map[string]int{"member1": 0}, got.Votes)

	require.NoError(t, svc.CastVote(poll.ID, "adrian", 1, 6))
	got, err = pollRepo.GetByID(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6}, got.Results)

	// A second vote is refused and changes nothing
	err = svc.CastVote(poll.ID, "member1", 1, 1)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	got, err = pollRepo.GetByID(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6}, got.Results)

	// Tally total equals the sum of the voters' weights
	sum := 0
	for _, r := range got.Results {
		sum += r
	}
	assert.Equal(t, 1+6, sum)
}

func TestVoteOnExpiredPoll(t *testing.T) {
	svc, pollRepo, _ := newPollFixture(t)

	expired := &models.Poll{
		Question:  "Too late?",
		Options:   []string{"a", "b"},
		Results:   []int{0, 0},
		ExpiresAt: time.Now().Add(-time.Hour).Format(models.ExpiryLayout),
		Votes:     map[string]int{},
	}
	require.NoError(t, pollRepo.Create(expired))

	err := svc.CastVote(expired.ID, "adrian", 0, 6)
	assert.ErrorIs(t, err, ErrPollExpired)

	got, err := pollRepo.GetByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, got.Results)
	assert.Empty(t, got.Votes)
}

func TestVoteValidation(t *testing.T) {
	svc, pollRepo, userRepo := newPollFixture(t)

	poll, err := svc.Create(models.CreatePollRequest{
		Question:  "Which?",
		Options:   []string{"a", "b"},
		ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CastVote(poll.ID, "adrian", 2, 6), ErrInvalidOption)
	assert.ErrorIs(t, svc.CastVote(poll.ID, "adrian", -1, 6), ErrInvalidOption)
	assert.ErrorIs(t, svc.CastVote(999, "adrian", 0, 6), ErrPollNotFound)
	assert.ErrorIs(t, svc.CastVote(poll.ID, "nobody", 0, 1), ErrUserNotFound)

	require.NoError(t, userRepo.Update("member1", func(u *models.User) { u.Muted = true }))
	assert.ErrorIs(t, svc.CastVote(poll.ID, "member1", 0, 1), ErrUserMuted)

	got, err := pollRepo.GetByID(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, got.Results)
}

func TestUpdateExpiry(t *testing.T) {
	svc, pollRepo, _ := newPollFixture(t)

	poll, err := svc.Create(models.CreatePollRequest{
		Question:  "Extend me?",
		Options:   []string{"a", "b"},
		ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)

	newExpiry := time.Now().Add(48 * time.Hour).Format(models.ExpiryLayout)
	require.NoError(t, svc.UpdateExpiry(poll.ID, newExpiry))

	got, err := pollRepo.GetByID(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, newExpiry, got.ExpiresAt)

	assert.ErrorIs(t, svc.UpdateExpiry(999, newExpiry), ErrPollNotFound)
	assert.ErrorIs(t, svc.UpdateExpiry(poll.ID, "garbage"), ErrInvalidExpiry)
}

func TestPollIDsIncrement(t *testing.T) {
	svc, pollRepo, _ := newPollFixture(t)

	first, err := svc.Create(models.CreatePollRequest{
		Question: "First?", Options: []string{"a", "b"}, ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)
	second, err := svc.Create(models.CreatePollRequest{
		Question: "Second?", Options: []string{"a", "b"}, ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	require.NoError(t, svc.Delete(first.ID))
	third, err := svc.Create(models.CreatePollRequest{
		Question: "Third?", Options: []string{"a", "b"}, ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)

	_, err = pollRepo.GetByID(first.ID)
	assert.Error(t, err)
}

// The moderation listing must order by parsed expiry, not the raw
// string: expiries arrive in either accepted layout, and an
// unparseable one would otherwise sort ahead of every date.
func TestListByExpiryOrdersMixedLayouts(t *testing.T) {
	svc, pollRepo, _ := newPollFixture(t)

	for _, p := range []*models.Poll{
		{Question: "Sooner?", Options: []string{"a", "b"}, Results: []int{0, 0}, ExpiresAt: "2030-06-01T10:00", Votes: map[string]int{}},
		{Question: "Later?", Options: []string{"a", "b"}, Results: []int{0, 0}, ExpiresAt: "2031-01-01T00:00:00Z", Votes: map[string]int{}},
		{Question: "Broken?", Options: []string{"a", "b"}, Results: []int{0, 0}, ExpiresAt: "TBD", Votes: map[string]int{}},
	} {
		require.NoError(t, pollRepo.Create(p))
	}

	polls, err := svc.ListByExpiry()
	require.NoError(t, err)
	require.Len(t, polls, 3)
	assert.Equal(t, "Later?", polls[0].Question)
	assert.Equal(t, "Sooner?", polls[1].Question)
	assert.Equal(t, "Broken?", polls[2].Question)
}

func TestListDerivesState(t *testing.T) {
	svc, pollRepo, _ := newPollFixture(t)

	open, err := svc.Create(models.CreatePollRequest{
		Question: "Open?", Options: []string{"a", "b"}, ExpiresAt: futureExpiry(),
	})
	require.NoError(t, err)
	require.NoError(t, svc.CastVote(open.ID, "adrian", 0, 6))

	expired := &models.Poll{
		Question:  "Done?",
		Options:   []string{"a", "b"},
		Results:   []int{0, 0},
		ExpiresAt: time.Now().Add(-time.Minute).Format(models.ExpiryLayout),
		Votes:     map[string]int{},
	}
	require.NoError(t, pollRepo.Create(expired))

	views, err := svc.List("adrian")
	require.NoError(t, err)
	require.Len(t, views, 2)

	states := map[int]models.PollState{}
	for _, v := range views {
		states[v.ID] = v.State
	}
	assert.Equal(t, models.PollVoted, states[open.ID])
	assert.Equal(t, models.PollExpired, states[expired.ID])

	views, err = svc.List("member1")
	require.NoError(t, err)
	for _, v := range views {
		if v.ID == open.ID {
			assert.Equal(t, models.PollOpen, v.State)
		}
	}
}
