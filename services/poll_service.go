package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"gabeesh-social/models"
	"gabeesh-social/repositories"
)

const (
	minPollOptions = 2
	maxPollOptions = 5
)

type PollService interface {
	Create(req models.CreatePollRequest) (*models.Poll, error)
	List(username string) ([]models.PollView, error)
	ListByExpiry() ([]models.Poll, error)
	Get(id int) (*models.Poll, error)
	CastVote(pollID int, username string, optionIndex, weight int) error
	UpdateExpiry(id int, expiresAt string) error
	Delete(id int) error
}

type pollService struct {
	pollRepo repositories.PollRepository
	userRepo repositories.UserRepository
}

func NewPollService(pollRepo repositories.PollRepository, userRepo repositories.UserRepository) PollService {
	return &pollService{
		pollRepo: pollRepo,
		userRepo: userRepo,
	}
}

// Create drops blank options, then requires a question, 2 to 5 options
// and a parseable expiry.
func (s *pollService) Create(req models.CreatePollRequest) (*models.Poll, error) {
	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		if strings.TrimSpace(opt) != "" {
			options = append(options, opt)
		}
	}

	if req.Question == "" || len(options) < minPollOptions || req.ExpiresAt == "" {
		return nil, ErrMissingPollFields
	}
	if len(options) > maxPollOptions {
		return nil, ErrTooManyOptions
	}

	poll := &models.Poll{
		Question:  req.Question,
		Options:   options,
		Results:   make([]int, len(options)),
		ExpiresAt: req.ExpiresAt,
		Votes:     map[string]int{},
	}
	if _, err := poll.ExpiryTime(); err != nil {
		return nil, ErrInvalidExpiry
	}

	if err := s.pollRepo.Create(poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// List returns every poll with the state derived for the requester.
func (s *pollService) List(username string) ([]models.PollView, error) {
	polls, err := s.pollRepo.GetAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]models.PollView, 0, len(polls))
	for _, p := range polls {
		views = append(views, models.PollView{
			Poll:  p,
			State: p.StateFor(username, now),
		})
	}
	return views, nil
}

// ListByExpiry is the moderation view, latest expiry first. Expiry
// strings may carry either accepted layout, so the sort key is the
// parsed time; unparseable expiries sink to the end.
func (s *pollService) ListByExpiry() ([]models.Poll, error) {
	polls, err := s.pollRepo.GetAll()
	if err != nil {
		return nil, err
	}
	expiry := func(p models.Poll) time.Time {
		t, err := p.ExpiryTime()
		if err != nil {
			return time.Time{}
		}
		return t
	}
	sort.Slice(polls, func(i, j int) bool {
		return expiry(polls[i]).After(expiry(polls[j]))
	})
	return polls, nil
}

func (s *pollService) Get(id int) (*models.Poll, error) {
	poll, err := s.pollRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPollNotFound
	}
	return poll, err
}

// CastVote records one weighted vote. It succeeds only while the poll is
// open for this voter: a repeat vote, an expired poll or an out-of-range
// option leaves the tallies untouched and reports why.
func (s *pollService) CastVote(pollID int, username string, optionIndex, weight int) error {
	voter, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if voter.Muted {
		return ErrUserMuted
	}

	now := time.Now()
	err = s.pollRepo.Update(pollID, func(p *models.Poll) error {
		if _, voted := p.Votes[username]; voted {
			return ErrAlreadyVoted
		}
		if p.Expired(now) {
			return ErrPollExpired
		}
		if optionIndex < 0 || optionIndex >= len(p.Options) {
			return ErrInvalidOption
		}
		if p.Votes == nil {
			p.Votes = map[string]int{}
		}
		p.Votes[username] = optionIndex
		p.Results[optionIndex] += weight
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPollNotFound
	}
	return err
}

func (s *pollService) UpdateExpiry(id int, expiresAt string) error {
	candidate := models.Poll{ExpiresAt: expiresAt}
	if _, err := candidate.ExpiryTime(); err != nil {
		return ErrInvalidExpiry
	}
	err := s.pollRepo.Update(id, func(p *models.Poll) error {
		p.ExpiresAt = expiresAt
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPollNotFound
	}
	return err
}

func (s *pollService) Delete(id int) error {
	return s.pollRepo.Delete(id)
}
