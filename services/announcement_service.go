package services

import (
	"errors"
	"time"

	"gabeesh-social/models"
	"gabeesh-social/repositories"
)

type AnnouncementService interface {
	Create(req models.CreateAnnouncementRequest, author string) (*models.Announcement, error)
	List() ([]models.Announcement, error)
	Delete(id string) error
}

type announcementService struct {
	announcementRepo repositories.AnnouncementRepository
	userRepo         repositories.UserRepository
}

func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository, userRepo repositories.UserRepository) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		userRepo:         userRepo,
	}
}

func (s *announcementService) Create(req models.CreateAnnouncementRequest, author string) (*models.Announcement, error) {
	// Mute is checked against the live record, not the session
	// snapshot, so muting an author takes effect immediately.
	user, err := s.userRepo.GetByUsername(author)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Muted {
		return nil, ErrUserMuted
	}

	announcement := &models.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := s.announcementRepo.Create(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) List() ([]models.Announcement, error) {
	return s.announcementRepo.GetAll()
}

func (s *announcementService) Delete(id string) error {
	return s.announcementRepo.Delete(id)
}
