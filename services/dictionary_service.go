package services

import (
	"errors"
	"time"

	"gabeesh-social/models"
	"gabeesh-social/repositories"
)

type DictionaryService interface {
	Add(req models.AddWordRequest, author string) (*models.DictionaryEntry, error)
	List() ([]models.DictionaryEntry, error)
}

type dictionaryService struct {
	dictionaryRepo repositories.DictionaryRepository
}

func NewDictionaryService(dictionaryRepo repositories.DictionaryRepository) DictionaryService {
	return &dictionaryService{dictionaryRepo: dictionaryRepo}
}

func (s *dictionaryService) Add(req models.AddWordRequest, author string) (*models.DictionaryEntry, error) {
	entry := &models.DictionaryEntry{
		Word:       req.Word,
		Definition: req.Definition,
		Author:     author,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if err := s.dictionaryRepo.Create(entry); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateWord
		}
		return nil, err
	}
	return entry, nil
}

func (s *dictionaryService) List() ([]models.DictionaryEntry, error) {
	return s.dictionaryRepo.GetAll()
}
