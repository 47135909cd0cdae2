package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
)

// ContactSender delivers a contact request. infra.Mailer implements it.
type ContactSender interface {
	SendContact(req dto.ContactRequest) error
}

type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) error
}

type contactService struct {
	sender ContactSender
}

// NewContactService accepts a nil sender; Submit then fails with ErrConfiguration.
func NewContactService(sender ContactSender) ContactService {
	return &contactService{sender: sender}
}

func (s *contactService) Submit(_ context.Context, req dto.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)
	if fields := dto.Validate(req); fields != nil {
		return &ValidationError{Fields: fields}
	}
	if s.sender == nil {
		log.Error().Msg("contact form rejected: SMTP_HOST or CONTACT_RECIPIENT not set")
		return ErrConfiguration
	}
	if err := s.sender.SendContact(req); err != nil {
		log.Error().Err(err).Msg("contact delivery failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	log.Info().Str("company", req.Company).Msg("contact request delivered")
	return nil
}
