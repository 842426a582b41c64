package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const (
	MigrationMigrated = "migrated"
	MigrationSkipped  = "skipped"
)

var (
	defaultFooterContact = entity.FooterContact{
		HeadingText: "Have questions? Reach out to us!",
		Email:       "info@rdm.bz",
	}
	defaultSocialLinks = []entity.SocialLink{
		{Platform: "Twitter", URL: "https://twitter.com/rdm_bz", IconName: "Twitter", Order: 1},
		{Platform: "Instagram", URL: "https://instagram.com/rdm_bz", IconName: "Instagram", Order: 2},
	}
)

type MigrationStep struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type MigrationReport struct {
	Contact MigrationStep `json:"contact"`
	Socials MigrationStep `json:"socials"`
}

type MigrationService interface {
	MigrateFooter(ctx context.Context) (*MigrationReport, error)
}

type migrationService struct {
	repo repository.SiteRepository
	log  logger.Logger
}

func NewMigrationService(repo repository.SiteRepository, log logger.Logger) MigrationService {
	return &migrationService{repo: repo, log: log}
}

// MigrateFooter seeds the default footer contact and social links. Each part
// is written only when nothing exists yet, so reruns are no-ops.
func (s *migrationService) MigrateFooter(ctx context.Context) (*MigrationReport, error) {
	report := &MigrationReport{}

	_, err := s.repo.GetFooterContact(ctx)
	switch {
	case err == nil:
		report.Contact = MigrationStep{Status: MigrationSkipped, Message: "Contact data already exists."}
	case errors.Is(err, repository.ErrNotFound):
		contact := defaultFooterContact
		contact.UpdatedAt = time.Now().UTC()
		if err := s.repo.SaveFooterContact(ctx, &contact); err != nil {
			return report, fmt.Errorf("contact insert: %w", err)
		}
		report.Contact = MigrationStep{Status: MigrationMigrated, Message: "Inserted default contact info."}
	default:
		return report, fmt.Errorf("contact check: %w", err)
	}

	n, err := s.repo.CountSocialLinks(ctx)
	if err != nil {
		return report, fmt.Errorf("social check: %w", err)
	}
	if n > 0 {
		report.Socials = MigrationStep{Status: MigrationSkipped, Message: "Social links already exist.", Count: int(n)}
	} else {
		now := time.Now().UTC()
		for _, l := range defaultSocialLinks {
			l.CreatedAt = now
			if _, err := s.repo.CreateSocialLink(ctx, &l); err != nil {
				return report, fmt.Errorf("social insert: %w", err)
			}
		}
		report.Socials = MigrationStep{Status: MigrationMigrated, Message: "Inserted default social links.", Count: len(defaultSocialLinks)}
	}

	s.log.Infof("Footer migration: contact=%s socials=%s", report.Contact.Status, report.Socials.Status)
	return report, nil
}
