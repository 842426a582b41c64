package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const importChunkSize = 50

var ErrNothingToImport = errors.New("no valid domain names found, please ensure format is correct")

// Amount decodes a JSON number or numeric string; anything unparsable is 0.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(ParseAmount(strings.Trim(string(b), `"`)))
	return nil
}

// ParseAmount parses a decimal amount, returning 0 for blank or invalid input.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return entity.SanitizePrice(f)
}

// ListingInput mirrors the admin form: list fields are comma separated and
// RegistrationDate is "YYYY-MM-DD" or blank.
type ListingInput struct {
	Name             string `json:"name"`
	Price            Amount `json:"price"`
	Status           string `json:"status"`
	Featured         bool   `json:"featured"`
	RegistrationDate string `json:"registration_date"`
	Category         string `json:"category"`
	Tagline          string `json:"tagline"`
	Description      string `json:"description"`
	MarketRationale  string `json:"market_rationale"`
	UseCases         string `json:"use_cases"`
	USPPoints        string `json:"usp_points"`
	SimilarDomains   string `json:"similar_domains"`
}

type ImportResult struct {
	Added        int      `json:"added"`
	Skipped      int      `json:"skipped"`
	SkippedNames []string `json:"skipped_names"`
}

type ListingService interface {
	Create(ctx context.Context, in ListingInput) (*entity.Listing, error)
	Update(ctx context.Context, id string, in ListingInput) (*entity.Listing, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context) ([]entity.Listing, error)
	BulkImport(ctx context.Context, text string) (*ImportResult, error)
}

type listingService struct {
	repo      repository.ListingRepository
	cache     repository.CatalogCache
	publisher EventPublisher
	log       logger.Logger
}

func NewListingService(
	repo repository.ListingRepository,
	cache repository.CatalogCache,
	publisher EventPublisher,
	log logger.Logger,
) ListingService {
	return &listingService{repo: repo, cache: cache, publisher: publisher, log: log}
}

func (s *listingService) Create(ctx context.Context, in ListingInput) (*entity.Listing, error) {
	l, err := entity.NewListing(in.Name, float64(in.Price), in.Category)
	if err != nil {
		return nil, err
	}
	if err := applyListingInput(l, in); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id

	s.log.Infof("Listing created: ID=%s, Name=%s", id, l.Name)
	s.changed(ctx, "created", 1, id)
	return l, nil
}

func (s *listingService) Update(ctx context.Context, id string, in ListingInput) (*entity.Listing, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft, err := entity.NewListing(in.Name, float64(in.Price), in.Category)
	if err != nil {
		return nil, err
	}
	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	draft.Status = existing.Status
	if err := applyListingInput(draft, in); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, draft); err != nil {
		return nil, err
	}

	s.log.Infof("Listing updated: ID=%s, Name=%s", id, draft.Name)
	s.changed(ctx, "updated", 1, id)
	return draft, nil
}

func applyListingInput(l *entity.Listing, in ListingInput) error {
	if in.Status != "" {
		status := entity.ListingStatus(strings.ToLower(strings.TrimSpace(in.Status)))
		if !status.IsValid() {
			return fmt.Errorf("%w: listing status %q", entity.ErrInvalidStatus, in.Status)
		}
		l.Status = status
	}
	if d := strings.TrimSpace(in.RegistrationDate); d != "" {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return entity.NewValidationError("registration date must be YYYY-MM-DD")
		}
		l.RegistrationDate = &t
	}
	l.Featured = in.Featured
	l.Tagline = strings.TrimSpace(in.Tagline)
	l.Description = strings.TrimSpace(in.Description)
	l.MarketRationale = strings.TrimSpace(in.MarketRationale)
	l.UseCases = entity.SplitList(in.UseCases)
	l.USPPoints = entity.SplitList(in.USPPoints)
	l.SimilarDomains = entity.SplitList(in.SimilarDomains)
	return nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Listing deleted: ID=%s", id)
	s.changed(ctx, "deleted", 1, id)
	return nil
}

func (s *listingService) Get(ctx context.Context, id string) (*entity.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *listingService) List(ctx context.Context) ([]entity.Listing, error) {
	return s.repo.FindAll(ctx)
}

// BulkImport adds one listing per "name[,price[,category]]" line. Lines whose
// name has no dot are ignored; names already listed or repeated in the batch
// are reported as skipped.
func (s *listingService) BulkImport(ctx context.Context, text string) (*ImportResult, error) {
	parsed := ParseImportLines(text)
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: %w", entity.ErrValidation, ErrNothingToImport)
	}

	existing, err := s.repo.ExistingNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing domain names: %w", err)
	}

	result := &ImportResult{SkippedNames: make([]string, 0)}
	fresh := make([]entity.Listing, 0, len(parsed))
	seen := make(map[string]struct{}, len(parsed))
	for _, l := range parsed {
		_, taken := existing[l.Name]
		_, dup := seen[l.Name]
		if taken || dup {
			result.SkippedNames = append(result.SkippedNames, l.Name)
			continue
		}
		seen[l.Name] = struct{}{}
		fresh = append(fresh, l)
	}

	result.Skipped = len(result.SkippedNames)

	for start := 0; start < len(fresh); start += importChunkSize {
		end := min(start+importChunkSize, len(fresh))
		n, err := s.repo.InsertMany(ctx, fresh[start:end])
		result.Added += n
		if err != nil {
			s.changed(ctx, "imported", result.Added)
			return result, fmt.Errorf("import stopped after %d listings: %w", result.Added, err)
		}
	}

	s.log.Infof("Bulk import finished: added=%d skipped=%d", result.Added, result.Skipped)
	if result.Added > 0 {
		s.changed(ctx, "imported", result.Added)
	}
	return result, nil
}

// ParseImportLines turns pasted import text into new listings.
func ParseImportLines(text string) []entity.Listing {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]entity.Listing, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		name := strings.ToLower(parts[0])
		if !strings.Contains(name, ".") {
			continue
		}
		var price float64
		if len(parts) > 1 {
			price = ParseAmount(parts[1])
		}
		category := ""
		if len(parts) > 2 {
			category = parts[2]
		}
		l, err := entity.NewListing(name, max(price, 0), category)
		if err != nil {
			continue
		}
		out = append(out, *l)
	}
	return out
}

func (s *listingService) changed(ctx context.Context, action string, count int, ids ...string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warnf("Failed to invalidate catalog cache: %v", err)
		}
	}
	ev := ListingChangedEvent{Action: action, ListingIDs: ids, Count: count, ChangedAt: time.Now().UTC()}
	publishEvent(ctx, s.publisher, s.log, SubjectListingChanged, ev)
}
