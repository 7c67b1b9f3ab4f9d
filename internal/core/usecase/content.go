package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

const contentCacheTTL = 15 * time.Minute

// Публичный контент (объявления, FAQ, юридические документы) читается
// всеми и кэшируется; запись — только администраторам.

type SaveAnnouncementUseCase struct {
	announcements port.AnnouncementRepositoryPort
	cache         port.CachePort
	keys          port.CacheKeysPort
}

func NewSaveAnnouncementUseCase(announcements port.AnnouncementRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *SaveAnnouncementUseCase {
	return &SaveAnnouncementUseCase{announcements: announcements, cache: cache, keys: keys}
}

func (uc *SaveAnnouncementUseCase) Execute(ctx context.Context, actor *domain.Claims, a *domain.Announcement) (*domain.Announcement, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SaveAnnouncement"})

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	vErr := domain.NewValidationError()
	if a.Title == "" {
		vErr.Add("title", "is required")
	}
	if a.Content == "" {
		vErr.Add("content", "is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
		a.CreatedAt = time.Now().UTC()
	}
	if a.TargetAudience == "" {
		a.TargetAudience = "all"
	}

	if err := uc.announcements.Save(ctx, a); err != nil {
		ucLogger.Error("Repository failed to save announcement", err, nil)
		return nil, err
	}

	if err := uc.cache.Delete(ctx, uc.keys.ContentKeys()...); err != nil {
		ucLogger.Warn("Failed to invalidate content cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Announcement saved", port.Fields{"announcement_id": a.ID.String()})
	return a, nil
}

type ListAnnouncementsUseCase struct {
	announcements port.AnnouncementRepositoryPort
	cache         port.CachePort
	keys          port.CacheKeysPort
}

func NewListAnnouncementsUseCase(announcements port.AnnouncementRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{announcements: announcements, cache: cache, keys: keys}
}

func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, audience string) ([]domain.Announcement, error) {
	cacheKey := uc.keys.Announcements(audience)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var items []domain.Announcement
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	items, err := uc.announcements.ListActive(ctx, audience)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, payload, contentCacheTTL)
	}
	return items, nil
}

type SubmitContactUseCase struct {
	contacts port.ContactRepositoryPort
}

func NewSubmitContactUseCase(contacts port.ContactRepositoryPort) *SubmitContactUseCase {
	return &SubmitContactUseCase{contacts: contacts}
}

// Execute принимает публичную форму обратной связи, аутентификация
// не требуется.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, c *domain.ContactUs) (*domain.ContactUs, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	if err := uc.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

type ListContactsUseCase struct {
	contacts port.ContactRepositoryPort
}

func NewListContactsUseCase(contacts port.ContactRepositoryPort) *ListContactsUseCase {
	return &ListContactsUseCase{contacts: contacts}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.ContactUs, int, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}
	return uc.contacts.List(ctx, page.PerPage, page.Offset())
}

type SaveFAQUseCase struct {
	faqs  port.FAQRepositoryPort
	cache port.CachePort
	keys  port.CacheKeysPort
}

func NewSaveFAQUseCase(faqs port.FAQRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *SaveFAQUseCase {
	return &SaveFAQUseCase{faqs: faqs, cache: cache, keys: keys}
}

func (uc *SaveFAQUseCase) Execute(ctx context.Context, actor *domain.Claims, faq *domain.FAQ) (*domain.FAQ, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	vErr := domain.NewValidationError()
	if faq.Question == "" {
		vErr.Add("question", "is required")
	}
	if faq.Answer == "" {
		vErr.Add("answer", "is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if faq.ID == uuid.Nil {
		faq.ID = uuid.New()
		faq.CreatedAt = time.Now().UTC()
	}

	if err := uc.faqs.Save(ctx, faq); err != nil {
		return nil, err
	}

	if err := uc.cache.Delete(ctx, uc.keys.ContentKeys()...); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to invalidate content cache", port.Fields{"error": err.Error()})
	}
	return faq, nil
}

type ListFAQsUseCase struct {
	faqs  port.FAQRepositoryPort
	cache port.CachePort
	keys  port.CacheKeysPort
}

func NewListFAQsUseCase(faqs port.FAQRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *ListFAQsUseCase {
	return &ListFAQsUseCase{faqs: faqs, cache: cache, keys: keys}
}

func (uc *ListFAQsUseCase) Execute(ctx context.Context, category string) ([]domain.FAQ, error) {
	cacheKey := uc.keys.FAQList(category)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var items []domain.FAQ
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	items, err := uc.faqs.ListActive(ctx, category)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, payload, contentCacheTTL)
	}
	return items, nil
}

type VoteFAQUseCase struct {
	faqs port.FAQRepositoryPort
}

func NewVoteFAQUseCase(faqs port.FAQRepositoryPort) *VoteFAQUseCase {
	return &VoteFAQUseCase{faqs: faqs}
}

func (uc *VoteFAQUseCase) Execute(ctx context.Context, faqID uuid.UUID, helpful bool) error {
	faq, err := uc.faqs.FindByID(ctx, faqID)
	if err != nil {
		return err
	}
	if faq == nil {
		return domain.ErrNotFound
	}
	return uc.faqs.IncrementHelpful(ctx, faqID, helpful)
}

type SaveLegalDocumentUseCase struct {
	docs  port.LegalDocumentRepositoryPort
	cache port.CachePort
	keys  port.CacheKeysPort
}

func NewSaveLegalDocumentUseCase(docs port.LegalDocumentRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *SaveLegalDocumentUseCase {
	return &SaveLegalDocumentUseCase{docs: docs, cache: cache, keys: keys}
}

func (uc *SaveLegalDocumentUseCase) Execute(ctx context.Context, actor *domain.Claims, doc *domain.LegalDocument) (*domain.LegalDocument, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	vErr := domain.NewValidationError()
	if doc.DocumentType == "" {
		vErr.Add("document_type", "is required")
	}
	if doc.Version == "" {
		vErr.Add("version", "is required")
	}
	if doc.Content == "" {
		vErr.Add("content", "is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
		doc.CreatedAt = time.Now().UTC()
	}
	if doc.EffectiveDate.IsZero() {
		doc.EffectiveDate = time.Now().UTC()
	}

	if err := uc.docs.Save(ctx, doc); err != nil {
		return nil, err
	}

	if err := uc.cache.Delete(ctx, uc.keys.ContentKeys()...); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to invalidate content cache", port.Fields{"error": err.Error()})
	}
	return doc, nil
}

type ListLegalDocumentsUseCase struct {
	docs  port.LegalDocumentRepositoryPort
	cache port.CachePort
	keys  port.CacheKeysPort
}

func NewListLegalDocumentsUseCase(docs port.LegalDocumentRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *ListLegalDocumentsUseCase {
	return &ListLegalDocumentsUseCase{docs: docs, cache: cache, keys: keys}
}

func (uc *ListLegalDocumentsUseCase) Execute(ctx context.Context) ([]domain.LegalDocument, error) {
	cacheKey := uc.keys.LegalDocuments()
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var items []domain.LegalDocument
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	items, err := uc.docs.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, payload, contentCacheTTL)
	}
	return items, nil
}
