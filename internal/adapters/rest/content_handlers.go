package rest

import (
	"encoding/json"
	"net/http"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ContentHandler struct {
	saveConfigUC       usecases_port.SaveSystemConfigUseCase
	getActiveConfigUC  usecases_port.GetActiveConfigUseCase
	listConfigsUC      usecases_port.ListSystemConfigsUseCase
	saveAnnouncementUC usecases_port.SaveAnnouncementUseCase
	listAnnouncementsUC usecases_port.ListAnnouncementsUseCase
	submitContactUC    usecases_port.SubmitContactUseCase
	listContactsUC     usecases_port.ListContactsUseCase
	saveFAQUC          usecases_port.SaveFAQUseCase
	listFAQsUC         usecases_port.ListFAQsUseCase
	voteFAQUC          usecases_port.VoteFAQUseCase
	saveLegalDocUC     usecases_port.SaveLegalDocumentUseCase
	listLegalDocsUC    usecases_port.ListLegalDocumentsUseCase
}

func NewContentHandler(
	saveConfigUC usecases_port.SaveSystemConfigUseCase,
	getActiveConfigUC usecases_port.GetActiveConfigUseCase,
	listConfigsUC usecases_port.ListSystemConfigsUseCase,
	saveAnnouncementUC usecases_port.SaveAnnouncementUseCase,
	listAnnouncementsUC usecases_port.ListAnnouncementsUseCase,
	submitContactUC usecases_port.SubmitContactUseCase,
	listContactsUC usecases_port.ListContactsUseCase,
	saveFAQUC usecases_port.SaveFAQUseCase,
	listFAQsUC usecases_port.ListFAQsUseCase,
	voteFAQUC usecases_port.VoteFAQUseCase,
	saveLegalDocUC usecases_port.SaveLegalDocumentUseCase,
	listLegalDocsUC usecases_port.ListLegalDocumentsUseCase,
) *ContentHandler {
	return &ContentHandler{
		saveConfigUC:        saveConfigUC,
		getActiveConfigUC:   getActiveConfigUC,
		listConfigsUC:       listConfigsUC,
		saveAnnouncementUC:  saveAnnouncementUC,
		listAnnouncementsUC: listAnnouncementsUC,
		submitContactUC:     submitContactUC,
		listContactsUC:      listContactsUC,
		saveFAQUC:           saveFAQUC,
		listFAQsUC:          listFAQsUC,
		voteFAQUC:           voteFAQUC,
		saveLegalDocUC:      saveLegalDocUC,
		listLegalDocsUC:     listLegalDocsUC,
	}
}

// SaveConfig обрабатывает PUT /api/v1/admin/config
func (h *ContentHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	var req SystemConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg := &domain.SystemConfig{
		SiteName:        req.SiteName,
		MaintenanceMode: req.MaintenanceMode,
		MaxUploadSizeMB: req.MaxUploadSizeMB,
		SupportEmail:    req.SupportEmail,
		IsActive:        req.IsActive,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	saved, err := h.saveConfigUC.Execute(r.Context(), claims, cfg)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSystemConfigResponse(saved))
}

// GetActiveConfig обрабатывает GET /api/v1/config
func (h *ContentHandler) GetActiveConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.getActiveConfigUC.Execute(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSystemConfigResponse(cfg))
}

// ListConfigs обрабатывает GET /api/v1/admin/config
func (h *ContentHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	configs, err := h.listConfigsUC.Execute(r.Context(), claims)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]SystemConfigResponse, 0, len(configs))
	for i := range configs {
		result = append(result, toSystemConfigResponse(&configs[i]))
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// SaveAnnouncement обрабатывает POST /api/v1/admin/announcements
func (h *ContentHandler) SaveAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a := &domain.Announcement{
		Title:          req.Title,
		Content:        req.Content,
		TargetAudience: req.TargetAudience,
		IsActive:       req.IsActive,
		PublishFrom:    req.PublishFrom,
		PublishUntil:   req.PublishUntil,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	saved, err := h.saveAnnouncementUC.Execute(r.Context(), claims, a)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, AnnouncementResponse{
		ID:             saved.ID.String(),
		Title:          saved.Title,
		Content:        saved.Content,
		TargetAudience: saved.TargetAudience,
		IsActive:       saved.IsActive,
		PublishFrom:    saved.PublishFrom,
		PublishUntil:   saved.PublishUntil,
		CreatedAt:      saved.CreatedAt,
	})
}

// ListAnnouncements обрабатывает GET /api/v1/announcements?audience=..
func (h *ContentHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	audience := r.URL.Query().Get("audience")

	announcements, err := h.listAnnouncementsUC.Execute(r.Context(), audience)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		result = append(result, AnnouncementResponse{
			ID:             a.ID.String(),
			Title:          a.Title,
			Content:        a.Content,
			TargetAudience: a.TargetAudience,
			IsActive:       a.IsActive,
			PublishFrom:    a.PublishFrom,
			PublishUntil:   a.PublishUntil,
			CreatedAt:      a.CreatedAt,
		})
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// SubmitContact обрабатывает POST /api/v1/contact (публичная форма)
func (h *ContentHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact := &domain.ContactUs{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	saved, err := h.submitContactUC.Execute(r.Context(), contact)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]string{"id": saved.ID.String()})
}

// ListContacts обрабатывает GET /api/v1/admin/contacts
func (h *ContentHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	contacts, total, err := h.listContactsUC.Execute(r.Context(), claims, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, ContactResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			Email:     c.Email,
			Subject:   c.Subject,
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		})
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}

// SaveFAQ обрабатывает POST /api/v1/admin/faqs
func (h *ContentHandler) SaveFAQ(w http.ResponseWriter, r *http.Request) {
	var req FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	faq := &domain.FAQ{
		Category:     req.Category,
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	saved, err := h.saveFAQUC.Execute(r.Context(), claims, faq)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, FAQResponse{
		ID:              saved.ID.String(),
		Category:        saved.Category,
		Question:        saved.Question,
		Answer:          saved.Answer,
		DisplayOrder:    saved.DisplayOrder,
		HelpfulCount:    saved.HelpfulCount,
		NotHelpfulCount: saved.NotHelpfulCount,
	})
}

// ListFAQs обрабатывает GET /api/v1/faqs?category=..
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	faqs, err := h.listFAQsUC.Execute(r.Context(), category)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]FAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		result = append(result, FAQResponse{
			ID:              faq.ID.String(),
			Category:        faq.Category,
			Question:        faq.Question,
			Answer:          faq.Answer,
			DisplayOrder:    faq.DisplayOrder,
			HelpfulCount:    faq.HelpfulCount,
			NotHelpfulCount: faq.NotHelpfulCount,
		})
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// VoteFAQ обрабатывает POST /api/v1/faqs/{faqID}/vote
func (h *ContentHandler) VoteFAQ(w http.ResponseWriter, r *http.Request) {
	faqID, err := uuid.Parse(chi.URLParam(r, "faqID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid faq id")
		return
	}

	var req VoteFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.voteFAQUC.Execute(r.Context(), faqID, req.Helpful); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SaveLegalDocument обрабатывает POST /api/v1/admin/legal
func (h *ContentHandler) SaveLegalDocument(w http.ResponseWriter, r *http.Request) {
	var req LegalDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc := &domain.LegalDocument{
		DocumentType:  req.DocumentType,
		Version:       req.Version,
		Title:         req.Title,
		Content:       req.Content,
		EffectiveDate: req.EffectiveDate,
		IsActive:      req.IsActive,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	saved, err := h.saveLegalDocUC.Execute(r.Context(), claims, doc)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, LegalDocumentResponse{
		ID:            saved.ID.String(),
		DocumentType:  saved.DocumentType,
		Version:       saved.Version,
		Title:         saved.Title,
		Content:       saved.Content,
		EffectiveDate: saved.EffectiveDate,
	})
}

// ListLegalDocuments обрабатывает GET /api/v1/legal
func (h *ContentHandler) ListLegalDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.listLegalDocsUC.Execute(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]LegalDocumentResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, LegalDocumentResponse{
			ID:            doc.ID.String(),
			DocumentType:  doc.DocumentType,
			Version:       doc.Version,
			Title:         doc.Title,
			Content:       doc.Content,
			EffectiveDate: doc.EffectiveDate,
		})
	}
	RespondWithJSON(w, http.StatusOK, result)
}
