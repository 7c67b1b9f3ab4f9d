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

type CampaignHandler struct {
	createCampaignUC    usecases_port.CreateCampaignUseCase
	getCampaignUC       usecases_port.GetCampaignUseCase
	updateCampaignUC    usecases_port.UpdateCampaignUseCase
	deleteCampaignUC    usecases_port.DeleteCampaignUseCase
	listCampaignsUC     usecases_port.ListCampaignsUseCase
	createAdRequestUC   usecases_port.CreateAdRequestUseCase
	listAdRequestsUC    usecases_port.ListAdRequestsUseCase
	resolveAdRequestUC  usecases_port.ResolveAdRequestUseCase
	createBannerUC      usecases_port.CreateBannerUseCase
	listBannersUC       usecases_port.ListBannersUseCase
	createTransactionUC usecases_port.CreateTransactionUseCase
	listTransactionsUC  usecases_port.ListTransactionsUseCase
}

func NewCampaignHandler(
	createCampaignUC usecases_port.CreateCampaignUseCase,
	getCampaignUC usecases_port.GetCampaignUseCase,
	updateCampaignUC usecases_port.UpdateCampaignUseCase,
	deleteCampaignUC usecases_port.DeleteCampaignUseCase,
	listCampaignsUC usecases_port.ListCampaignsUseCase,
	createAdRequestUC usecases_port.CreateAdRequestUseCase,
	listAdRequestsUC usecases_port.ListAdRequestsUseCase,
	resolveAdRequestUC usecases_port.ResolveAdRequestUseCase,
	createBannerUC usecases_port.CreateBannerUseCase,
	listBannersUC usecases_port.ListBannersUseCase,
	createTransactionUC usecases_port.CreateTransactionUseCase,
	listTransactionsUC usecases_port.ListTransactionsUseCase,
) *CampaignHandler {
	return &CampaignHandler{
		createCampaignUC:    createCampaignUC,
		getCampaignUC:       getCampaignUC,
		updateCampaignUC:    updateCampaignUC,
		deleteCampaignUC:    deleteCampaignUC,
		listCampaignsUC:     listCampaignsUC,
		createAdRequestUC:   createAdRequestUC,
		listAdRequestsUC:    listAdRequestsUC,
		resolveAdRequestUC:  resolveAdRequestUC,
		createBannerUC:      createBannerUC,
		listBannersUC:       listBannersUC,
		createTransactionUC: createTransactionUC,
		listTransactionsUC:  listTransactionsUC,
	}
}

func campaignFromRequest(req CampaignRequest) *domain.AdCampaign {
	return &domain.AdCampaign{
		Name:      req.Name,
		Status:    req.Status,
		Budget:    req.Budget,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Targeting: req.Targeting,
	}
}

// CreateCampaign обрабатывает POST /api/v1/campaigns
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createCampaignUC.Execute(r.Context(), claims, campaignFromRequest(req))
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toCampaignResponse(created))
}

// GetCampaign обрабатывает GET /api/v1/campaigns/{campaignID}
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	campaign, err := h.getCampaignUC.Execute(r.Context(), claims, campaignID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// UpdateCampaign обрабатывает PUT /api/v1/campaigns/{campaignID}
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign := campaignFromRequest(req)
	campaign.ID = campaignID

	claims := contextkeys.ClaimsFromContext(r.Context())
	updated, err := h.updateCampaignUC.Execute(r.Context(), claims, campaign)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toCampaignResponse(updated))
}

// DeleteCampaign обрабатывает DELETE /api/v1/campaigns/{campaignID}
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.deleteCampaignUC.Execute(r.Context(), claims, campaignID); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCampaigns обрабатывает GET /api/v1/campaigns
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	campaigns, total, err := h.listCampaignsUC.Execute(r.Context(), claims, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, toCampaignResponse(&campaigns[i]))
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}

// CreateAdRequest обрабатывает POST /api/v1/ad-requests
func (h *CampaignHandler) CreateAdRequest(w http.ResponseWriter, r *http.Request) {
	var req AdRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request := &domain.AdRequest{
		Title:       req.Title,
		Description: req.Description,
		RequestType: req.RequestType,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.CampaignID != nil {
		campaignID, err := uuid.Parse(*req.CampaignID)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
			return
		}
		request.CampaignID = &campaignID
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createAdRequestUC.Execute(r.Context(), claims, request)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toAdRequestResponse(created))
}

// ListAdRequests обрабатывает GET /api/v1/ad-requests?status=..
func (h *CampaignHandler) ListAdRequests(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	requests, total, err := h.listAdRequestsUC.Execute(r.Context(), claims, r.URL.Query().Get("status"), page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]AdRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, toAdRequestResponse(&requests[i]))
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}

// ResolveAdRequest обрабатывает POST /api/v1/admin/ad-requests/{requestID}/resolve
func (h *CampaignHandler) ResolveAdRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req ResolveAdRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	resolved, err := h.resolveAdRequestUC.Execute(r.Context(), claims, requestID, req.Approve)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toAdRequestResponse(resolved))
}

// CreateBanner обрабатывает POST /api/v1/campaigns/{campaignID}/banners
func (h *CampaignHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	banner := &domain.Banner{
		CampaignID: campaignID,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		TargetURL:  req.TargetURL,
		Placement:  req.Placement,
		Priority:   req.Priority,
		IsActive:   req.IsActive,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createBannerUC.Execute(r.Context(), claims, banner)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toBannerResponse(created))
}

// ListBanners обрабатывает GET /api/v1/campaigns/{campaignID}/banners
func (h *CampaignHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	banners, err := h.listBannersUC.Execute(r.Context(), claims, campaignID)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		result = append(result, toBannerResponse(&banners[i]))
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// CreateTransaction обрабатывает POST /api/v1/transactions
func (h *CampaignHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	tx := &domain.Transaction{
		ListingID: listingID,
		Amount:    req.Amount,
	}
	if req.CampaignID != nil {
		campaignID, err := uuid.Parse(*req.CampaignID)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid campaign id")
			return
		}
		tx.CampaignID = &campaignID
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createTransactionUC.Execute(r.Context(), claims, tx)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toTransactionResponse(created))
}

// ListTransactions обрабатывает GET /api/v1/transactions
func (h *CampaignHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	transactions, total, err := h.listTransactionsUC.Execute(r.Context(), claims, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, toTransactionResponse(&transactions[i]))
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}
