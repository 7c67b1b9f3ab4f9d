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

type MessageHandler struct {
	sendMessageUC    usecases_port.SendMessageUseCase
	getMessageUC     usecases_port.GetMessageUseCase
	listMessagesUC   usecases_port.ListMessagesUseCase
	markReadUC       usecases_port.MarkMessageReadUseCase
	createTicketUC   usecases_port.CreateTicketUseCase
	updateTicketUC   usecases_port.UpdateTicketUseCase
	listTicketsUC    usecases_port.ListTicketsUseCase
	createFeedbackUC usecases_port.CreateFeedbackUseCase
	listFeedbackUC   usecases_port.ListFeedbackUseCase
}

func NewMessageHandler(
	sendMessageUC usecases_port.SendMessageUseCase,
	getMessageUC usecases_port.GetMessageUseCase,
	listMessagesUC usecases_port.ListMessagesUseCase,
	markReadUC usecases_port.MarkMessageReadUseCase,
	createTicketUC usecases_port.CreateTicketUseCase,
	updateTicketUC usecases_port.UpdateTicketUseCase,
	listTicketsUC usecases_port.ListTicketsUseCase,
	createFeedbackUC usecases_port.CreateFeedbackUseCase,
	listFeedbackUC usecases_port.ListFeedbackUseCase,
) *MessageHandler {
	return &MessageHandler{
		sendMessageUC:    sendMessageUC,
		getMessageUC:     getMessageUC,
		listMessagesUC:   listMessagesUC,
		markReadUC:       markReadUC,
		createTicketUC:   createTicketUC,
		updateTicketUC:   updateTicketUC,
		listTicketsUC:    listTicketsUC,
		createFeedbackUC: createFeedbackUC,
		listFeedbackUC:   listFeedbackUC,
	}
}

// SendMessage обрабатывает POST /api/v1/messages
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid recipient id")
		return
	}

	msg := &domain.Message{
		RecipientID: recipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid parent id")
			return
		}
		msg.ParentID = &parentID
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.sendMessageUC.Execute(r.Context(), claims, msg)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toMessageResponse(created))
}

// GetMessage обрабатывает GET /api/v1/messages/{messageID}
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	msg, err := h.getMessageUC.Execute(r.Context(), claims, messageID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toMessageResponse(msg))
}

// ListMessages обрабатывает GET /api/v1/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	messages, total, err := h.listMessagesUC.Execute(r.Context(), claims, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, toMessageResponse(&messages[i]))
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}

// MarkMessageRead обрабатывает POST /api/v1/messages/{messageID}/read
func (h *MessageHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	msg, err := h.markReadUC.Execute(r.Context(), claims, messageID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toMessageResponse(msg))
}

func ticketFromRequest(req TicketRequest) (*domain.SupportTicket, error) {
	ticket := &domain.SupportTicket{
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if req.AssignedTo != nil {
		assignedTo, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			return nil, err
		}
		ticket.AssignedTo = &assignedTo
	}
	return ticket, nil
}

// CreateTicket обрабатывает POST /api/v1/tickets
func (h *MessageHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticket, err := ticketFromRequest(req)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid assignee id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createTicketUC.Execute(r.Context(), claims, ticket)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toTicketResponse(created))
}

// UpdateTicket обрабатывает PUT /api/v1/tickets/{ticketID}
func (h *MessageHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := uuid.Parse(chi.URLParam(r, "ticketID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticket, err := ticketFromRequest(req)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid assignee id")
		return
	}
	ticket.ID = ticketID

	claims := contextkeys.ClaimsFromContext(r.Context())
	updated, err := h.updateTicketUC.Execute(r.Context(), claims, ticket)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toTicketResponse(updated))
}

// ListTickets обрабатывает GET /api/v1/tickets
func (h *MessageHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	tickets, total, err := h.listTicketsUC.Execute(r.Context(), claims, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, toTicketResponse(&tickets[i]))
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}

// CreateFeedback обрабатывает POST /api/v1/feedback
func (h *MessageHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fb := &domain.Feedback{
		Type:    req.Type,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createFeedbackUC.Execute(r.Context(), claims, fb)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, FeedbackResponse{
		ID:        created.ID.String(),
		UserID:    created.UserID.String(),
		Type:      created.Type,
		Rating:    created.Rating,
		Comment:   created.Comment,
		CreatedAt: created.CreatedAt,
	})
}

// ListFeedback обрабатывает GET /api/v1/feedback (только для администраторов)
func (h *MessageHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	claims := contextkeys.ClaimsFromContext(r.Context())
	feedback, total, err := h.listFeedbackUC.Execute(r.Context(), claims, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]FeedbackResponse, 0, len(feedback))
	for _, fb := range feedback {
		items = append(items, FeedbackResponse{
			ID:        fb.ID.String(),
			UserID:    fb.UserID.String(),
			Type:      fb.Type,
			Rating:    fb.Rating,
			Comment:   fb.Comment,
			CreatedAt: fb.CreatedAt,
		})
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}
