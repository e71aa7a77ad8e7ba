package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/contact"
)

type contactService interface {
	Directory(ctx context.Context) (contact.Directory, error)
	Add(ctx context.Context, input contact.AddInput) (domain.UserEmergencyContact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactHandler serves emergency hotlines and personal contacts.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type addContactRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	IsPrimary    bool   `json:"isPrimary"`
	UserID       string `json:"userId"`
}

type directoryResponse struct {
	Hotlines []hotlineDTO         `json:"hotlines"`
	Personal []personalContactDTO `json:"personal"`
}

// List handles GET /tools/emergency-contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, err := withCaller(r, r.URL.Query().Get("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dir, err := h.svc.Directory(ctx)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := directoryResponse{
		Hotlines: make([]hotlineDTO, 0, len(dir.Hotlines)),
		Personal: make([]personalContactDTO, 0, len(dir.Personal)),
	}
	for _, c := range dir.Hotlines {
		resp.Hotlines = append(resp.Hotlines, hotlineDTO{
			ID:               c.ID,
			Name:             c.Name,
			Phone:            c.Phone,
			ContactType:      c.ContactType,
			Description:      c.Description,
			Available24x7:    c.Available24x7,
			LocationSpecific: c.LocationSpecific,
		})
	}
	for _, c := range dir.Personal {
		resp.Personal = append(resp.Personal, toPersonalContactDTO(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /tools/emergency-contacts.
func (h *ContactHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Add(ctx, contact.AddInput{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		IsPrimary:    req.IsPrimary,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPersonalContactDTO(created))
}

// Delete handles DELETE /tools/emergency-contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, r.URL.Query().Get("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
