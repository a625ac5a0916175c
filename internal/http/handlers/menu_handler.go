package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/http/middleware"
	"github.com/cafedelight/menu-backend/internal/http/response"
	"github.com/cafedelight/menu-backend/internal/logger"
	"github.com/cafedelight/menu-backend/internal/menu"
)

type MenuHandler struct {
	service *menu.Service
}

func NewMenuHandler(service *menu.Service) *MenuHandler {
	return &MenuHandler{service: service}
}

// PublicRoutes serves the read-only browse endpoints.
func (h *MenuHandler) PublicRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.listAvailable)
	r.Get("/categories", h.listCategories)
	r.Get("/specials", h.listSpecials)
	return r
}

// AdminRoutes serves the mutating endpoints; the caller mounts them behind
// the admin authorization gate.
func (h *MenuHandler) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.listAll)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/toggle-special", h.toggleSpecial)
	r.Put("/{id}/toggle-available", h.toggleAvailable)
	return r
}

func (h *MenuHandler) listAvailable(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAvailable(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to list menu", "error", err)
		response.InternalError(w, "Failed to retrieve menu")
		return
	}
	response.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to list categories", "error", err)
		response.InternalError(w, "Failed to retrieve categories")
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (h *MenuHandler) listSpecials(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListSpecials(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to list specials", "error", err)
		response.InternalError(w, "Failed to retrieve specials")
		return
	}
	response.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) listAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAll(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to list all menu items", "error", err)
		response.InternalError(w, "Failed to retrieve menu")
		return
	}
	response.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) create(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	item, err := h.service.Create(r.Context(), &in)
	if err != nil {
		response.FromError(w, err)
		return
	}

	logger.InfoContext(r.Context(), "menu item created",
		"id", item.ID, "name", item.Name, "by", middleware.AdminEmail(r))
	response.WriteJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) update(w http.ResponseWriter, r *http.Request) {
	var in domain.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	logger.InfoContext(r.Context(), "menu item deleted",
		"id", id, "by", middleware.AdminEmail(r))
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Menu item deleted successfully",
	})
}

func (h *MenuHandler) toggleSpecial(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.ToggleSpecial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Special status updated",
		"is_special": item.IsSpecial,
	})
}

func (h *MenuHandler) toggleAvailable(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.ToggleAvailable(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Availability updated",
		"available": item.Available,
	})
}
