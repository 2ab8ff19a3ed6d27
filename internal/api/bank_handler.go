package api

import (
	"net/http"
)

type RolesResponse struct {
	Roles []string `json:"roles" example:"Java Developer,Data Analyst"`
}

// listRoles returns the roles that have a question bank.
// @Summary      List interview roles
// @Description  Roles that have a question bank, in bank order.
// @Tags         Banks
// @Produce      json
// @Success      200  {object}  RolesResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /roles [get]
func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.banks.Roles(r.Context())
	if err != nil {
		h.logger.Error("failed to list roles", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list roles")
		return
	}
	if roles == nil {
		roles = []string{}
	}
	respondJSON(w, http.StatusOK, RolesResponse{Roles: roles})
}
