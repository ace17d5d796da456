package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/okian/activities/internal/adapters/repository"
	"github.com/okian/activities/pkg/logger"
)

// Detail strings returned to clients.
const (
	detailActivityNotFound = "Activity not found"
	detailActivityFull     = "Activity is full"
)

// ActivitiesHandler serves the registry routes under /activities.
type ActivitiesHandler struct {
	deps Dependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps Dependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleList handles GET /activities.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_activities"
	catalog, err := h.deps.ListActivities(r.Context())
	if err != nil {
		h.fail(w, r, Wrap(op, err), "", "")
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// HandleGet handles GET /activities/{name}.
func (h *ActivitiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_activity"
	a, err := h.deps.GetActivity(r.Context(), r.PathValue("name"))
	if err != nil {
		h.fail(w, r, Wrap(op, err), r.PathValue("name"), "")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// HandleSignup handles POST /activities/{name}/signup?email=.
func (h *ActivitiesHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	const op = "api.signup"
	name, email, ok := membershipParams(w, r)
	if !ok {
		return
	}
	msg, err := h.deps.Signup(r.Context(), name, email)
	if err != nil {
		h.fail(w, r, Wrap(op, err), name, email)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// HandleUnregister handles DELETE /activities/{name}/unregister?email=.
func (h *ActivitiesHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	const op = "api.unregister"
	name, email, ok := membershipParams(w, r)
	if !ok {
		return
	}
	msg, err := h.deps.Unregister(r.Context(), name, email)
	if err != nil {
		h.fail(w, r, Wrap(op, err), name, email)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// membershipParams extracts the activity name and email. A missing email
// is rejected with 422 as the query parameter is required.
func membershipParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	name := r.PathValue("name")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusUnprocessableEntity, ErrMissingEmail.Error())
		return "", "", false
	}
	return name, email, true
}

// fail maps registry errors to status codes and client-facing details.
func (h *ActivitiesHandler) fail(w http.ResponseWriter, r *http.Request, err error, name, email string) {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, repository.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for %s", email, name))
	case errors.Is(err, repository.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not signed up for %s", email, name))
	case errors.Is(err, repository.ErrActivityFull):
		writeError(w, http.StatusBadRequest, detailActivityFull)
	default:
		logger.Get().Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("requestId", r.Header.Get(RequestIDHeader)),
			logger.Error(WrapKind("api", ErrInternal, err)))
		writeError(w, http.StatusInternalServerError, ErrInternal.Error())
	}
}
