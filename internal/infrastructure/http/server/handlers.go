package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/domain/recipe"
	"github.com/wellplate/v1/internal/ports/inbound"
	apperrors "github.com/wellplate/v1/pkg/errors"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

// respondError maps application errors to their HTTP status and a
// structured error body. Unknown errors become an opaque 500.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		s.respondJSON(w, appErr.StatusCode(), map[string]any{"error": appErr})
		return
	}
	s.logger.Error("unhandled error", zap.Error(err))
	s.respondJSON(w, http.StatusInternalServerError, map[string]any{
		"error": apperrors.NewAppError(apperrors.CodeInternal, "Internal server error", ""),
	})
}

func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewAppError(apperrors.CodeBadRequest, "Invalid JSON body", err.Error())
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.NewValidationError(verrs.Error())
		}
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

func profileID(r *http.Request) string {
	return chi.URLParam(r, "profileID")
}

func recipeName(r *http.Request) string {
	name := chi.URLParam(r, "recipeName")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var patch profile.Patch
	if err := s.decodeAndValidate(r, &patch); err != nil {
		s.respondError(w, err)
		return
	}
	p, err := s.service.CreateProfile(r.Context(), patch)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.GetProfile(r.Context(), profileID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch profile.Patch
	if err := s.decodeAndValidate(r, &patch); err != nil {
		s.respondError(w, err)
		return
	}
	p, err := s.service.UpdateProfile(r.Context(), profileID(r), patch)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleGenerateDietPlan(w http.ResponseWriter, r *http.Request) {
	rec, err := s.service.GenerateDietPlan(r.Context(), profileID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleGenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	mealPlan, err := s.service.GenerateMealPlan(r.Context(), profileID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, mealPlan)
}

func (s *Server) handleDailyTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := s.service.DailyTargets(r.Context(), profileID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, targets)
}

func (s *Server) handleGroceryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.GroceryList(r.Context(), profileID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	var body recipe.Recipe
	if err := s.decodeAndValidate(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.service.SaveRecipe(r.Context(), profileID(r), &body); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, &body)
}

func (s *Server) handleCreateCustomRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CustomRecipeCommand
	if err := s.decodeAndValidate(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	created, err := s.service.CreateCustomRecipe(r.Context(), profileID(r), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleSwapSuggestions(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.SwapSuggestions(r.Context(), profileID(r), recipeName(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

type applySwapsRequest struct {
	Toggles []bool `json:"toggles" validate:"required"`
}

func (s *Server) handleApplySwaps(w http.ResponseWriter, r *http.Request) {
	var body applySwapsRequest
	if err := s.decodeAndValidate(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	updated, err := s.service.ApplySwaps(r.Context(), profileID(r), inbound.ApplySwapsCommand{
		RecipeName: recipeName(r),
		Toggles:    body.Toggles,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, updated)
}
