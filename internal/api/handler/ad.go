package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/techhr/ad-manager-api/internal/domain"
	"github.com/techhr/ad-manager-api/internal/usecases/advertising"
	"github.com/techhr/ad-manager-api/pkg/apiErrors"
	"github.com/techhr/ad-manager-api/pkg/log"
	"github.com/techhr/ad-manager-api/pkg/middleware"
	"github.com/techhr/ad-manager-api/pkg/utils"
)

// ListAds lista os anúncios do usuário autenticado aplicando os filtros da query string
func ListAds(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseAdFilters(r)
		if err != nil {
			logger.WithError(err).Warn("ads: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos", nil)
			return
		}

		ads, err := service.ListAds(claims.UserID, filters)
		if err != nil {
			logger.WithError(err).Error("ads: failed to list ads")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar anúncios", nil)
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

// parseAdFilters lê os filtros aceitos: plataforma, componentes de data
// (year/month/day) e intervalo explícito (startDate/endDate)
func parseAdFilters(r *http.Request) (*domain.AdFilters, error) {
	query := r.URL.Query()

	filters := &domain.AdFilters{
		Platform: query.Get("platform"),
	}

	for _, component := range []struct {
		name string
		dest **int
	}{
		{"year", &filters.Year},
		{"month", &filters.Month},
		{"day", &filters.Day},
	} {
		raw := query.Get(component.name)
		if raw == "" {
			continue
		}

		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		*component.dest = &value
	}

	startDate, err := utils.ParseDate(query.Get("startDate"))
	if err != nil {
		return nil, err
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get("endDate"))
	if err != nil {
		return nil, err
	}
	filters.EndDate = endDate

	return filters, nil
}

func GetAd(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não fornecido", nil)
			return
		}

		ad, err := service.GetAd(claims.UserID, adID)
		if err != nil {
			writeAdError(w, logger, err, "ads: failed to get ad")
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}

func CreateAd(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var ad domain.Ad
		if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
			logger.WithError(err).Warn("ads: failed to decode create request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateAd(claims.UserID, &ad)
		if err != nil {
			writeAdError(w, logger, err, "ads: failed to create ad")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateAd(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não fornecido", nil)
			return
		}

		var ad domain.Ad
		if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
			logger.WithError(err).Warn("ads: failed to decode update request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateAd(claims.UserID, adID, &ad)
		if err != nil {
			writeAdError(w, logger, err, "ads: failed to update ad")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteAd(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não fornecido", nil)
			return
		}

		if err := service.DeleteAd(claims.UserID, adID); err != nil {
			writeAdError(w, logger, err, "ads: failed to delete ad")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Anúncio removido com sucesso",
		})
	}
}

func DuplicateAd(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não fornecido", nil)
			return
		}

		duplicated, err := service.DuplicateAd(claims.UserID, adID)
		if err != nil {
			writeAdError(w, logger, err, "ads: failed to duplicate ad")
			return
		}

		writeJSON(w, http.StatusCreated, duplicated)
	}
}

func GetDashboardStats(service advertising.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stats, err := service.DashboardStats(claims.UserID)
		if err != nil {
			logger.WithError(err).Error("ads: failed to compute dashboard stats")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estatísticas", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// writeAdError converte os erros do caso de uso em respostas padronizadas
func writeAdError(w http.ResponseWriter, logger log.Logger, err error, logMessage string) {
	switch {
	case errors.Is(err, advertising.ErrAdNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)

	case errors.Is(err, advertising.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, advertising.ErrInvalidPlatform),
		errors.Is(err, advertising.ErrInvalidAudience),
		errors.Is(err, advertising.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logger.WithError(err).Error(logMessage)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar anúncios", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}
