package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/techhr/ad-manager-api/internal/usecases/supporting"
	"github.com/techhr/ad-manager-api/pkg/apiErrors"
	"github.com/techhr/ad-manager-api/pkg/log"
)

// ListFAQs lista as FAQs, com filtro opcional por categoria
func ListFAQs(service supporting.Supporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		faqs, err := service.List(query.Get("language"), query.Get("category"))
		if err != nil {
			writeSupportError(w, logger, err, "support: failed to list FAQs")
			return
		}

		writeJSON(w, http.StatusOK, faqs)
	}
}

// FrequentFAQs lista as perguntas mais frequentes
func FrequentFAQs(service supporting.Supporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		faqs, err := service.Frequent(r.URL.Query().Get("language"))
		if err != nil {
			writeSupportError(w, logger, err, "support: failed to list frequent FAQs")
			return
		}

		writeJSON(w, http.StatusOK, faqs)
	}
}

// SearchFAQs busca FAQs por termo em pergunta ou resposta
func SearchFAQs(service supporting.Supporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		faqs, err := service.Search(query.Get("q"), query.Get("language"))
		if err != nil {
			writeSupportError(w, logger, err, "support: failed to search FAQs")
			return
		}

		writeJSON(w, http.StatusOK, faqs)
	}
}

// RegisterFAQView incrementa o contador de visualizações de uma FAQ
func RegisterFAQView(service supporting.Supporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		faqID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if faqID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da FAQ não fornecido", nil)
			return
		}

		faq, err := service.RegisterView(faqID)
		if err != nil {
			writeSupportError(w, logger, err, "support: failed to register FAQ view")
			return
		}

		writeJSON(w, http.StatusOK, faq)
	}
}

func writeSupportError(w http.ResponseWriter, logger log.Logger, err error, logMessage string) {
	switch {
	case errors.Is(err, supporting.ErrFAQNotFound):
		apiErrors.WriteError(w, apiErrors.ErrFAQNotFound, "FAQ não encontrada", nil)

	case errors.Is(err, supporting.ErrMissingQuery):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, supporting.ErrInvalidLanguage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logger.WithError(err).Error(logMessage)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar FAQs", nil)
	}
}
