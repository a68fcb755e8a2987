package supporting

import (
	"errors"

	"github.com/techhr/ad-manager-api/infrastructure/repository"
	"github.com/techhr/ad-manager-api/internal/domain"
)

const (
	frequentLimit = 10
	searchLimit   = 20
)

var (
	ErrFAQNotFound     = errors.New("FAQ não encontrada")
	ErrMissingQuery    = errors.New("o parâmetro de busca é obrigatório")
	ErrInvalidLanguage = errors.New("idioma inválido")
)

type Supporter interface {
	Frequent(language string) ([]*domain.FAQ, error)
	Search(term, language string) ([]*domain.FAQ, error)
	List(language, category string) ([]*domain.FAQ, error)
	RegisterView(id string) (*domain.FAQ, error)
}

type Service struct {
	faqRepo repository.FAQRepository
}

func NewService(faqRepo repository.FAQRepository) Supporter {
	return &Service{
		faqRepo: faqRepo,
	}
}

// Frequent lista as perguntas marcadas como frequentes, mais vistas primeiro
func (s *Service) Frequent(language string) ([]*domain.FAQ, error) {
	language, err := resolveLanguage(language)
	if err != nil {
		return nil, err
	}

	return s.faqRepo.ListFrequent(language, frequentLimit)
}

// Search faz busca por substring, sem diferenciar maiúsculas, em pergunta e resposta
func (s *Service) Search(term, language string) ([]*domain.FAQ, error) {
	if term == "" {
		return nil, ErrMissingQuery
	}

	language, err := resolveLanguage(language)
	if err != nil {
		return nil, err
	}

	return s.faqRepo.Search(term, language, searchLimit)
}

func (s *Service) List(language, category string) ([]*domain.FAQ, error) {
	language, err := resolveLanguage(language)
	if err != nil {
		return nil, err
	}

	return s.faqRepo.List(language, category)
}

// RegisterView incrementa o contador de visualizações e devolve a FAQ atualizada
func (s *Service) RegisterView(id string) (*domain.FAQ, error) {
	faq, err := s.faqRepo.IncrementViews(id)
	if err != nil {
		return nil, err
	}

	if faq == nil {
		return nil, ErrFAQNotFound
	}

	return faq, nil
}

// resolveLanguage aplica o padrão pt quando o idioma não é informado
func resolveLanguage(language string) (string, error) {
	if language == "" {
		return domain.LanguagePT, nil
	}

	if !domain.ValidLanguage(language) {
		return "", ErrInvalidLanguage
	}

	return language, nil
}
