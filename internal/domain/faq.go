package domain

import "time"

// Categorias de FAQ
const (
	FAQCategoryGeneral   = "geral"
	FAQCategoryAds       = "anuncios"
	FAQCategoryPlatforms = "plataformas"
	FAQCategoryPayments  = "pagamentos"
	FAQCategoryTechnical = "tecnico"
)

// FAQ é imutável depois de criada, exceto pelo contador de visualizações
type FAQ struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	Language   string    `json:"language"`
	IsFrequent bool      `json:"isFrequent"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `json:"createdAt"`
}
