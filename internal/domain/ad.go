package domain

import "time"

// Plataformas de anúncio suportadas pelo dashboard
const (
	PlatformFacebook  = "Facebook"
	PlatformInstagram = "Instagram"
	PlatformGoogle    = "Google"
)

// Tipos de público
const (
	AudienceCold = "frio"
	AudienceHot  = "quente"
)

// Status possíveis de um anúncio
const (
	AdStatusActive   = "ativo"
	AdStatusPaused   = "pausado"
	AdStatusFinished = "finalizado"
)

// Platforms lista as plataformas na ordem exibida no dashboard
var Platforms = []string{PlatformFacebook, PlatformInstagram, PlatformGoogle}

// TitleCopySuffix é o sufixo anexado ao título de um anúncio duplicado
const TitleCopySuffix = " (Cópia)"

// Ad representa um anúncio cadastrado por um usuário.
// Os nomes JSON seguem o contrato consumido pelo front-end (camelCase).
type Ad struct {
	ID             string     `json:"id"`
	UserID         int        `json:"userId"`
	Title          string     `json:"title"`
	Platform       string     `json:"platform"`
	Spent          float64    `json:"spent"`
	Audience       string     `json:"audience"`
	Leads          int        `json:"leads"`
	CostPerLead    float64    `json:"costPerLead"`
	CostPerClick   float64    `json:"costPerClick"`
	Clicks         int        `json:"clicks"`
	Impressions    int        `json:"impressions"`
	Reach          int        `json:"reach"`
	Engagement     int        `json:"engagement"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Status         string     `json:"status"`
	Description    string     `json:"description"`
	DescriptionEn  string     `json:"descriptionEn"`
	TargetAudience string     `json:"targetAudience"`
	Budget         float64    `json:"budget"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// AdFilters são os filtros aceitos na listagem de anúncios.
// Year/Month/Day são componentes parciais de data; StartDate/EndDate formam
// um intervalo explícito que, quando presente, sobrepõe os componentes.
type AdFilters struct {
	Platform  string
	Year      *int
	Month     *int
	Day       *int
	StartDate *time.Time
	EndDate   *time.Time
}

// AdQuery é a consulta resolvida que o repositório executa.
// StartToInclusive indica se o limite superior usa <= em vez de <.
type AdQuery struct {
	UserID           int
	Platform         string
	StartFrom        *time.Time
	StartTo          *time.Time
	StartToInclusive bool
}

// PlatformStat acumula as métricas de uma plataforma no dashboard
type PlatformStat struct {
	Spent  float64 `json:"spent"`
	Leads  int     `json:"leads"`
	Clicks int     `json:"clicks"`
}

// DashboardStats é a resposta agregada do dashboard
type DashboardStats struct {
	TotalSpent    float64                  `json:"totalSpent"`
	TodaySpent    float64                  `json:"todaySpent"`
	PlatformStats map[string]*PlatformStat `json:"platformStats"`
	TotalAds      int                      `json:"totalAds"`
}

// ValidPlatform verifica se o valor pertence ao enum de plataformas
func ValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// ValidAudience verifica se o valor pertence ao enum de públicos
func ValidAudience(audience string) bool {
	return audience == AudienceCold || audience == AudienceHot
}

// ValidAdStatus verifica se o valor pertence ao enum de status
func ValidAdStatus(status string) bool {
	return status == AdStatusActive || status == AdStatusPaused || status == AdStatusFinished
}
