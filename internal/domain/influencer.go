// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Category representa a categoria de conteúdo de um influenciador
type Category string

const (
	CategoryFitness   Category = "fitness"
	CategoryLifestyle Category = "lifestyle"
	CategoryNutrition Category = "nutrition"
	CategoryWellness  Category = "wellness"
	CategorySports    Category = "sports"
	// CategoryUnknown agrupa valores não reconhecidos vindos da ingestão
	CategoryUnknown Category = "unknown"
)

// Gender representa o gênero declarado pelo influenciador
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// Platform representa a rede social onde o conteúdo foi publicado
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYoutube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformTiktok    Platform = "tiktok"
	PlatformUnknown   Platform = "unknown"
)

// Influencer representa o cadastro imutável de um influenciador dentro de uma
// sessão de análise
type Influencer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Gender         Gender   `json:"gender"`
	FollowerCount  int      `json:"follower_count"`
	Platform       Platform `json:"platform"`
	AvatarURL      *string  `json:"avatar_url,omitempty"`
	EngagementRate *float64 `json:"engagement_rate,omitempty"`
}

// ParseCategory converte uma string em Category. Valores não reconhecidos
// caem em CategoryUnknown em vez de serem aceitos silenciosamente
func ParseCategory(value string) Category {
	switch Category(value) {
	case CategoryFitness, CategoryLifestyle, CategoryNutrition, CategoryWellness, CategorySports:
		return Category(value)
	default:
		return CategoryUnknown
	}
}

// ParseGender converte uma string em Gender
func ParseGender(value string) Gender {
	switch Gender(value) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(value)
	default:
		return GenderUnknown
	}
}

// ParsePlatform converte uma string em Platform
func ParsePlatform(value string) Platform {
	switch Platform(value) {
	case PlatformInstagram, PlatformYoutube, PlatformTwitter, PlatformTiktok:
		return Platform(value)
	default:
		return PlatformUnknown
	}
}
