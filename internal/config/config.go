package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Analytics           Analytics           `mapstructure:",squash"`
	RankingSnapshotSync RankingSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Analytics concentra os parâmetros de política dos cálculos de métricas
type Analytics struct {
	// IncrementalityFactor é a fração da receita atribuída considerada
	// causalmente incremental ao investimento (entre 0 e 1). É uma premissa
	// de negócio, não um valor medido
	IncrementalityFactor float64 `mapstructure:"analytics_incrementality_factor"`
}

type RankingSnapshotSync struct {
	CronSchedule string `mapstructure:"ranking_snapshot_sync_cron"`
	SyncEnabled  bool   `mapstructure:"ranking_snapshot_sync_enabled"`
}

// DefaultIncrementalityFactor é usado quando a configuração está ausente ou
// fora do intervalo válido
const DefaultIncrementalityFactor = 0.85

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencer_analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret") // ONLY LOCAL

	// Premissa de incrementalidade: 85% da receita atribuída é considerada
	// incremental. Substituir por um teste de incrementalidade real quando houver
	viper.SetDefault("ANALYTICS_INCREMENTALITY_FACTOR", DefaultIncrementalityFactor)

	viper.SetDefault("RANKING_SNAPSHOT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("RANKING_SNAPSHOT_SYNC_ENABLED", false)    // Default: desabilitado

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// O fator de incrementalidade precisa estar em [0, 1]; fora disso volta
	// para o padrão
	if config.Analytics.IncrementalityFactor < 0 || config.Analytics.IncrementalityFactor > 1 {
		logrus.Warnf(
			"Fator de incrementalidade inválido (%v), usando o padrão %v",
			config.Analytics.IncrementalityFactor,
			DefaultIncrementalityFactor,
		)
		config.Analytics.IncrementalityFactor = DefaultIncrementalityFactor
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
