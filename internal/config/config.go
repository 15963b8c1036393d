package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Kinds de fonte de planilha suportados
const (
	SourceKindHTTP        = "http"
	SourceKindGoogleSheet = "google_sheet"
)

// ErrSourceNotConfigured indica um relatório sem fonte utilizável: ausente,
// sem URL ou com kind desconhecido.
var ErrSourceNotConfigured = errors.New("fonte do relatório não configurada")

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Sources   Sources   `mapstructure:",squash"`
	Google    Google    `mapstructure:",squash"`
	Snapshot  Snapshot  `mapstructure:",squash"`
	SheetSync SheetSync `mapstructure:",squash"`
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

// Sources carrega a configuração plana das três fontes de relatório. Os
// timeouts herdam os valores observados no dashboard: 15s para o efetivo,
// 45s para desligamentos e 60s para recrutamento.
type Sources struct {
	HeadcountURL            string `mapstructure:"headcount_source_url"`
	HeadcountKind           string `mapstructure:"headcount_source_kind"`
	HeadcountTimeoutSeconds int    `mapstructure:"headcount_source_timeout_seconds"`
	HeadcountSpreadsheetID  string `mapstructure:"headcount_spreadsheet_id"`
	HeadcountRange          string `mapstructure:"headcount_sheet_range"`

	DeparturesURL            string `mapstructure:"departures_source_url"`
	DeparturesKind           string `mapstructure:"departures_source_kind"`
	DeparturesTimeoutSeconds int    `mapstructure:"departures_source_timeout_seconds"`
	DeparturesSpreadsheetID  string `mapstructure:"departures_spreadsheet_id"`
	DeparturesRange          string `mapstructure:"departures_sheet_range"`

	RecruitmentURL            string `mapstructure:"recruitment_source_url"`
	RecruitmentKind           string `mapstructure:"recruitment_source_kind"`
	RecruitmentTimeoutSeconds int    `mapstructure:"recruitment_source_timeout_seconds"`
	RecruitmentSpreadsheetID  string `mapstructure:"recruitment_spreadsheet_id"`
	RecruitmentRange          string `mapstructure:"recruitment_sheet_range"`
}

// ReportSource é a fonte resolvida de um relatório
type ReportSource struct {
	URL            string
	Kind           string
	TimeoutSeconds int
	SpreadsheetID  string
	Range          string
}

type Google struct {
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

// Snapshot configura o cache de matrizes no Postgres. Desabilitado, o
// serviço busca da fonte a cada requisição.
type Snapshot struct {
	Enabled    bool `mapstructure:"snapshot_cache_enabled"`
	TTLMinutes int  `mapstructure:"snapshot_cache_ttl_minutes"`
}

// SheetSync configura o agendador de atualização dos snapshots
type SheetSync struct {
	CronSchedule string `mapstructure:"sheet_sync_cron"`
	Enabled      bool   `mapstructure:"sheet_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/rh_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("HEADCOUNT_SOURCE_URL", "")
	viper.SetDefault("HEADCOUNT_SOURCE_KIND", SourceKindHTTP)
	viper.SetDefault("HEADCOUNT_SOURCE_TIMEOUT_SECONDS", 15)
	viper.SetDefault("HEADCOUNT_SPREADSHEET_ID", "")
	viper.SetDefault("HEADCOUNT_SHEET_RANGE", "Effectif!A:F")

	viper.SetDefault("DEPARTURES_SOURCE_URL", "")
	viper.SetDefault("DEPARTURES_SOURCE_KIND", SourceKindHTTP)
	viper.SetDefault("DEPARTURES_SOURCE_TIMEOUT_SECONDS", 45)
	viper.SetDefault("DEPARTURES_SPREADSHEET_ID", "")
	viper.SetDefault("DEPARTURES_SHEET_RANGE", "Departures!A:F")

	viper.SetDefault("RECRUITMENT_SOURCE_URL", "")
	viper.SetDefault("RECRUITMENT_SOURCE_KIND", SourceKindHTTP)
	viper.SetDefault("RECRUITMENT_SOURCE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("RECRUITMENT_SPREADSHEET_ID", "")
	viper.SetDefault("RECRUITMENT_SHEET_RANGE", "Recruitment!A:F")

	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")

	viper.SetDefault("SNAPSHOT_CACHE_ENABLED", false)
	viper.SetDefault("SNAPSHOT_CACHE_TTL_MINUTES", 60)

	viper.SetDefault("SHEET_SYNC_CRON", "0 */2 * * *") // A cada duas horas
	viper.SetDefault("SHEET_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// SourceFor resolve a fonte configurada do relatório pelo nome
func (c *Config) SourceFor(report string) (ReportSource, error) {
	switch report {
	case "headcount":
		return ReportSource{
			URL:            c.Sources.HeadcountURL,
			Kind:           c.Sources.HeadcountKind,
			TimeoutSeconds: c.Sources.HeadcountTimeoutSeconds,
			SpreadsheetID:  c.Sources.HeadcountSpreadsheetID,
			Range:          c.Sources.HeadcountRange,
		}, nil
	case "departures":
		return ReportSource{
			URL:            c.Sources.DeparturesURL,
			Kind:           c.Sources.DeparturesKind,
			TimeoutSeconds: c.Sources.DeparturesTimeoutSeconds,
			SpreadsheetID:  c.Sources.DeparturesSpreadsheetID,
			Range:          c.Sources.DeparturesRange,
		}, nil
	case "recruitment":
		return ReportSource{
			URL:            c.Sources.RecruitmentURL,
			Kind:           c.Sources.RecruitmentKind,
			TimeoutSeconds: c.Sources.RecruitmentTimeoutSeconds,
			SpreadsheetID:  c.Sources.RecruitmentSpreadsheetID,
			Range:          c.Sources.RecruitmentRange,
		}, nil
	}

	return ReportSource{}, fmt.Errorf("%w: %q", ErrSourceNotConfigured, report)
}

// UsesGoogleSheets indica se alguma fonte exige o cliente do Google Sheets
func (c *Config) UsesGoogleSheets() bool {
	return c.Sources.HeadcountKind == SourceKindGoogleSheet ||
		c.Sources.DeparturesKind == SourceKindGoogleSheet ||
		c.Sources.RecruitmentKind == SourceKindGoogleSheet
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
