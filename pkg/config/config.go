package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper, env e opcionalmente arquivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Stub    StubConfig
}

// AppConfig configuração geral.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig endereço e limites do backend REST externo.
type APIConfig struct {
	BaseURL        string // ex.: https://api.graphixweb.com.br/api/v1
	TimeoutSeconds int    // timeout fixo por chamada HTTP
}

// Timeout devolve o timeout por requisição como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig ciclo de vida da sessão no cliente.
type SessionConfig struct {
	RefreshTTLMinutes int    // janela local antes do refresh proativo do token
	StorePath         string // arquivo do token store; vazio = diretório de configuração do usuário
}

// RefreshTTL devolve a janela de refresh como time.Duration.
func (c SessionConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLMinutes) * time.Minute
}

// StubConfig servidor stub de desenvolvimento que emula o backend.
type StubConfig struct {
	Host            string
	Port            int
	JWTSecret       string
	TokenExpMinutes int
}

// Addr devolve o endereço de escuta (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo .env).
// As env vars têm prioridade. Nomes esperados: APP_ENV, API_BASE_URL, STUB_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "graphixweb"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:5000/api/v1"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 10),
		},
		Session: SessionConfig{
			RefreshTTLMinutes: getInt(v, "SESSION_REFRESH_TTL_MINUTES", 15),
			StorePath:         getString(v, "SESSION_STORE_PATH", ""),
		},
		Stub: StubConfig{
			Host:            getString(v, "STUB_HOST", "0.0.0.0"),
			Port:            getInt(v, "STUB_PORT", 5000),
			JWTSecret:       getString(v, "STUB_JWT_SECRET", "graphixweb-stub"),
			TokenExpMinutes: getInt(v, "STUB_TOKEN_EXP_MINUTES", 60),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
