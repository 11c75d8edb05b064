package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging         LoggingConfig         `yaml:"logging"`
	Server          ServerConfig          `yaml:"server"`
	Gemini          GeminiConfig          `yaml:"gemini"`
	GenerationQuota GenerationQuotaConfig `yaml:"generation_quota"`
	Platforms       []PlatformProfile     `yaml:"platforms"`
	Media           MediaConfig           `yaml:"media"`

	// 환경변수로만 주입되는 값들 (.env 또는 배포 환경)
	GeminiApiKey string `yaml:"-"`
	MongoURI     string `yaml:"-"`
	MongoDBName  string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins"`
}

// GeminiConfig 는 생성 단계별로 사용하는 모델 이름을 정의한다.
type GeminiConfig struct {
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
	VideoModel string `yaml:"video_model"`
}

// GenerationQuotaConfig 는 생성용 LLM 호출에 대한 속도/일일 한도를 정의한다.
// 애플리케이션 별로 설정을 분리할 계획이지만, 현재는 전역 설정으로 사용한다.
type GenerationQuotaConfig struct {
	// RequestsPerMinute 는 생성용 LLM 호출에 대한 분당 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 생성용 LLM 호출에 대한 일일 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

// PlatformProfile is a single target-platform configuration item
type PlatformProfile struct {
	Name         string `yaml:"name"`
	MaxLength    int    `yaml:"max_length"`
	HashtagLimit int    `yaml:"hashtag_limit"`
	Tone         string `yaml:"tone"`
}

type MediaConfig struct {
	Dir     string `yaml:"dir"`
	BaseURL string `yaml:"base_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	c.MongoURI = os.Getenv("MONGODB_URI")
	c.MongoDBName = os.Getenv("MONGODB_DB")

	config = &c
	InitLogger(c.Logging)
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Platform returns the profile for name, falling back to a permissive default
// so an unknown platform still gets a generation pass.
func (c AppConfig) Platform(name string) PlatformProfile {
	for _, p := range c.Platforms {
		if p.Name == name {
			return p
		}
	}
	return PlatformProfile{Name: name, MaxLength: 2200, HashtagLimit: 10, Tone: "engaging"}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
