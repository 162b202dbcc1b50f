// Package config defines the necessary types to configure the application.
// An example config file config.yaml is provided in the repository.
package config

import (
	"time"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
)

type Config struct {
	commoncfg.BaseConfig `mapstructure:",squash" yaml:",inline"`

	HTTP HTTPServer `yaml:"http"`
	GRPC GRPCServer `yaml:"grpc"`

	Database    Database    `yaml:"database"`
	ValKey      ValKey      `yaml:"valkey"`
	Migrate     Migrate     `yaml:"migrate"`
	Interview   Interview   `yaml:"interview"`
	Model       Model       `yaml:"model"`
	Housekeeper Housekeeper `yaml:"housekeeper"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" default:"5s"`
	// MaxAudioBytes limits the body of spoken answers.
	MaxAudioBytes int64 `yaml:"maxAudioBytes" default:"10485760"`
	// AllowedOrigins enables CORS for browser front ends. Empty disables it.
	AllowedOrigins []string `yaml:"allowedOrigins"`
	// CORSMaxAge is how long browsers may cache a preflight answer.
	CORSMaxAge time.Duration `yaml:"corsMaxAge" default:"10m"`
}

type GRPCServer struct {
	commoncfg.GRPCServer `mapstructure:",squash" yaml:",inline"`

	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" default:"5s"`
}

type Database struct {
	Name     string              `yaml:"name"`
	Port     string              `yaml:"port"`
	Host     commoncfg.SourceRef `yaml:"host"`
	User     commoncfg.SourceRef `yaml:"user"`
	Password commoncfg.SourceRef `yaml:"password"`
	SSLMode  string              `yaml:"sslMode"`
}

type ValKey struct {
	Host      commoncfg.SourceRef `yaml:"host"`
	User      commoncfg.SourceRef `yaml:"user"`
	Password  commoncfg.SourceRef `yaml:"password"`
	Prefix    string              `yaml:"prefix" default:"interview-manager"`
	SecretRef commoncfg.SecretRef `yaml:"secretRef"`
}

const MigrateSourceEmbedded = "embedded"

type Migrate struct {
	// Source is either "embedded" or a file:// directory of goose migrations.
	Source string `yaml:"source" default:"embedded"`
}

// StoreBackend selects where sessions are kept.
type StoreBackend string

const (
	StoreMemory StoreBackend = "memory"
	StoreValKey StoreBackend = "valkey"
	StoreSQLite StoreBackend = "sqlite"
)

type Interview struct {
	QuestionBankPath   string        `yaml:"questionBankPath" default:"questions.yaml"`
	Store              StoreBackend  `yaml:"store" default:"memory"`
	SQLitePath         string        `yaml:"sqlitePath" default:"interview-sessions.sqlite"`
	GenerationTimeout  time.Duration `yaml:"generationTimeout" default:"60s"`
	IdleSessionTimeout time.Duration `yaml:"idleSessionTimeout" default:"24h"`
	// ArchiveReports stores a report of every finished interview in the database.
	ArchiveReports bool `yaml:"archiveReports"`
}

// ModelBackend selects the text generation provider.
type ModelBackend string

const (
	ModelGemini  ModelBackend = "gemini"
	ModelVertex  ModelBackend = "vertex"
	ModelOffline ModelBackend = "offline"
)

type Model struct {
	Backend     ModelBackend        `yaml:"backend" default:"gemini"`
	Name        string              `yaml:"name" default:"gemini-2.5-flash"`
	SpeechName  string              `yaml:"speechName" default:"gemini-2.5-flash-preview-tts"`
	Voice       string              `yaml:"voice" default:"Kore"`
	APIKey      commoncfg.SourceRef `yaml:"apiKey"`
	Project     string              `yaml:"project"`
	Location    string              `yaml:"location"`
	EnableVoice bool                `yaml:"enableVoice"`
}

type Housekeeper struct {
	TriggerInterval time.Duration `yaml:"triggerInterval" default:"10m"`
}
