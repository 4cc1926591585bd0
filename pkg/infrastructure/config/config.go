package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Data   DataConfig
	Cache  CacheConfig
	QC     QCConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// DataConfig points at the CSV exports of the planning workbook and sheets.
type DataConfig struct {
	Dir              string
	OrdersFile       string
	ObservationsFile string
	MachineListFile  string
	HeadcountsFile   string
	ShiftsFile       string
	StandardsFile    string
	ProcessTimesFile string
	DeliveriesFile   string
}

type CacheConfig struct {
	TTL time.Duration
}

type QCConfig struct {
	Department string
}

func LoadEnv() *Config {
	dataDir := getEnv("DATA_DIR", "./data")
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Data: DataConfig{
			Dir:              dataDir,
			OrdersFile:       filepath.Join(dataDir, getEnv("ORDERS_FILE", "orders.csv")),
			ObservationsFile: filepath.Join(dataDir, getEnv("OBSERVATIONS_FILE", "phtcv.csv")),
			MachineListFile:  filepath.Join(dataDir, getEnv("MACHINE_LIST_FILE", "machines.csv")),
			HeadcountsFile:   filepath.Join(dataDir, getEnv("HEADCOUNTS_FILE", "headcounts.csv")),
			ShiftsFile:       filepath.Join(dataDir, getEnv("SHIFTS_FILE", "shifts.csv")),
			StandardsFile:    filepath.Join(dataDir, getEnv("STANDARDS_FILE", "time_standards.csv")),
			ProcessTimesFile: filepath.Join(dataDir, getEnv("PROCESS_TIMES_FILE", "pky.csv")),
			DeliveriesFile:   filepath.Join(dataDir, getEnv("DELIVERIES_FILE", "giao_kho.csv")),
		},
		Cache: CacheConfig{
			TTL: getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		QC: QCConfig{
			Department: getEnv("QC_DEPARTMENT_ID", "0300_BPKT"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
