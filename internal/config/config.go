package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	AMap     AMapConfig
	Planner  PlannerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
}

type AMapConfig struct {
	Key            string
	BaseURL        string
	City           string
	RequestTimeout int // seconds
}

// PlannerConfig exposes every planner threshold. The defaults are field
// tuning, not known optima.
type PlannerConfig struct {
	MaxBranchesPerBrand  int
	MaxRadiusMeters      float64
	CombinationThreshold int
	NarrowedBranchLimit  int
	EvaluationCap        int
	TopN                 int
	TimeWeight           float64
	DistanceWeight       float64
	DirectionsEnabled    bool
	EvalConcurrency      int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		AMap: AMapConfig{
			Key:            viper.GetString("AMAP_KEY"),
			BaseURL:        viper.GetString("AMAP_BASE_URL"),
			City:           viper.GetString("AMAP_CITY"),
			RequestTimeout: viper.GetInt("AMAP_REQUEST_TIMEOUT"),
		},
		Planner: PlannerConfig{
			MaxBranchesPerBrand:  viper.GetInt("PLANNER_MAX_BRANCHES_PER_BRAND"),
			MaxRadiusMeters:      viper.GetFloat64("PLANNER_MAX_RADIUS_METERS"),
			CombinationThreshold: viper.GetInt("PLANNER_COMBINATION_THRESHOLD"),
			NarrowedBranchLimit:  viper.GetInt("PLANNER_NARROWED_BRANCH_LIMIT"),
			EvaluationCap:        viper.GetInt("PLANNER_EVALUATION_CAP"),
			TopN:                 viper.GetInt("PLANNER_TOP_N"),
			TimeWeight:           viper.GetFloat64("PLANNER_TIME_WEIGHT"),
			DistanceWeight:       viper.GetFloat64("PLANNER_DISTANCE_WEIGHT"),
			DirectionsEnabled:    viper.GetBool("PLANNER_DIRECTIONS_ENABLED"),
			EvalConcurrency:      viper.GetInt("PLANNER_EVAL_CONCURRENCY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.AMap.BaseURL == "" {
		cfg.AMap.BaseURL = "https://restapi.amap.com"
	}
	if cfg.AMap.RequestTimeout == 0 {
		cfg.AMap.RequestTimeout = 10
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 300 * time.Second
	}
	if cfg.Planner.MaxBranchesPerBrand == 0 {
		cfg.Planner.MaxBranchesPerBrand = 8
	}
	if cfg.Planner.MaxRadiusMeters == 0 {
		cfg.Planner.MaxRadiusMeters = 15000
	}
	if cfg.Planner.CombinationThreshold == 0 {
		cfg.Planner.CombinationThreshold = 200
	}
	if cfg.Planner.NarrowedBranchLimit == 0 {
		cfg.Planner.NarrowedBranchLimit = 5
	}
	if cfg.Planner.EvaluationCap == 0 {
		cfg.Planner.EvaluationCap = 50
	}
	if cfg.Planner.TopN == 0 {
		cfg.Planner.TopN = 5
	}
	if cfg.Planner.TimeWeight == 0 {
		cfg.Planner.TimeWeight = 0.7
	}
	if cfg.Planner.DistanceWeight == 0 {
		cfg.Planner.DistanceWeight = 0.3
	}
	if cfg.Planner.EvalConcurrency == 0 {
		cfg.Planner.EvalConcurrency = 4
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
