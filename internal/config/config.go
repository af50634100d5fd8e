package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Security SecurityConfig `yaml:"security"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// SecurityConfig holds the global policy flags consumed by the permission
// resolver. They are explicit configuration, never ambient state: the
// resolver is a pure function of (actor, problem, action, policy).
type SecurityConfig struct {
	AllowOwnerManagePermission bool `yaml:"allow_owner_manage_permission" env:"SECURITY_ALLOW_OWNER_MANAGE_PERMISSION" env-default:"false"`
	AllowOwnerDeleteProblem    bool `yaml:"allow_owner_delete_problem"    env:"SECURITY_ALLOW_OWNER_DELETE_PROBLEM"    env-default:"false"`
	AllowEveryoneCreateProblem bool `yaml:"allow_everyone_create_problem" env:"SECURITY_ALLOW_EVERYONE_CREATE_PROBLEM" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
