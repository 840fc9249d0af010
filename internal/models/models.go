package models

import "time"

type Message struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type ConfigFile struct {
	Address           string        `env:"ADDRESS,default=0.0.0.0" validate:"required"`
	Port              string        `env:"PORT,default=5000" validate:"required,numeric"`
	PrintHttpRequests bool          `env:"PRINT_HTTP_REQUESTS,default=false"`
	LogToFile         bool          `env:"LOG_TO_FILE,default=false"`
	LogLevel          string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	SelfContained     bool          `env:"SELF_CONTAINED,default=false"`
	SqlitePath        string        `env:"SQLITE_PATH,default=./database.db" validate:"required_if=SelfContained true"`
	DbUser            string        `env:"MYSQL_USER,default=root" validate:"required_if=SelfContained false"`
	DbPassword        string        `env:"MYSQL_PASSWORD,default=root"`
	DbAddress         string        `env:"MYSQL_HOST,default=mysql" validate:"required_if=SelfContained false"`
	DbPort            string        `env:"MYSQL_PORT,default=3306" validate:"omitempty,numeric"`
	DbDatabase        string        `env:"MYSQL_DB,default=devops" validate:"required_if=SelfContained false"`
	DbInitAttempts    int           `env:"DB_INIT_ATTEMPTS,default=30" validate:"min=1"`
	DbInitDelay       time.Duration `env:"DB_INIT_DELAY,default=3s" validate:"min=0"`
}
