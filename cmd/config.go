package cmd

type Config struct {
	AppEnv             string
	LogLevel           string
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	ProductCacheTTL    string
	StaleOrderMaxAge   string
	StaleOrderSchedule string
}
