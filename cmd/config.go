package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	RateLimit           string
	RateWindow          string
	WorkerCount         string
	QueueCapacity       string
	StandardStageDelay  string
	ExpeditedStageDelay string
	StuckOrderThreshold string
}
