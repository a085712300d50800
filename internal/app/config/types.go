package config

type DriverConfig struct {
	MongoDB MongoDB
	Logger  Logger
}

type MongoDB struct {
	URI    string
	DbName string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App App
}

type App struct {
	Env             string
	Port            string
	MaxRequests     int
	ShutdownTimeout int
}
