package main

// Config is the demo application's environment configuration.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"falco-demo"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	// AuthSecret signs session tickets; must be at least 32 characters.
	AuthSecret string `env:"AUTH_SECRET" envDefault:"demo-secret-demo-secret-demo-secret!"`

	// DebugEcho mounts the request echo endpoint. Never enable outside
	// local development.
	DebugEcho bool `env:"DEBUG_ECHO" envDefault:"false"`
}
