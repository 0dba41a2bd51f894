// Package config loads application configuration.
//
// Two complementary surfaces are provided. Load parses environment
// variables into tagged structs (with .env autoloading and per-type
// caching):
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Read merges an ordered list of sources (JSON, XML, and INI files,
// environment variables, command-line arguments, in-memory pairs) into one
// key-value store; later sources override earlier ones. File sources are
// required by default, and a missing required source is a fatal startup
// error surfaced as *MissingSourceError. Mark sources optional to tolerate
// absence:
//
//	mgr, err := config.Read(
//		config.JSONFile("app.json"),
//		config.INIFile("local.ini").Optional(),
//		config.Env("APP_"),
//		config.Args(os.Args[1:]),
//	)
package config
