// Package config loads runtime configuration for the ScriptO terminal client.
//
// # Precedence
//
// Load starts from LoadDefaults, overlays the file named by -c or -config
// (YAML for .yaml and .yml, JSON otherwise) and finally the flags below. A
// key missing from the file or a flag not given keeps the earlier value.
//
// # Flags
//
//	-a string   backend base URL (default http://localhost:8000/api/v1)
//	-t int      request timeout (seconds)
//	-d string   local database path
//	-i int      online status check interval (seconds)
//	-v          verbose logging
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "https://notes.example.com/api/v1",
//	  "request_timeout": "15s",
//	  "database_path": "/home/ann/.config/scripto/scripto.db",
//	  "online_check_interval": "10s",
//	  "verbose": false
//	}
//
// or, in YAML:
//
//	server_url: https://notes.example.com/api/v1
//	request_timeout: 15s
//
// Environment variables are not consulted.
package config
