// Package config provides loading and validation for the orchestrator's
// configuration files.
//
// A config file lists the script units to run plus run-wide settings
// (worker count, delay bounds, per-attempt timeout, interpreter and log
// sink). YAML and JSON are both accepted, selected by file extension.
//
// Loading happens in three stages:
//   - parse (yaml.v3 or encoding/json),
//   - structural validation against an embedded JSON Schema,
//   - semantic validation via ValidateConfig, which returns every problem
//     found as a path-qualified ValidationError.
//
// Basic usage:
//
//	cfg, err := config.Load("automation.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        log.Println(e)
//	    }
//	}
package config
