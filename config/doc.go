// Package config loads launcher configuration from YAML: an engine thread
// ceiling plus named attribute profiles.
//
//	max_threads: 64
//	profiles:
//	  ingest:
//	    name: ingest-worker
//	  telemetry:
//	    name: telemetry
//	    detached: true
package config
