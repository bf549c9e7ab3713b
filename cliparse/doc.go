// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are layered, later sources winning:

 1. struct defaults
 2. .env in the working directory (missing file is fine)
 3. process environment
 4. CLI flags

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type (sqlite or postgres)
	-admin-key        Admin key
	-public           Static file directory
	-shutdown-timeout Graceful shutdown limit
	-debug            Debug logging
	-gen-admin-key    Print a new admin key and exit

# Environment Variables

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	ADMIN_KEY        → -admin-key
	PUBLIC_DIR       → -public
	SHUTDOWN_TIMEOUT → -shutdown-timeout
	DEBUG            → -debug

# Validation

ParseFlags returns an error if:

  - the port is outside 1-65535
  - the database URL is empty
  - the database type is not sqlite or postgres
*/
package cliparse
