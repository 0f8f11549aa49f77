// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config resolves apictl settings from flags, environment, an
// optional settings file and a .env file.
//
// Precedence, highest first:
//
//  1. Command-line flags that were explicitly set
//  2. Environment variables prefixed with APICTL_ (dashes become underscores,
//     so --ca-cert maps to APICTL_CA_CERT)
//  3. The settings file named by --config (any format viper reads)
//  4. Defaults
//
// Variables from a .env file in the working directory are loaded into the
// process environment first and never override variables that are already set.
package config
