// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Defaults are expected to be
// applied already.
func (cfg *StructuredConfig) validate() error {
	server := cfg.Server

	if server.HTTPAddress == "" && server.HTTPSAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if server.HTTPSAddress != "" && (server.TLSCertFile == "" || server.TLSKeyFile == "") {
		return fmt.Errorf("%w: https address requires tls cert and key files", ErrInvalidServerConfigs)
	}
	if server.HTTPSPort < 1 || server.HTTPSPort > 65535 {
		return fmt.Errorf("%w: https port %d out of range", ErrInvalidServerConfigs, server.HTTPSPort)
	}
	if server.RequestTimeout < 0 || server.ShutdownTimeout < 0 || server.ReadinessTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	return nil
}
