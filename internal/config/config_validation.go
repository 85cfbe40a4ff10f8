// SPDX-License-Identifier: Apache-2.0

package config

// minTokenSignKeyBytes is the minimum number of bytes required in the token
// signing key. 32 bytes gives the 256 bits of entropy HMAC-SHA256 expects.
const minTokenSignKeyBytes = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Auth.TokenSignKey) < minTokenSignKeyBytes {
		return ErrTokenSignKeyTooShort
	}

	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
