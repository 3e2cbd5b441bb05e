// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package config

// validate checks the final merged [StructuredConfig] before it is
// used at startup. Cross-field rules live on the per-binary views
// ([ConsoleConfig], [DevServerConfig]); the merged container itself
// has no invariants of its own.
func (cfg *StructuredConfig) validate() error {
	return nil
}
