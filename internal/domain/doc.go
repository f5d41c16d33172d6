// Package domain contains the core contact-book model.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// terminal, YAML parsing, or the filesystem. Infra/adapters map into/from these types.
package domain
