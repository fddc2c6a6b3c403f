// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, hot-reload, metrics, and debug introspection for
// hioload-sync.
//
// Provides:
//   - YAML settings with validation and a listener-notifying store
//   - Process-wide reload hooks
//   - A metrics snapshot fed from lock-table statistics
//   - Named debug probes, including platform probes
package control
