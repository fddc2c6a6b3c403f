// control/hotreload.go
// Process-wide reload hooks, run on the caller's goroutine whenever the
// facade or the control adapter applies new settings.

package control

import "sync"

var (
	hooksMu     sync.Mutex
	reloadHooks []func()
)

// RegisterReloadHook adds a process-wide reload listener.
func RegisterReloadHook(fn func()) {
	hooksMu.Lock()
	reloadHooks = append(reloadHooks, fn)
	hooksMu.Unlock()
}

func hooks() []func() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	return append([]func(){}, reloadHooks...)
}

// TriggerHotReloadSync invokes all reload hooks on the caller's goroutine.
func TriggerHotReloadSync() {
	for _, fn := range hooks() {
		fn()
	}
}
