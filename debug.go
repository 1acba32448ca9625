package rpn

import (
	"github.com/puzpuzpuz/xsync"
)

// DebugFunc observes every token just before it is classified. It cannot change
// the course of an evaluation.
type DebugFunc func(c *Context, token string)

// the process wide hook is read once per token and written rarely
var (
	hookLock   xsync.RBMutex
	globalHook DebugFunc
)

// SetDebugHook installs fn as the process wide debug hook, replacing any previous
// one. A nil fn removes it. A Context with its own hook ignores this one.
func SetDebugHook(fn DebugFunc) {
	hookLock.Lock()
	globalHook = fn
	hookLock.Unlock()
}

func currentGlobalHook() DebugFunc {
	tk := hookLock.RLock()
	fn := globalHook
	hookLock.RUnlock(tk)
	return fn
}

func (c *Context) debugHook() DebugFunc {
	if c.hook != nil {
		return c.hook
	}
	return currentGlobalHook()
}
