// Package hooking lets simulation objects expose observation points that
// external code can attach to without the objects knowing who is watching.
package hooking

// A HookPos names one observation point. Packages declare their positions as
// package-level variables and compare them by identity.
type HookPos struct {
	Name string
}

// HookCtx carries what a hook needs to know about the site that triggered
// it: the object it fired on, the position, and the item and detail the
// position documents.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is an object hooks can be registered on.
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// A Hook runs whenever a hookable object reaches one of its observation
// points.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase can be embedded to satisfy Hookable and fan invocations out
// to every registered hook.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// NumHooks returns the number of hooks registered. Invocation sites check it
// so that hook-free runs skip building contexts.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}

// InvokeHook triggers the registered Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
