// Package script embeds a Lua runtime so gameplay can be extended without
// recompiling the engine. A script registers event listeners and queues
// events through the `arcadia` module:
//
//	arcadia.on("input.action", function(evt)
//	    arcadia.log("saw " .. evt.name)
//	end)
//
//	arcadia.queue("game.custom", "hello")
//
// Lua callbacks run synchronously on the dispatch goroutine during the
// normal event drain, so scripts share the engine's single-threaded model
// and its time budget.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/castlewood/arcadia/internal/event"
	"github.com/castlewood/arcadia/internal/event/events"
	"github.com/castlewood/arcadia/internal/log"
)

// moduleName is the global table exposed to scripts.
const moduleName = "arcadia"

// Engine hosts one Lua state bound to the event system.
//
// gopher-lua's LState is not goroutine-safe; all calls into the Engine,
// including the event callbacks it registers, happen on the dispatch
// goroutine.
type Engine struct {
	log    *log.Logger
	state  *lua.LState
	events *event.System

	// subs tracks registrations made by the script so Close can remove them.
	subs []subscription
}

type subscription struct {
	t  event.Type
	id event.SubscriptionID
}

// New creates a script engine bound to the given event system.
func New(logger *log.Logger, events *event.System) *Engine {
	if logger == nil {
		logger = log.Discard()
	}
	e := &Engine{
		log:    logger,
		state:  lua.NewState(),
		events: events,
	}
	e.registerModule()
	return e
}

// Load runs the script file at path. Listener registrations made at load
// time stay live until Close.
func (e *Engine) Load(path string) error {
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("loading script %s: %w", path, err)
	}
	e.log.Info("loaded script %s (%d listeners)", path, len(e.subs))
	return nil
}

// DoString runs inline Lua source. Used by tests.
func (e *Engine) DoString(src string) error {
	return e.state.DoString(src)
}

// Close removes the script's listeners and shuts down the Lua state.
func (e *Engine) Close() {
	for _, sub := range e.subs {
		e.events.Unregister(sub.t, sub.id)
	}
	e.subs = nil
	e.state.Close()
}

// registerModule installs the arcadia table into the Lua globals.
func (e *Engine) registerModule() {
	mod := e.state.NewTable()
	e.state.SetFuncs(mod, map[string]lua.LGFunction{
		"on":    e.luaOn,
		"queue": e.luaQueue,
		"log":   e.luaLog,
	})
	e.state.SetGlobal(moduleName, mod)
}

// luaOn implements arcadia.on(type, fn) -> subscription id.
func (e *Engine) luaOn(L *lua.LState) int {
	t := event.Type(L.CheckString(1))
	fn := L.CheckFunction(2)

	id := e.events.Register(t, func(evt *event.Event) {
		L.Push(fn)
		L.Push(e.eventToLua(L, evt))
		if err := L.PCall(1, 0, nil); err != nil {
			e.log.Error("script listener for %s failed: %v", evt.Type, err)
		}
	})
	e.subs = append(e.subs, subscription{t: t, id: id})

	L.Push(lua.LNumber(id))
	return 1
}

// luaQueue implements arcadia.queue(type, name).
func (e *Engine) luaQueue(L *lua.LState) int {
	t := L.CheckString(1)
	name := L.OptString(2, t)

	e.events.Queue(event.New(event.Type(t), name, nil, "script"))
	return 0
}

// luaLog implements arcadia.log(msg).
func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("script: %s", L.CheckString(1))
	return 0
}

// eventToLua converts an event into a Lua table: type, name, and for input
// events the action and state names.
func (e *Engine) eventToLua(L *lua.LState, evt *event.Event) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "type", lua.LString(evt.Type))
	L.SetField(t, "name", lua.LString(evt.Name))
	L.SetField(t, "source", lua.LString(evt.Meta.Source))

	switch p := evt.Payload.(type) {
	case events.InputPayload:
		L.SetField(t, "action", lua.LString(p.Action.String()))
		L.SetField(t, "state", lua.LString(p.State.String()))
	case string:
		L.SetField(t, "payload", lua.LString(p))
	}
	return t
}
