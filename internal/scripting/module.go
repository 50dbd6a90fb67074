package scripting

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/flyweight/internal/game/character"
	"github.com/cory-johannsen/flyweight/internal/scenario"
)

const (
	characterTypeName = "flyweight.character"
	stateTypeName     = "flyweight.state"
)

// module binds a Runner to one VM. Each shared Character maps to a single
// userdata so Lua identity matches Go identity.
type module struct {
	*Runner
	chars map[character.Character]*lua.LUserData
}

// RegisterModule defines the flyweight global in L.
//
// Precondition: L must be a Sandbox VM.
// Postcondition: flyweight global is defined in L.
func (r *Runner) RegisterModule(L *lua.LState) {
	m := &module{Runner: r, chars: make(map[character.Character]*lua.LUserData)}

	charMT := L.NewTypeMetatable(characterTypeName)
	L.SetField(charMT, "__tostring", L.NewFunction(characterToString))
	stateMT := L.NewTypeMetatable(stateTypeName)
	L.SetField(stateMT, "__tostring", L.NewFunction(stateToString))

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"character": m.luaCharacter,
		"state":     m.luaState,
		"new_state": luaNewState,
		"attack":    luaAttack,
		"receive":   luaReceive,
		"value":     luaValue,
		"defeated":  luaDefeated,
		"name":      luaName,
		"kind":      luaKind,
		"display":   m.luaDisplay,
		"say":       m.luaSay,
	})
	L.SetGlobal("flyweight", mod)
}

func (m *module) pushCharacter(L *lua.LState, c character.Character) {
	ud, ok := m.chars[c]
	if !ok {
		ud = L.NewUserData()
		ud.Value = c
		L.SetMetatable(ud, L.GetTypeMetatable(characterTypeName))
		m.chars[c] = ud
	}
	L.Push(ud)
}

func pushState(L *lua.LState, s *character.State) {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(stateTypeName))
	L.Push(ud)
}

func checkCharacter(L *lua.LState, n int) character.Character {
	ud := L.CheckUserData(n)
	if c, ok := ud.Value.(character.Character); ok {
		return c
	}
	L.ArgError(n, "flyweight character expected")
	return nil
}

func checkState(L *lua.LState, n int) *character.State {
	ud := L.CheckUserData(n)
	if s, ok := ud.Value.(*character.State); ok {
		return s
	}
	L.ArgError(n, "flyweight state expected")
	return nil
}

// flyweight.character(kind) -> character
func (m *module) luaCharacter(L *lua.LState) int {
	c, err := m.registry.GetOrCreate(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	m.pushCharacter(L, c)
	return 1
}

// flyweight.state(kind) -> state
func (m *module) luaState(L *lua.LState) int {
	s, err := m.registry.CreateState(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	pushState(L, s)
	return 1
}

// checkWhole returns argument n as an int. Unlike CheckInt it refuses
// fractional and out-of-range numbers rather than truncating them.
func checkWhole(L *lua.LState, n int) int {
	f := float64(L.CheckNumber(n))
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		L.ArgError(n, "whole number expected")
		return 0
	}
	return int(f)
}

// flyweight.new_state(n) -> state
func luaNewState(L *lua.LState) int {
	pushState(L, character.NewState(checkWhole(L, 1)))
	return 1
}

// flyweight.attack(attacker, opponent, attackerState, opponentState)
func luaAttack(L *lua.LState) int {
	attacker := checkCharacter(L, 1)
	opponent := checkCharacter(L, 2)
	attacker.Attack(opponent, checkState(L, 3), checkState(L, 4))
	return 0
}

// flyweight.receive(character, amount, state)
func luaReceive(L *lua.LState) int {
	c := checkCharacter(L, 1)
	amount := checkWhole(L, 2)
	c.ReceiveAttack(amount, checkState(L, 3))
	return 0
}

// flyweight.value(state) -> number
func luaValue(L *lua.LState) int {
	L.Push(lua.LNumber(checkState(L, 1).Value()))
	return 1
}

// flyweight.defeated(state) -> boolean
func luaDefeated(L *lua.LState) int {
	L.Push(lua.LBool(checkState(L, 1).IsDefeated()))
	return 1
}

// flyweight.name(character) -> string
func luaName(L *lua.LState) int {
	L.Push(lua.LString(checkCharacter(L, 1).Name()))
	return 1
}

// flyweight.kind(character) -> string
func luaKind(L *lua.LState) int {
	L.Push(lua.LString(checkCharacter(L, 1).Kind().String()))
	return 1
}

// flyweight.display(character, state)
func (m *module) luaDisplay(L *lua.LState) int {
	c := checkCharacter(L, 1)
	s := checkState(L, 2)
	m.narrator.Narrate(scenario.Display(scenario.Combatant{Character: c, State: s}))
	return 0
}

// flyweight.say(msg)
func (m *module) luaSay(L *lua.LState) int {
	m.narrator.Narrate(L.CheckString(1))
	return 0
}

func characterToString(L *lua.LState) int {
	c := checkCharacter(L, 1)
	L.Push(lua.LString(fmt.Sprintf("%s (%s)", c.Name(), c.Kind())))
	return 1
}

func stateToString(L *lua.LState) int {
	L.Push(lua.LString(fmt.Sprintf("state %d", checkState(L, 1).Value())))
	return 1
}
