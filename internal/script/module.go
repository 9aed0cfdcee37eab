package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strand/internal/engine/strand"
)

// strandTypeName is the metatable name for strand userdata.
const strandTypeName = "strand"

// registerModule installs the global strand table and the userdata metatable.
func (s *State) registerModule() {
	L := s.L

	mt := L.NewTypeMetatable(strandTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"append":       s.append,
		"reverse":      s.reverse,
		"char_at":      s.charAt,
		"size":         s.size,
		"append_count": s.appendCount,
		"initialize":   s.initialize,
		"splice":       s.splice,
		"tostring":     s.toString,
		"variant":      s.variantName,
	}))
	L.SetField(mt, "__tostring", L.NewFunction(s.toString))
	L.SetField(mt, "__len", L.NewFunction(s.size))

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":      s.newStrand,
		"variants": s.variants,
	})
	L.SetGlobal("strand", mod)
}

// push wraps st as strand userdata.
func (s *State) push(L *lua.LState, st strand.Strand) {
	ud := L.NewUserData()
	ud.Value = st
	L.SetMetatable(ud, L.GetTypeMetatable(strandTypeName))
	L.Push(ud)
}

// check returns the strand at stack position n or raises an argument error.
func check(L *lua.LState, n int) strand.Strand {
	ud := L.CheckUserData(n)
	if st, ok := ud.Value.(strand.Strand); ok {
		return st
	}
	L.ArgError(n, "strand expected")
	return nil
}

// strand.new(source [, variant]) -> strand
func (s *State) newStrand(L *lua.LState) int {
	source := L.OptString(1, "")
	v := s.variant
	if L.GetTop() >= 2 {
		parsed, err := strand.ParseVariant(L.CheckString(2))
		if err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
		v = parsed
	}
	s.tick(L)

	st, err := strand.New(v, source)
	if err != nil {
		L.RaiseError("new: %v", err)
		return 0
	}
	s.push(L, st)
	return 1
}

// strand.variants() -> {string}
func (s *State) variants(L *lua.LState) int {
	tbl := L.NewTable()
	for _, v := range strand.Variants() {
		tbl.Append(lua.LString(v.String()))
	}
	L.Push(tbl)
	return 1
}

// s:append(text) -> s
func (s *State) append(L *lua.LState) int {
	st := check(L, 1)
	text := L.CheckString(2)
	s.tick(L)
	st.Append(text)
	L.Push(L.Get(1))
	return 1
}

// s:reverse() -> strand
func (s *State) reverse(L *lua.LState) int {
	st := check(L, 1)
	s.tick(L)
	s.push(L, st.Reverse())
	return 1
}

// s:char_at(index) -> string
// index is 0-based.
func (s *State) charAt(L *lua.LState) int {
	st := check(L, 1)
	index := L.CheckInt(2)
	s.tick(L)
	c, err := st.CharAt(index)
	if err != nil {
		L.RaiseError("char_at: %v", err)
		return 0
	}
	L.Push(lua.LString(string([]byte{c})))
	return 1
}

// s:size() -> number
func (s *State) size(L *lua.LState) int {
	st := check(L, 1)
	L.Push(lua.LNumber(st.Size()))
	return 1
}

// s:append_count() -> number
func (s *State) appendCount(L *lua.LState) int {
	st := check(L, 1)
	L.Push(lua.LNumber(st.AppendCount()))
	return 1
}

// s:initialize(source) -> s
func (s *State) initialize(L *lua.LState) int {
	st := check(L, 1)
	source := L.CheckString(2)
	s.tick(L)
	st.Initialize(source)
	L.Push(L.Get(1))
	return 1
}

// s:splice(enzyme, splicee) -> strand
func (s *State) splice(L *lua.LState) int {
	st := check(L, 1)
	enzyme := L.CheckString(2)
	splicee := L.CheckString(3)
	s.tick(L)
	out, err := strand.CutAndSplice(st, enzyme, splicee)
	if err != nil {
		L.RaiseError("splice: %v", err)
		return 0
	}
	s.push(L, out)
	return 1
}

// s:tostring() -> string
func (s *State) toString(L *lua.LState) int {
	st := check(L, 1)
	L.Push(lua.LString(st.String()))
	return 1
}

// s:variant() -> string
func (s *State) variantName(L *lua.LState) int {
	st := check(L, 1)
	if v, ok := strand.VariantOf(st); ok {
		L.Push(lua.LString(v.String()))
	} else {
		L.Push(lua.LString("unknown"))
	}
	return 1
}
