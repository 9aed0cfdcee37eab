// Package script drives strands from Lua scripts.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. A global "strand" module is installed:
//
//	local s = strand.new("acgt", "link")   -- variant is optional
//	s:append("ttt"):append("a")
//	print(s:size(), s:char_at(4), s:reverse())
//	local cut = s:splice("gaattc", "ccc")
//
// Indices passed to char_at are 0-based, matching the Go API. Out-of-range
// reads raise a Lua error.
package script
