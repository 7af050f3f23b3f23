// SPDX-License-Identifier: EPL-2.0

// Package luabind exposes sounds to Lua scripts running in gopher-lua.
//
// Scripts only get read-only views: a sound's id, duration and metadata.
// They never see sample data and cannot change playback.
package luabind

import (
	"errors"
	"fmt"
	"time"

	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/manager"
	"github.com/ik5/audmix/sound"
	lua "github.com/yuin/gopher-lua"
)

const (
	soundTypeName    = "audmix.sound"
	metadataTypeName = "audmix.metadata"
)

var ErrInvalidMetadata = errors.New("invalid sound metadata")

// Sound is the script-side view of a playing sound.
type Sound struct {
	key      arena.Key
	duration time.Duration
	metadata sound.Metadata
}

// SoundFromHandle snapshots the read-only parts of h.
func SoundFromHandle(h *manager.SoundHandle) *Sound {
	return &Sound{key: h.Key(), duration: h.Duration(), metadata: h.Metadata()}
}

func (s *Sound) Key() arena.Key { return s.key }

// Register installs the metatables PushSound relies on.
func Register(L *lua.LState) {
	smt := L.NewTypeMetatable(soundTypeName)
	L.SetField(smt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"getId":       soundGetID,
		"getDuration": soundGetDuration,
		"getMetadata": soundGetMetadata,
	}))
	L.SetField(smt, "__tostring", L.NewFunction(soundToString))

	mmt := L.NewTypeMetatable(metadataTypeName)
	L.SetField(mmt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"getTempo": metadataGetTempo,
	}))
}

// PushSound pushes s onto the Lua stack as a sound userdata.
func PushSound(L *lua.LState, s *Sound) {
	L.Push(newUserData(L, s, soundTypeName))
}

// NewSound returns s as a Lua value, e.g. for L.SetGlobal.
func NewSound(L *lua.LState, s *Sound) lua.LValue {
	return newUserData(L, s, soundTypeName)
}

func newUserData(L *lua.LState, v any, typeName string) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = v
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}

// CheckSound returns the sound at stack position n or raises a Lua error.
func CheckSound(L *lua.LState, n int) *Sound {
	ud := L.CheckUserData(n)
	if s, ok := ud.Value.(*Sound); ok {
		return s
	}
	L.ArgError(n, "sound expected")
	return nil
}

func checkMetadata(L *lua.LState, n int) *sound.Metadata {
	ud := L.CheckUserData(n)
	if m, ok := ud.Value.(*sound.Metadata); ok {
		return m
	}
	L.ArgError(n, "metadata expected")
	return nil
}

func soundGetID(L *lua.LState) int {
	L.Push(lua.LString(CheckSound(L, 1).key.String()))
	return 1
}

// getDuration returns seconds as a number.
func soundGetDuration(L *lua.LState) int {
	L.Push(lua.LNumber(CheckSound(L, 1).duration.Seconds()))
	return 1
}

func soundGetMetadata(L *lua.LState) int {
	md := CheckSound(L, 1).metadata
	L.Push(newUserData(L, &md, metadataTypeName))
	return 1
}

func soundToString(L *lua.LState) int {
	s := CheckSound(L, 1)
	L.Push(lua.LString(fmt.Sprintf("sound %s (%.3fs)", s.key, s.duration.Seconds())))
	return 1
}

// getTempo returns nil when the tempo is unknown.
func metadataGetTempo(L *lua.LState) int {
	md := checkMetadata(L, 1)
	if md.Tempo == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(*md.Tempo))
	return 1
}

// MetadataFromLua reads metadata from a table such as {tempo = 120}. nil
// yields empty metadata.
func MetadataFromLua(v lua.LValue) (sound.Metadata, error) {
	var md sound.Metadata
	switch t := v.(type) {
	case nil, *lua.LNilType:
		return md, nil
	case *lua.LTable:
		switch tempo := t.RawGetString("tempo").(type) {
		case *lua.LNilType:
		case lua.LNumber:
			if tempo <= 0 {
				return md, fmt.Errorf("%w: tempo must be positive, got %v", ErrInvalidMetadata, tempo)
			}
			bpm := sound.Tempo(tempo)
			md.Tempo = &bpm
		default:
			return md, fmt.Errorf("%w: tempo must be a number, got %s", ErrInvalidMetadata, tempo.Type())
		}
		return md, nil
	default:
		return md, fmt.Errorf("%w: expected a table, got %s", ErrInvalidMetadata, v.Type())
	}
}
