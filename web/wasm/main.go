//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-denoise/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 44100.0
		if len(args) > 0 {
			sr = args[0].Float()
		}
		e, err := webdemo.NewEngine(sr)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setConfig", export(func(args []js.Value) any {
		if engine == nil || len(args) < 4 {
			return js.Null()
		}
		engine.SetConfig(args[0].Int(), args[1].Float(), args[2].Float(), args[3].Float())
		return js.Null()
	}))

	api.Set("setNoiseFrames", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetNoiseFrames(args[0].Int())
		return js.Null()
	}))

	api.Set("setSpectralFloor", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetSpectralFloor(args[0].Float())
		return js.Null()
	}))

	api.Set("setOverSubtraction", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetOverSubtraction(args[0].Float())
		return js.Null()
	}))

	api.Set("setMakeupGain", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetMakeupGain(args[0].Float())
		return js.Null()
	}))

	api.Set("applyPreset", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := engine.ApplyPreset(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("getConfig", export(func(_ []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		s, err := engine.ConfigJSON()
		if err != nil {
			return js.Null()
		}
		return s
	}))

	api.Set("process", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		input := args[0]
		buf := make([]float32, input.Length())
		for i := range buf {
			buf[i] = float32(input.Index(i).Float())
		}
		res := engine.Process(buf)
		arr := js.Global().Get("Float32Array").New(len(res))
		for i := range res {
			arr.SetIndex(i, res[i])
		}
		return arr
	}))

	api.Set("noiseProfile", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		input := args[0]
		freqs := make([]float64, input.Length())
		for i := range freqs {
			freqs[i] = input.Index(i).Float()
		}
		curve := engine.NoiseProfileDB(freqs)
		arr := js.Global().Get("Float32Array").New(len(curve))
		for i := range curve {
			arr.SetIndex(i, curve[i])
		}
		return arr
	}))

	js.Global().Set("AlgoDenoise", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
