package nbt

import "math"

func int32ToFloat32(v int32) float32 { return math.Float32frombits(uint32(v)) }

func int64ToFloat64(v int64) float64 { return math.Float64frombits(uint64(v)) }
