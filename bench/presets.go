package bench

// geometricSizes returns count sizes spanning [start, start*2^(count-1)]
// by doubling, used to spread the three presets across a realistic
// growth range without hand-listing every value.
func geometricSizes(start, count int) []int {
	sizes := make([]int, count)
	n := start
	for i := 0; i < count; i++ {
		sizes[i] = n
		n *= 2
	}
	return sizes
}

// Quick is the lightest preset: 3 sizes, minimal warmup and
// measurement counts, suitable for interactive use.
func Quick() Preset {
	return Preset{Name: "quick", Sizes: geometricSizes(1000, 3), Warmup: 2, Measurements: 5}
}

// Standard is the default preset: 6 sizes, moderate warmup and
// measurement counts.
func Standard() Preset {
	return Preset{Name: "standard", Sizes: geometricSizes(500, 6), Warmup: 5, Measurements: 15}
}

// Thorough is the most exhaustive preset: 10 sizes, heavier warmup
// and measurement counts, for calibration runs meant to be persisted.
func Thorough() Preset {
	return Preset{Name: "thorough", Sizes: geometricSizes(250, 10), Warmup: 10, Measurements: 30}
}
