package strategy

import (
	"testing"
)

func BenchmarkStrategy(b *testing.B) {
	for _, name := range PresetNames() {

		lit, err := Preset(name)
		if err != nil {
			b.Fatal(err)
		}

		params, err := NewParametersFromLiteral(lit)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(testString(params, "NewTable"), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := NewTableFromParameters(params); err != nil {
					b.Fatal(err)
				}
			}
		})

		s, err := Generate(params)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(testString(params, "Walk"), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Walk(s.Sequence); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
