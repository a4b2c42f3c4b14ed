package fault

import (
	"errors"
	"testing"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New("boom", WithCode(500), WithField("idx", i))
	}
}

func BenchmarkWrap(b *testing.B) {
	base := New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, WithInternal("layer"), WithPublic("Try again."))
	}
}

func BenchmarkWithOrigin(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New("boom", WithOrigin())
	}
}

func buildDeepChain(depth int) error {
	var err error = New("leaf", WithCode(1))
	for i := depth - 1; i >= 0; i-- {
		if i%3 == 0 {
			err = Combine([]error{err, errors.New("sibling")}, WithInternal("fan"))
			continue
		}
		err = Wrap(err, WithInternal("layer"), WithField("idx", i))
	}
	return err
}

func BenchmarkWalk(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Walk(err, func(error) bool { return true })
	}
}

func BenchmarkInternals(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Internals(err)
	}
}

func BenchmarkContextOf(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ContextOf(err)
	}
}

func BenchmarkSnapshot(b *testing.B) {
	err := buildDeepChain(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Snapshot(err)
	}
}
