package voluta

import (
	"math/rand"
	"strings"
	"testing"
)

func benchCorpus(size int) []byte {
	rng := rand.New(rand.NewSource(42))
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "error", "warning"}
	var sb strings.Builder
	for sb.Len() < size {
		sb.WriteString(words[rng.Intn(len(words))])
		sb.WriteByte(' ')
	}
	return []byte(sb.String())
}

func BenchmarkMatchBytes(b *testing.B) {
	m, err := New([]string{"error", "warning", "fatal", "panic"})
	if err != nil {
		b.Fatal(err)
	}
	data := benchCorpus(1 << 20)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MatchBytes(data)
	}
}

func BenchmarkMatchBytesWholeWord(b *testing.B) {
	opts := DefaultOptions()
	opts.WholeWord = true
	m, err := NewWithOptions([]string{"error", "warning", "fatal", "panic"}, opts)
	if err != nil {
		b.Fatal(err)
	}
	data := benchCorpus(1 << 20)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MatchBytes(data)
	}
}

func BenchmarkIsMatch(b *testing.B) {
	m, err := New([]string{"zebra"})
	if err != nil {
		b.Fatal(err)
	}
	data := benchCorpus(1 << 20) // no zebras: full traversal every time
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.IsMatch(data)
	}
}
