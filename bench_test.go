package smallstr

import (
	"math/rand"
	"strings"
	"testing"
)

// generateText creates a string of roughly the given size with realistic
// word-shaped content.
func generateText(size int) string {
	var sb strings.Builder
	sb.Grow(size)

	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "hello", "world"}
	for sb.Len() < size {
		word := words[rand.Intn(len(words))]
		if sb.Len()+len(word)+1 > size {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(word)
	}
	return sb.String()
}

func BenchmarkPushInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s String
		for j := 0; j < InlineCapacity; j++ {
			s.Push('x')
		}
	}
}

func BenchmarkPushEscalating(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s String
		for j := 0; j < 64; j++ {
			s.Push('x')
		}
	}
}

func BenchmarkPushStringShort(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s String
		s.PushString("hello, world")
	}
}

func BenchmarkPushStringGrow(b *testing.B) {
	text := generateText(4096)
	chunks := strings.Fields(text)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s String
		for _, c := range chunks {
			s.PushString(c)
		}
	}
}

func BenchmarkFromBytesValidate(b *testing.B) {
	data := []byte(generateText(4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRetain(b *testing.B) {
	text := generateText(4096)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := FromString(text)
		b.StartTimer()
		s.Retain(func(r rune) bool { return r != 'o' })
	}
}

func BenchmarkClone(b *testing.B) {
	s := FromString(generateText(1024))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Clone()
	}
}

func BenchmarkHash64(b *testing.B) {
	s := FromString(generateText(1024))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Hash64()
	}
}
