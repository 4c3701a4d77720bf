package layout_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/sheetnet/layout"
	"github.com/katalvlaran/sheetnet/sheet"
)

// BenchmarkNew_MNIST measures planning a 784-128-10 network (~100k cells).
func BenchmarkNew_MNIST(b *testing.B) {
	layers := []int{784, 128, 10}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := layout.New(layers); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWriteCSV measures serializing a planned 64-64-64-8 network.
func BenchmarkWriteCSV(b *testing.B) {
	lay, err := layout.New([]int{64, 64, 64, 8})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = sheet.WriteCSV(io.Discard, lay.Sheet()); err != nil {
			b.Fatal(err)
		}
	}
}
