package unicase_test

import (
	"fmt"

	"github.com/textcase/unicase"
)

func ExampleNew() {
	a := unicase.New("ΑΒΔ")
	b := unicase.New("αβδ")
	fmt.Println(a.Equal(b))
	fmt.Println(a.String())
	// Output:
	// true
	// ΑΒΔ
}

func ExampleASCII() {
	fmt.Println(unicase.ASCII("GET").Equal(unicase.ASCII("get")))
	// The KELVIN SIGN is not ASCII: its bytes compare literally.
	fmt.Println(unicase.ASCII("K").Equal(unicase.ASCII("\u212A")))
	fmt.Println(unicase.New("K").Equal(unicase.New("\u212A")))
	// Output:
	// true
	// false
	// true
}

func ExampleText_Compare() {
	fmt.Println(unicase.New("apple").Compare(unicase.New("APPLES")))
	fmt.Println(unicase.New("Kelvin").Compare(unicase.New("\u212AELVIN")))
	fmt.Println(unicase.New("b").Compare(unicase.New("A")))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleText_Hash() {
	a := unicase.New("στιγμας")
	b := unicase.New("ΣΤΙΓΜΑΣ")
	fmt.Println(a.Equal(b))
	fmt.Println(a.Hash() == b.Hash())
	// Output:
	// true
	// true
}

func ExampleMap() {
	var m unicase.Map[unicase.UnicodeFold, string]
	m.Set(unicase.New("Content-Type"), "text/html")
	m.Set(unicase.New("content-length"), "42")

	v, ok := m.Get(unicase.New("CONTENT-TYPE"))
	fmt.Println(v, ok)
	fmt.Println(m.Len())
	// Output:
	// text/html true
	// 2
}

func ExampleWrapBytes() {
	_, err := unicase.WrapBytes[unicase.UnicodeFold]([]byte{0xFF, 0xFE})
	fmt.Println(err)
	// Output:
	// unicase: invalid UTF-8 encoding
}
