package circuit_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvphoton/circuit"
)

// ExampleDecode reads a circuit written with compact gate strings.
func ExampleDecode() {
	src := `
name: ghz
qubits: 3
gates:
  - h 0
  - cx 0 1
  - cx 1 2
`
	c, err := circuit.Decode(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, g := range c.Gates {
		fmt.Println(g)
	}
	// Output:
	// h 0
	// cx 0 1
	// cx 1 2
}
