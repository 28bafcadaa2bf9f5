// Package main provides the Spindle math framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spindle-math/spindle/autodiff"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Spindle Math Framework %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Spindle Math Framework - Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a sample function and print the results")
}

// demo differentiates f(x,y,z) = cos(x)/((x+y)sin(z)) at a fixed point.
func demo() {
	tape := autodiff.NewGradientTape[float64]()
	x := tape.CreateVariable(1.23)
	y := tape.CreateVariable(0.66)
	z := tape.CreateVariable(2.34)

	f := tape.Divide(
		tape.Cos(x),
		tape.Multiply(tape.Add(x, y), tape.Sin(z)),
	)
	grad := tape.ReverseAccumulate(f)

	fmt.Println("f(x,y,z) = cos(x)/((x+y)sin(z)) at (1.23, 0.66, 2.34)")
	fmt.Printf("  f     = %.15f\n", f.Value())
	fmt.Printf("  df/dx = %.15f\n", grad[0])
	fmt.Printf("  df/dy = %.15f\n", grad[1])
	fmt.Printf("  df/dz = %.15f\n", grad[2])
	fmt.Printf("  nodes recorded: %d\n", tape.NodeCount())
}
