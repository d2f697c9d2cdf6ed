package collatz_test

import (
	"fmt"

	"github.com/comalice/collatz"
)

func ExampleLength() {
	steps, ok := collatz.Length(27)
	fmt.Println(steps, ok)

	_, ok = collatz.Length(0)
	fmt.Println(ok)
	// Output:
	// 111 true
	// false
}

func ExampleTrajectory() {
	for v := range collatz.Trajectory(6) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 6 3 10 5 16 8 4 2 1
}

func ExampleSteps() {
	steps, ok := collatz.Steps(6)
	fmt.Println(steps, ok)

	_, ok = collatz.Steps(-5)
	fmt.Println(ok)
	// Output:
	// 8 true
	// false
}
