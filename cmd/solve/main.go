// Command solve is a one-shot CLI: read one puzzle off the command line,
// solve it, and print a short status report.
package main

import (
	"fmt"
	"os"

	"akari-engine/internal/akari/game"
	"akari-engine/internal/akari/solve"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: solve <params> <descriptor>")
		os.Exit(1)
	}

	paramsStr, descriptor := os.Args[1], os.Args[2]

	p, err := game.DecodeParams(paramsStr)
	if err != nil {
		fmt.Printf("invalid params: %v\n", err)
		os.Exit(1)
	}
	if err := game.ValidateParams(p); err != nil {
		fmt.Printf("invalid params: %v\n", err)
		os.Exit(1)
	}

	s, err := game.NewState(p, descriptor)
	if err != nil {
		fmt.Printf("invalid descriptor: %v\n", err)
		os.Exit(1)
	}

	count, maxDepth := solve.Solve(s, true, true)
	fmt.Printf("Solutions found: %d (capped)\n", count)
	fmt.Printf("Max guess depth used: %d\n", maxDepth)
	fmt.Printf("Status: %v\n", game.Status(s))
	fmt.Print(game.TextFormat(s))
}
