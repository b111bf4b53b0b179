package chain_test

import (
	"fmt"
	"strings"

	"github.com/ib-77/scope/pkg/scope/chain"
)

func ExampleOf() {
	res := chain.Of(5).
		Let(func(x int) int { return x + 1 }).
		Also(func(x int) { fmt.Println("also:", x) }).
		Result()
	fmt.Println(res)
	// Output:
	// also: 6
	// 6
}

func ExampleLet() {
	words := chain.Let(chain.Of("let also run apply"), strings.Fields).
		Also(func(w []string) { fmt.Println(len(w), "words") }).
		Result()
	fmt.Println(words[len(words)-1])
	// Output:
	// 4 words
	// apply
}
