package batch_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsecret/batch"
	"github.com/katalvlaran/lvsecret/shares"
	"github.com/katalvlaran/lvsecret/solver"
)

func ExampleRunner_Run() {
	c, err := shares.Decode(strings.NewReader(`{
	  "first":  {"keys": {"n": 3, "k": 3},
	             "1": {"base": "10", "value": "4"},
	             "2": {"base": "2",  "value": "1000"},
	             "3": {"base": "16", "value": "e"}},
	  "second": {"keys": {"n": 2, "k": 2},
	             "1": {"base": "10", "value": "5"},
	             "2": {"base": "10", "value": "7"}}
	}`))
	if err != nil {
		fmt.Println(err)
		return
	}

	r, _ := batch.NewRunner(solver.Gauss, batch.WithWorkers(2))
	results, _ := r.Run(context.Background(), c)
	for _, res := range results {
		fmt.Println(res)
	}
	// Output:
	// first (gauss method): 2
	// second (gauss method): 3
}
