// A small page assembled from generated components. Regenerate the views
// with:
//
//	go run github.com/rtml-dev/rtml/cmd/rtml -dir views
package main

import (
	"fmt"

	"github.com/rtml-dev/rtml"
	"github.com/rtml-dev/rtml/example/views"
)

func main() {
	h := rtml.New()
	rtml.HTMLPage(h).
		Title("rtml example").
		Mobile(true).
		Body(func(h *rtml.HTML) {
			views.Home(h).
				User("Ada").
				Items([]string{"tea", "maps", "engines"}).
				Close()
		})
	fmt.Println(h)
}
