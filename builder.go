package rtml

import (
	"fmt"
	"log"
)

// WarnReset logs when a generated builder's setter is called twice for the
// same field. The first value wins.
func WarnReset(component, field string) {
	log.Printf("rtml: %s.%s set more than once; keeping the first value", component, field)
}

// MissingField aborts a render whose builder reached its terminal call with
// a mandatory field unset.
func MissingField(component, field string) {
	panic(fmt.Sprintf("rtml: %s rendered without mandatory field %s", component, field))
}
