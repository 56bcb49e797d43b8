// Package catalog flattens the nested tool inventory into an indexed table
// and resolves tool descriptions to diameters.
//
// # Overview
//
// The inventory ships grouped by tool type. Flattening assigns each entry a
// sequential integer identifier (type order, then entry order) so machine
// configurations can reference tools reproducibly. Diameter lookups return
// a display-friendly fraction string bounded to the denominators of common
// fractional tooling, with the exact decimal value retained for numeric
// recovery.
//
// # Usage
//
//	c := catalog.New(inventory)
//
//	for _, desc := range c.Descriptions("End Mill") {
//	    display, _ := c.DisplayDiameter("End Mill", desc)
//	    d, _ := c.NumericDiameter(display)
//	    fmt.Println(desc, display, d)
//	}
package catalog
