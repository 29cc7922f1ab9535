package pathenum

import "errors"

// ErrGraphNil is returned by the Enumerate* methods when the Enumerator
// was built over a nil *netlist.Graph.
var ErrGraphNil = errors.New("pathenum: graph is nil")
