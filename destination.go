package callfsm

import "fmt"

type destinationKind int

const (
	destinationIndex destinationKind = iota
	destinationName
)

// Destination is a redirect target returned by an error hook, addressing a
// state either by slot index or by name. A nil *Destination means no
// redirect.
type Destination struct {
	kind  destinationKind
	index int
	name  string
}

// DestinationIndex addresses a state by its slot index.
func DestinationIndex(index int) *Destination {
	return &Destination{kind: destinationIndex, index: index}
}

// DestinationName addresses a state by name.
func DestinationName(name string) *Destination {
	return &Destination{kind: destinationName, name: name}
}

func (d *Destination) String() string {
	if d == nil {
		return "<none>"
	}
	if d.kind == destinationName {
		return fmt.Sprintf("name:%s", d.name)
	}
	return fmt.Sprintf("index:%d", d.index)
}
