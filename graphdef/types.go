package graphdef

// Kind is the node category: an Input carries an externally-set value; a
// Compute node derives its value from an operation applied to its parents.
type Kind uint8

const (
	InputKind Kind = iota
	ComputeKind
)

// NodeDefinition is the immutable, user-facing description of one node.
// A zero-value NodeDefinition is never valid input to the compiler: Name
// must be set, and a Compute node must name a registered Operation.
type NodeDefinition struct {
	// Name uniquely identifies this node across the whole definition list.
	Name string

	// Kind selects whether this is an Input or a Compute node.
	Kind Kind

	// Operation is the registered operation name. Ignored for Input nodes.
	Operation string

	// Parents is the ordered sequence of parent node names. Empty for
	// Input nodes; for Compute nodes, its length must match the
	// operation's declared arity unless the operation is variadic.
	Parents []string

	// InitialValue seeds Values[id] before the first evaluation. Defaults
	// to 0 for the zero value.
	InitialValue float64
}

// Input builds an Input NodeDefinition with the given initial value.
func Input(name string, initialValue float64) NodeDefinition {
	return NodeDefinition{Name: name, Kind: InputKind, InitialValue: initialValue}
}

// Compute builds a Compute NodeDefinition invoking operation over parents,
// in the given order.
func Compute(name, operation string, parents ...string) NodeDefinition {
	return NodeDefinition{
		Name:      name,
		Kind:      ComputeKind,
		Operation: operation,
		Parents:   append([]string(nil), parents...),
	}
}

// ComputeWithInitial is Compute plus an explicit initial value, useful for
// stateful nodes (e.g. an SMA) whose warmup value a caller wants to seed.
func ComputeWithInitial(name, operation string, initialValue float64, parents ...string) NodeDefinition {
	d := Compute(name, operation, parents...)
	d.InitialValue = initialValue
	return d
}
