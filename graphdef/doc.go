// Package graphdef defines NodeDefinition, the user-facing, immutable
// description of one node in a dataflow graph. A non-empty ordered sequence
// of NodeDefinition values is the sole input to package compiler; insertion
// order among definitions becomes the node ID assignment, so callers that
// need reproducible compiled graphs should keep that order stable.
package graphdef
