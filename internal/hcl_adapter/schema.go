package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
// Unknown top-level blocks are rejected.
type fileRoot struct {
	Steps []*Step `hcl:"step,block"`
}

// Step is the HCL schema of a `step` block.
type Step struct {
	Name        string      `hcl:"name,label"`
	Description string      `hcl:"description,optional"`
	Adapt       *AdaptBlock `hcl:"adapt,block"`
	DefRange    hcl.Range   `hcl:",def_range"`
}

// AdaptBlock holds one attribute per argument of the step. Attribute names are
// free-form, so the body is kept raw and read with JustAttributes.
type AdaptBlock struct {
	Body hcl.Body `hcl:",remain"`
}
