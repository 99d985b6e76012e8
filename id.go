package turbo

import "github.com/turbodsl/turbo/id"

// ID is the identifier type for turbo execution units.
type ID = id.ID

// Prefix identifies the execution unit type encoded in a TypeID.
type Prefix = id.Prefix
