// Package dicts bundles the default word taxonomy into the binary.
package dicts

import _ "embed"

// TreeName is the resource name reported for the bundled taxonomy.
const TreeName = "dicts/tree.json"

//go:embed tree.json
var Tree []byte
