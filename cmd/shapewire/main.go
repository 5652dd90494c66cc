// shapewire - schema codec CLI
//
// Usage:
//
//	shapewire dump [file]       Decode compact schema bytes and describe them
//	shapewire hash [file]       Print the canonical fingerprint of a schema
//	shapewire longform [file]   Re-encode a schema canonically to stdout
//	shapewire put [file]        Store a schema in the registry
//	shapewire get <hash>        Load a schema from the registry
//
// If no file is given, reads from stdin.
package main

import "github.com/shapewire/shapewire/cmd/shapewire/cmd"

func main() {
	cmd.Execute()
}
