// Package app runs the derivation pipeline: validate the positional
// parameters, decode the salt, acquire the passphrase, derive the key and
// print it as lowercase hex. Every sensitive buffer the pipeline allocates
// is zeroed on the way out, on success and on every failure path.
package app
