// Package rawstore provides the raw slot block underneath the vector
// container: a contiguous run of element slots with allocation, release,
// slot addressing and constant-time swap. Element lifetime is entirely the
// owner's business; this layer never runs lifetime hooks and never assumes
// any slot holds a live value.
package rawstore
