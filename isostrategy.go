/*
Package isostrategy computes optimal evaluation strategies for the binary isogeny trees
traversed by isogeny-based key exchange. Given the number of leaves of the tree and the
relative costs of an ℓ-multiplication and of an ℓ-isogeny point evaluation, it finds by
dynamic programming the split of every subtree that minimizes the total cost, and exports
the result as the flat split sequence consumed by isogeny-walk implementations.
*/
package isostrategy
