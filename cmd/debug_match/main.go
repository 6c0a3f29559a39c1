package main

import (
	"fmt"
	"os"

	"photo-manager/core/reconcile"
)

// Quick diagnostic for the matching pipeline: prints the normalized forms
// and similarity score of two album names next to the default threshold.
// Useful when a pair that looks obviously equal refuses to match.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: debug_match <local name> <remote name>")
		os.Exit(2)
	}

	a, b := os.Args[1], os.Args[2]
	na, nb := reconcile.NormalizeName(a), reconcile.NormalizeName(b)
	score := reconcile.Similarity(na, nb)

	fmt.Printf("local:      %q -> %q\n", a, na)
	fmt.Printf("remote:     %q -> %q\n", b, nb)
	fmt.Printf("similarity: %.4f\n", score)

	if na == "" || nb == "" {
		fmt.Println("verdict:    never matchable (empty normalized name)")
		return
	}
	if score >= reconcile.DefaultThreshold {
		fmt.Printf("verdict:    MATCH at default threshold %.2f\n", reconcile.DefaultThreshold)
	} else {
		fmt.Printf("verdict:    NO MATCH at default threshold %.2f\n", reconcile.DefaultThreshold)
	}
}
