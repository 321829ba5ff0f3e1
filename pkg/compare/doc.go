// Package compare checks that two SQL texts hold the same tokens.
//
// Formatting must only move whitespace around. Equivalent lexes both texts,
// drops whitespace tokens and compares what is left, so a formatter bug that
// would drop, merge or alter a token is caught before output is written.
//
//	if err := compare.Equivalent(original, formatted); err != nil {
//	    var mismatch *compare.MismatchError
//	    if errors.As(err, &mismatch) {
//	        fmt.Println("first difference at token", mismatch.Index)
//	    }
//	}
//
// The generic helpers Slices and FirstMismatch work on any element type.
package compare
