// Package intake validates the four photos a composite is built from.
//
// Validation runs in two passes. The first reports every path that does not
// name a regular file; only when all four exist does the second pass decode
// image headers and report every photo whose pixel area is under
// geometry.MinArea. Errors name the offending photos by ordinal ("the first
// and third photos were not found") and carry failure.ErrNotFound or
// failure.ErrValidation for classification.
//
// Importing the package registers JPEG, PNG, GIF, BMP, TIFF and WebP decoders
// with the image package.
package intake
