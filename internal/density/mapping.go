package density

// RowFromReal maps a real coordinate in [minR, maxR) to a grid row via a
// linear rescale with floor truncation. The lower bound maps exactly to
// row 0; coordinates strictly below maxR map strictly below imageHeight.
func RowFromReal(re, minR, maxR float64, imageHeight int) int {
	return int((re - minR) * float64(imageHeight) / (maxR - minR))
}

// ColFromImag maps an imaginary coordinate in [minI, maxI) to a grid
// column, with the same open-interval behavior as RowFromReal.
func ColFromImag(im, minI, maxI float64, imageWidth int) int {
	return int((im - minI) * float64(imageWidth) / (maxI - minI))
}
