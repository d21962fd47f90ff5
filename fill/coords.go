package fill

import "github.com/formpress/formpress/field"

// ToPDFY converts a stored y coordinate to the PDF's native bottom-left
// origin. Under the top-edge convention the stored y is the distance from the
// page top to the element's top edge, so the bottom-origin y of the box is
//
//	pageHeight - storedY - height
//
// Any other convention is treated as already bottom-origin and passed through
// unchanged. The conversion is applied per element: option mappings convert
// with their own heights, independent of the owning field.
func ToPDFY(storedY, height, pageHeight float64, positionVersion string) float64 {
	if positionVersion == field.PositionVersionTopEdge {
		return pageHeight - storedY - height
	}
	return storedY
}

// deviceTop converts a stored position to the top-origin y the drawing
// library expects for the top edge of a box of the given height.
func deviceTop(storedY, height, pageHeight float64, positionVersion string) float64 {
	pdfY := ToPDFY(storedY, height, pageHeight, positionVersion)
	return pageHeight - pdfY - height
}
