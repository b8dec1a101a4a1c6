package document

// sample accumulates definitions for the built-in diagram.
type sample struct {
	doc *Document
}

func (s *sample) absolute(id, color string, x, y float64) string {
	s.doc.Points = append(s.doc.Points, PointDef{ID: id, Color: color, X: Float(x), Y: Float(y)})
	return id
}

// from adds a point following origin. Axes left nil are pinned.
func (s *sample) from(id, origin, color string, offsetX, offsetY *float64) string {
	s.doc.Points = append(s.doc.Points, PointDef{ID: id, Color: color, From: origin, OffsetX: offsetX, OffsetY: offsetY})
	return id
}

func (s *sample) cross(id, color, a, b string) string {
	s.doc.Points = append(s.doc.Points, PointDef{ID: id, Color: color, Intersect: []string{a, b}})
	return id
}

func (s *sample) line(id, start, end, color string) string {
	s.doc.Lines = append(s.doc.Lines, LineDef{ID: id, Start: start, End: end, Color: color})
	return id
}

func (s *sample) group(id string, members ...string) string {
	s.doc.Groups = append(s.doc.Groups, GroupDef{ID: id, Members: members})
	return id
}

// verticalIntersection adds the point where artLine crosses the vertical
// reference line, and a horizontal guide through it.
func (s *sample) verticalIntersection(artLine, verticalLine string) (point, guide string) {
	point = s.cross(artLine+"VerticalReferenceIntersectionPoint", "gray", artLine, verticalLine)
	start := s.from(artLine+"VerticalReferenceIntersectionLineStartPoint", point, "gray", Float(-400), nil)
	end := s.from(artLine+"VerticalReferenceIntersectionLineEndPoint", point, "gray", Float(400), nil)
	guide = s.line(artLine+"VerticalReferenceIntersectionLine", start, end, "gray")
	return point, guide
}

// NewPerspectiveDocument returns the two-point perspective construction the
// application opens with: a horizon between two vanishing points, two art
// lines from the left vanishing point, a vertical reference, and the guides
// derived from their intersections.
func NewPerspectiveDocument() *Document {
	s := &sample{doc: &Document{Name: "perspective"}}

	left := s.absolute("leftHorizonVanishingPoint", "red", 20, 100)
	right := s.from("rightHorizonVanishingPoint", left, "red", Float(1400), nil)
	horizonLine := s.line("horizonLine", left, right, "red")
	horizon := s.group("horizon", left, right, horizonLine)

	firstStart := s.from("firstArtLineStartPont", left, "black", nil, nil)
	firstEnd := s.absolute("firstArtLineEndPoint", "black", 658, 851)
	firstArtLine := s.line("firstArtLine", firstStart, firstEnd, "black")
	firstArtMark := s.group("firstArtMark", firstStart, firstEnd, firstArtLine)

	secondStart := s.from("secondArtLineStartPont", left, "black", nil, nil)
	secondEnd := s.absolute("secondArtLineEndPont", "black", 1097, 848)
	secondArtLine := s.line("secondArtLine", secondStart, secondEnd, "black")
	secondArtMark := s.group("secondArtMark", secondStart, secondEnd, secondArtLine)

	verticalPoint := s.from("verticalReferencePoint", left, "orange", Float(600), nil)
	verticalEnd := s.from("verticalReferenceEndPoint", verticalPoint, "orange", nil, Float(800))
	verticalLine := s.line("verticalReferenceLine", verticalPoint, verticalEnd, "orange")

	testPoint := s.absolute("test", "blue", 80, 45)

	firstCross, firstGuide := s.verticalIntersection(firstArtLine, verticalLine)
	secondCross, secondGuide := s.verticalIntersection(secondArtLine, verticalLine)

	secondPerspective := s.from("secondPerspectivePoint", left, "#ff8855", Float(1000), nil)
	firstToSecondPerspective := s.line("firstArtLineToSecondPerspectivePointLine", firstCross, secondPerspective, "#ff8855")
	firstSecondPerspective := s.cross("firstArtLineSecondPerspectivePoint", "#ff8855", firstToSecondPerspective, secondGuide)
	verticalToFirstSecondPerspective := s.line("verticalRefPointToFirstArtLineSecondPerspectiveLine", verticalPoint, firstSecondPerspective, "#ff8855")

	toSecondPerspective := s.line("toSecondPerspectivePointLine", secondCross, secondPerspective, "blue")
	nextHorizontalRef := s.cross("nextArtLineHorizontalRefPoint", "blue", toSecondPerspective, verticalToFirstSecondPerspective)
	nextHorizontalRefStart := s.from("nextArtLineHorizontalRefPointStart", nextHorizontalRef, "gray", Float(-400), nil)
	nextToVerticalRef := s.line("nextArtLineToVerticalRefPoint", nextHorizontalRef, nextHorizontalRefStart, "gray")

	s.doc.Draw = []string{
		horizon,
		firstArtMark,
		secondArtMark,
		verticalPoint,
		verticalLine,
		testPoint,
		firstCross,
		firstGuide,
		secondCross,
		secondGuide,
		secondPerspective,
		firstToSecondPerspective,
		firstSecondPerspective,
		verticalToFirstSecondPerspective,
		toSecondPerspective,
		nextHorizontalRef,
		nextToVerticalRef,
	}
	return s.doc
}
