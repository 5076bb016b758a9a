package internal

import "github.com/osuushi/tessellate/internal/dbg"

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The lexicographic Order.Below() method is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments but note that this
// affects where horizontal segments are allowed while maintaining strict
// monotonicity. Specifically, on the left chain, a horizontal edge must sit
// _above_ the inside of the polygon, while on the right chain, it must sit
// _below_. Since this is the same order the sweep used to make the pieces,
// this is not a problem.
//
// The piece is given as vertex indices into vt, and must be counterclockwise.

func TriangulateMonotone(vt *VertexTable, piece []int, order Order) []Triangle {
	if len(piece) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(piece))
	}
	if len(piece) == 3 {
		return appendTriangle(vt, nil, Triangle{piece[0], piece[1], piece[2]})
	}

	point := func(v int) Point { return vt.Points[v] }
	triangles := make([]Triangle, 0, len(piece)-2)

	// Sort points so top point is at the top of the array.
	sortedPoints := make([]int, 0, len(piece))

	// Find the top point
	var topPointIndex int
	for i, v := range piece {
		if order.Above(point(v), point(piece[topPointIndex])) {
			topPointIndex = i
		}
	}

	// Convex pieces (including whole convex polygons, which the sweep never
	// splits) become a fan around the top point.
	if isConvex(vt, piece) {
		for i := 1; i < len(piece)-1; i++ {
			triangles = appendTriangle(vt, triangles, Triangle{
				piece[topPointIndex],
				piece[CircularIndex(topPointIndex+i, len(piece))],
				piece[CircularIndex(topPointIndex+i+1, len(piece))],
			})
		}
		return triangles
	}

	sortedPoints = append(sortedPoints, piece[topPointIndex])

	// Which chain each vertex is on. The top and bottom points are on neither
	leftChain := make(map[int]struct{}, len(piece))
	var isLeft = func(v int) bool {
		_, ok := leftChain[v]
		return ok
	}

	// Merge sort points starting from top, noting which are on the left chain,
	// and track the bottom point separately. Going forward from the top of a
	// counterclockwise polygon walks down the left chain.
	leftOffset := 1
	rightOffset := 1
	lastLeft := piece[topPointIndex]
	lastRight := piece[topPointIndex]
	var bottomPoint int
	for {
		leftPoint := piece[CircularIndex(topPointIndex+leftOffset, len(piece))]
		rightPoint := piece[CircularIndex(topPointIndex-rightOffset, len(piece))]

		// If we've met up, we're done. We don't add the bottom point to the list,
		// as it's handled at the very end.
		if leftPoint == rightPoint {
			bottomPoint = leftPoint
			break
		}

		if order.Above(point(leftPoint), point(rightPoint)) {
			if !order.Below(point(leftPoint), point(lastLeft)) {
				fatalf("left chain is not descending at %v: %s", point(leftPoint), dbg.Dump(piece))
			}
			leftChain[leftPoint] = struct{}{}
			sortedPoints = append(sortedPoints, leftPoint)
			lastLeft = leftPoint
			leftOffset++
		} else {
			if !order.Below(point(rightPoint), point(lastRight)) {
				fatalf("right chain is not descending at %v: %s", point(rightPoint), dbg.Dump(piece))
			}
			sortedPoints = append(sortedPoints, rightPoint)
			lastRight = rightPoint
			rightOffset++
		}
	}
	if !order.Below(point(bottomPoint), point(lastLeft)) || !order.Below(point(bottomPoint), point(lastRight)) {
		fatalf("bottom point %v is not below both chains: %s", point(bottomPoint), dbg.Dump(piece))
	}

	// Create the stack and populate it with the first two points
	stack := make(IndexStack, 0, len(piece))
	stack.Push(sortedPoints[0])
	stack.Push(sortedPoints[1])
	// Iterate over the remainder of the sorted points
	for i, p := range sortedPoints[2:] {
		// Adjust index to account for the offset
		i := i + 2

		left := isLeft(p)
		if left != isLeft(stack.Peek()) { // If switched to opposite side chain
			// If we've jumped to the other chain, monotonicity guarantees that all
			// stack points are visible from the current point. We can therefore
			// empty the entire stack, making new triangles
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						triangles = appendTriangle(vt, triangles, Triangle{p, a, b})
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						triangles = appendTriangle(vt, triangles, Triangle{a, p, b})
					}
				}
			}
			// Put the last two points on the stack
			stack.Push(sortedPoints[i-1])
			stack.Push(sortedPoints[i])
		} else { // Same side chain
			// Always pop the last point off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()

			for !stack.Empty() {
				topOfStack := stack.Peek()
				// The easiest way to see if the point "sees" the top of the stack is to
				// try creating the triangle, and see if it's CCW
				var potentialTriangle Triangle
				if left {
					/*
						q
						|\
						v \
						  \\ <- diagonal
						    \
						     p
					*/
					potentialTriangle = Triangle{p, topOfStack, v}
				} else {
					/*
						               q
						              /|
						             / v
						            / /
						diagonal-> //
						          /
						         p
					*/
					potentialTriangle = Triangle{p, v, topOfStack}
				}
				if IsCCW(vt, potentialTriangle) {
					v = stack.Pop()
					triangles = append(triangles, potentialTriangle)
				} else {
					// Stop looping if we can't see the next point
					break
				}
			}

			// Put the last v back on the stack, and then the current point
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining points on the stack. Note that we
	// always have two points.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		// Note that if we were just creating diagonals, as you'll sometimes see
		// with this algorithm, we would stop at the last point. However, we need
		// to generate the final triangle. Observe, for example, that in a case
		// where only two points remained on the stack, stopping before the last
		// point would completely remove the bottom point from the final triangle
		// list.

		// Check if last point is on the left chain
		if isLeft(l) {
			/*
					 p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(vt, triangles, Triangle{bottomPoint, p, l})
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(vt, triangles, Triangle{bottomPoint, l, p})
		}
		l = p
	}
	return triangles
}

// Every vertex is a strict left turn. Collinear vertices go through the
// general path, which drops the empty triangles they would make.
func isConvex(vt *VertexTable, piece []int) bool {
	for i, v := range piece {
		prev := piece[CircularIndex(i-1, len(piece))]
		next := piece[CircularIndex(i+1, len(piece))]
		if Cross(vt.Points[prev], vt.Points[v], vt.Points[next]) <= 0 {
			return false
		}
	}
	return true
}

// Twice the signed area of the triangle. Positive for counterclockwise.
func TriangleCross(vt *VertexTable, tri Triangle) float64 {
	return Cross(vt.Points[tri[0]], vt.Points[tri[1]], vt.Points[tri[2]])
}

func IsCCW(vt *VertexTable, tri Triangle) bool {
	return TriangleCross(vt, tri) > 0
}

// This is pulled out so that it's easy to add instrumentation. Exactly
// collinear triangles cover nothing and are dropped.
func appendTriangle(vt *VertexTable, triangles []Triangle, tri Triangle) []Triangle {
	cross := TriangleCross(vt, tri)
	if cross < 0 {
		fatalf("triangle is clockwise: %s", dbg.Dump([3]Point{vt.Points[tri[0]], vt.Points[tri[1]], vt.Points[tri[2]]}))
	}
	if cross == 0 {
		return triangles
	}
	return append(triangles, tri)
}
