package coords

import "github.com/annel0/mmo-coords/internal/vec"

func projectXY(xy vec.Vec2, from, to Scale, fast bool) vec.Vec2 {
	n, coarsen := scaleRatio(from, to)
	switch {
	case n == 1:
		return xy
	case !coarsen:
		return xy.Mul(n)
	case fast:
		return divNonNegXY(xy, n)
	default:
		return divFloorXY(xy, n)
	}
}

// ProjectTo переводит точку в масштаб ST, сохраняя систему отсчета.
// При огрублении оси делятся с округлением вниз, при уточнении умножаются.
// Высота не масштабируется.
//
//	chunk := coords.ProjectTo[coords.Chunk](tile)
func ProjectTo[ST ScaleTag, V vec.Vector[V], O OriginTag, SF ScaleTag, B Bound](p Coord[V, O, SF, B]) Coord[V, O, ST, Free] {
	xy := projectXY(p.raw.XY(), scaleOf[SF](), scaleOf[ST](), p.InBounds())
	return Coord[V, O, ST, Free]{raw: p.raw.WithXY(xy)}
}

// ProjectToIB - ProjectTo для точек с гарантией границ. Диапазон [0, k) в
// любом масштабе внутри той же локальной ячейки остается в границах.
//
// Для локальной системы отсчета масштаб ST обязан делить ее ячейку, иначе
// результат не удовлетворял бы CheckInBounds.
func ProjectToIB[ST ScaleTag, V vec.Vector[V], O OriginTag, SF ScaleTag](p Coord[V, O, SF, InBounds]) Coord[V, O, ST, InBounds] {
	o := originOf[O]()
	if _, local := localScaleOf(o); local {
		if _, ok := boundLimit(o, scaleOf[ST]()); !ok {
			fatalf("ProjectToIB: масштаб %s не помещается в систему отсчета %s", scaleOf[ST](), o)
		}
	}
	return Coord[V, O, ST, InBounds]{raw: ProjectTo[ST](p).raw}
}

// ProjectRemain раскладывает точку на грубую часть масштаба SC и остаток
// внутри одной ячейки SC. Высота трехмерной точки уходит в остаток.
//
// Для любых знаков выполняется ProjectCombine(q, r) == p.
func ProjectRemain[SC LocalScale, V vec.Vector[V], O OriginTag, SF ScaleTag, B Bound](p Coord[V, O, SF, B]) (Coord[vec.Vec2, O, SC, Free], Coord[V, Local[SC], SF, InBounds]) {
	if TilesPerUnit(scaleOf[SC]()) < TilesPerUnit(scaleOf[SF]()) {
		fatalf("ProjectRemain: масштаб %s мельче исходного %s", scaleOf[SC](), scaleOf[SF]())
	}
	quotient := ProjectTo[SC](p).XY()
	corner := ProjectTo[SF](quotient)
	rem := p.raw.WithXY(p.raw.XY().Sub(corner.raw))
	return quotient, Coord[V, Local[SC], SF, InBounds]{raw: rem}
}

// ProjectCombine собирает точку из грубой части и локального остатка.
// Остаток обязан быть в системе отсчета Local[SC], где SC - масштаб грубой
// части; это проверяет компилятор. Высота берется из остатка.
func ProjectCombine[O OriginTag, SC LocalScale, B1 Bound, V vec.Vector[V], SF ScaleTag, B2 Bound](coarse Coord[vec.Vec2, O, SC, B1], fine Coord[V, Local[SC], SF, B2]) Coord[V, O, SF, Free] {
	if TilesPerUnit(scaleOf[SF]()) > TilesPerUnit(scaleOf[SC]()) {
		fatalf("ProjectCombine: масштаб остатка %s крупнее %s", scaleOf[SF](), scaleOf[SC]())
	}
	corner := ProjectTo[SF](coarse)
	return Coord[V, O, SF, Free]{raw: fine.raw.WithXY(fine.raw.XY().Add(corner.raw))}
}

// ProjectCombineZ - вариант ProjectCombine, когда высота несет грубая часть.
// Высоты у обеих частей быть не может: такой функции нет.
func ProjectCombineZ[O OriginTag, SC LocalScale, B1 Bound, SF ScaleTag, B2 Bound](coarse Coord[vec.Vec3, O, SC, B1], fine Coord[vec.Vec2, Local[SC], SF, B2]) Coord[vec.Vec3, O, SF, Free] {
	flat := ProjectCombine(coarse.XY(), fine)
	return Coord[vec.Vec3, O, SF, Free]{raw: vec.FromVec2(flat.raw, coarse.raw.Z)}
}
