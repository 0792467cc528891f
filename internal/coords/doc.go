// Package coords описывает координаты мира с типовыми метками масштаба и
// системы отсчета.
//
// Точка Coord[V, O, S, B] хранит сырой целочисленный вектор V (vec.Vec2 или
// vec.Vec3) и три метки нулевого размера:
//
//   - O - система отсчета: Rel (смещение), Abs (глобальный ноль),
//     Local[S] (угол содержащей ячейки масштаба S), Active (загруженное окно);
//   - S - масштаб: Tile, Chunk, TerrainUnit, Segment, Region, Vehicle;
//   - B - гарантия границ: Free или InBounds.
//
// Смешать точки разных систем отсчета нельзя: такой код не компилируется.
// Смена масштаба идет только через ProjectTo, ProjectRemain, ProjectCombine и
// ProjectBounds; деление при огрублении всегда округляет к минус бесконечности.
//
// Операции над точками чистые и не выделяют память, их можно вызывать из любого
// числа горутин без синхронизации.
package coords
