package geodist

import "math"

// Средний радиус Земли в километрах.
const earthRadiusKm = 6371.0

type Point struct {
	Lat float64
	Lon float64
}

// Haversine возвращает расстояние по дуге большого круга между двумя
// точками в километрах. Для NaN/бесконечностей поведение не определено,
// координаты приходят от геокодера, а не от пользователя.
func Haversine(from, to Point) float64 {
	dLat := toRadians(to.Lat - from.Lat)
	dLon := toRadians(to.Lon - from.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Lat))*math.Cos(toRadians(to.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
